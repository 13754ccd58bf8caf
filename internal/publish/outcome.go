package publish

import "fmt"

// Stage identifies a step of the publish pipeline.
type Stage string

const (
	StageSaving           Stage = "saving"
	StageRendering        Stage = "rendering"
	StageVerifying        Stage = "verifying"
	StageCopying          Stage = "copying"
	StageCommittingStatus Stage = "committing_status"
)

// Outcome is the single result of one publish invocation.
type Outcome struct {
	// SessionID correlates the outcome with the log stream and the
	// journal entry for this invocation.
	SessionID string
	Succeeded bool
	// Artifacts lists every output path produced, in resolution
	// order. Always empty on an aborted transaction.
	Artifacts []string
	// FailedStage names the stage that aborted the transaction;
	// empty on success.
	FailedStage Stage
	// Err carries the failure detail for logging and the journal.
	Err error
}

// AbortError wraps a stage failure so callers can present a
// stage-specific diagnostic: check the render, the disk, or the
// database connection depending on which stage failed.
type AbortError struct {
	Stage Stage
	Err   error
}

func (e *AbortError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("publish aborted during %s", e.Stage)
	}
	return fmt.Sprintf("publish aborted during %s: %v", e.Stage, e.Err)
}

func (e *AbortError) Unwrap() error { return e.Err }

func aborted(stage Stage, err error) Outcome {
	return Outcome{FailedStage: stage, Err: &AbortError{Stage: stage, Err: err}}
}
