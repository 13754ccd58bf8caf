package journal

import "time"

// Record is one journaled publish invocation.
type Record struct {
	ID        int64
	SessionID string

	Project string
	Item    string
	Step    string
	Version int
	State   string

	Succeeded bool
	// FailedStage is empty on success, otherwise the aborting stage
	// name as reported by the publish outcome.
	FailedStage  string
	Artifacts    []string
	ErrorMessage string

	CreatedAt time.Time
}
