package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"renderpub/internal/logging"
	"renderpub/internal/verify"
)

// Request carries everything one publish invocation needs. Values are
// resolved fresh by the caller; the transaction itself holds no state
// between runs.
type Request struct {
	// WorkfilePath is the current working file on disk.
	WorkfilePath string
	// VersionedWorkfilePath is where the saving stage writes the
	// working file.
	VersionedWorkfilePath string
	// PublishedWorkfilePath is the copy destination for the backing
	// working file.
	PublishedWorkfilePath string
	// OutputPaths are the resolved render outputs, each verified
	// after the render reports success.
	OutputPaths []string
	// RenderSelector names the output nodes to arm.
	RenderSelector string

	State   string
	Version int
	Comment string
}

// Transaction orchestrates one publish. Stages run strictly
// sequentially; each external call is awaited to completion before the
// next stage begins.
type Transaction struct {
	renderer  Renderer
	saver     WorkfileSaver
	copier    FileCopier
	committer StatusCommitter
	verifyFn  func(string) bool
	logger    *slog.Logger
}

// Option customizes a Transaction.
type Option func(*Transaction)

// WithVerifier overrides the output verifier. Tests use this to
// exercise verification failures without a filesystem fixture.
func WithVerifier(fn func(string) bool) Option {
	return func(t *Transaction) {
		if fn != nil {
			t.verifyFn = fn
		}
	}
}

// WithLogger attaches a structured logger to the transaction.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transaction) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTransaction wires a transaction from its collaborators. The
// default verifier is verify.Output; the default copier writes to the
// local filesystem with integrity checks.
func NewTransaction(renderer Renderer, saver WorkfileSaver, copier FileCopier, committer StatusCommitter, opts ...Option) (*Transaction, error) {
	if renderer == nil || saver == nil || committer == nil {
		return nil, errors.New("publish transaction requires renderer, workfile saver, and status committer")
	}
	if copier == nil {
		copier = DiskCopier{Verified: true}
	}
	t := &Transaction{
		renderer:  renderer,
		saver:     saver,
		copier:    copier,
		committer: committer,
		verifyFn:  verify.Output,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(logging.String("component", "publish"))
	return t, nil
}

// Run executes the pipeline for one request and returns its outcome.
// The outcome's artifact list is populated only on full success.
func (t *Transaction) Run(ctx context.Context, req Request) Outcome {
	sessionID := uuid.NewString()
	logger := t.logger.With(logging.String("session_id", sessionID))
	started := time.Now()

	logger.Info("publish started",
		logging.String("workfile", strings.TrimSpace(req.WorkfilePath)),
		logging.Int("output_count", len(req.OutputPaths)),
		logging.String("state", req.State),
		logging.Int("version", req.Version),
	)

	outcome := t.runStages(ctx, logger, started, req)
	outcome.SessionID = sessionID
	return outcome
}

func (t *Transaction) runStages(ctx context.Context, logger *slog.Logger, started time.Time, req Request) Outcome {
	if outcome, failed := t.runSaving(ctx, logger, req); failed {
		return outcome
	}
	if outcome, failed := t.runRendering(ctx, logger, req); failed {
		return outcome
	}
	if outcome, failed := t.runVerifying(logger, req); failed {
		return outcome
	}
	if outcome, failed := t.runCopying(ctx, logger, req); failed {
		return outcome
	}
	if outcome, failed := t.runCommit(ctx, logger, req); failed {
		return outcome
	}

	artifacts := make([]string, len(req.OutputPaths))
	copy(artifacts, req.OutputPaths)
	logger.Info("publish completed",
		logging.Int("artifacts", len(artifacts)),
		logging.Duration("elapsed", time.Since(started)),
	)
	return Outcome{Succeeded: true, Artifacts: artifacts}
}

func (t *Transaction) runSaving(ctx context.Context, logger *slog.Logger, req Request) (Outcome, bool) {
	logger.Info("saving working file", logging.String("destination", req.VersionedWorkfilePath))
	if err := t.saver.Save(ctx, req.VersionedWorkfilePath); err != nil {
		return t.abort(logger, StageSaving, err), true
	}
	return Outcome{}, false
}

func (t *Transaction) runRendering(ctx context.Context, logger *slog.Logger, req Request) (Outcome, bool) {
	logger.Info("rendering", logging.String("selector", req.RenderSelector))
	if err := t.renderer.Render(ctx, req.RenderSelector); err != nil {
		return t.abort(logger, StageRendering, err), true
	}
	return Outcome{}, false
}

// runVerifying checks every resolved output. A render reporting
// success is not trusted; a single unverifiable output fails the whole
// set, because an incomplete deliverable handed to a supervisor is
// worse than an explicit failure.
func (t *Transaction) runVerifying(logger *slog.Logger, req Request) (Outcome, bool) {
	if len(req.OutputPaths) == 0 {
		return t.abort(logger, StageVerifying, errors.New("no output paths to verify")), true
	}
	for _, path := range req.OutputPaths {
		if !t.verifyFn(path) {
			err := fmt.Errorf("render output missing or empty: %s", path)
			return t.abort(logger, StageVerifying, err), true
		}
		logger.Debug("output verified", logging.String("path", path))
	}
	return Outcome{}, false
}

func (t *Transaction) runCopying(ctx context.Context, logger *slog.Logger, req Request) (Outcome, bool) {
	if strings.TrimSpace(req.PublishedWorkfilePath) == "" {
		return Outcome{}, false
	}
	logger.Info("copying working file",
		logging.String("source", req.WorkfilePath),
		logging.String("destination", req.PublishedWorkfilePath),
	)
	if err := t.copier.Copy(ctx, req.WorkfilePath, req.PublishedWorkfilePath); err != nil {
		return t.abort(logger, StageCopying, err), true
	}
	return Outcome{}, false
}

func (t *Transaction) runCommit(ctx context.Context, logger *slog.Logger, req Request) (Outcome, bool) {
	logger.Info("committing status",
		logging.String("state", req.State),
		logging.Int("version", req.Version),
	)
	if err := t.committer.Commit(ctx, req.State, req.Version, req.Comment); err != nil {
		return t.abort(logger, StageCommittingStatus, err), true
	}
	return Outcome{}, false
}

func (t *Transaction) abort(logger *slog.Logger, stage Stage, err error) Outcome {
	outcome := aborted(stage, err)
	logger.Error("publish aborted",
		logging.String("stage", string(stage)),
		logging.Error(err),
	)
	return outcome
}
