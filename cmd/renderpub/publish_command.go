package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"renderpub/internal/fileutil"
	"renderpub/internal/hook"
	"renderpub/internal/journal"
	"renderpub/internal/logging"
	"renderpub/internal/publish"
)

// workfileSaver persists the working file by copying it to the
// versioned location. Hosts with a native save API replace this with a
// hook; the default keeps the pipeline usable without one.
type workfileSaver struct {
	source string
}

func (s workfileSaver) Save(_ context.Context, path string) error {
	if strings.TrimSpace(s.source) == "" {
		return errors.New("no working file to save")
	}
	return fileutil.CopyFileVerified(s.source, path)
}

func newPublishCommand(ctx *commandContext) *cobra.Command {
	var (
		workfile     string
		versioned    string
		published    string
		outputs      []string
		selector     string
		state        string
		version      int
		comment      string
		project      string
		item         string
		step         string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Run the save, render, verify, copy, and status-commit pipeline",
		Long: `Runs the full publish pipeline for one working file. Stages execute
strictly in order and the first failure aborts the run; partial
artifacts are left on disk for inspection, never rolled back.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "renderpub.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire publish lock: %w", err)
			}
			if !locked {
				return errors.New("another publish is already running")
			}
			defer func() {
				if err := lock.Unlock(); err != nil {
					logger.Warn("failed to release publish lock", logging.Error(err))
				}
			}()

			render, err := ctx.renderHook()
			if err != nil {
				return err
			}
			if !render.Configured() {
				return errors.New("no render command configured; set render.command in the configuration file")
			}
			status, err := ctx.statusHook()
			if err != nil {
				return err
			}
			if !status.Configured() {
				return errors.New("no status command configured; set pipeline.status_command in the configuration file")
			}

			tx, err := publish.NewTransaction(
				hook.Renderer{Command: render},
				workfileSaver{source: workfile},
				publish.DiskCopier{Verified: cfg.Copy.Verified},
				hook.StatusCommitter{Command: status},
				publish.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			outcome := tx.Run(cmd.Context(), publish.Request{
				WorkfilePath:          workfile,
				VersionedWorkfilePath: versioned,
				PublishedWorkfilePath: published,
				OutputPaths:           outputs,
				RenderSelector:        selector,
				State:                 state,
				Version:               version,
				Comment:               comment,
			})

			recordOutcome(cmd, ctx, logger, outcome, project, item, step, version, state)

			out := cmd.OutOrStdout()
			if outcome.Succeeded {
				fmt.Fprintf(out, "Publish succeeded; %d artifact(s):\n", len(outcome.Artifacts))
				for _, artifact := range outcome.Artifacts {
					fmt.Fprintf(out, "  %s\n", artifact)
				}
				return nil
			}
			return outcome.Err
		},
	}

	cmd.Flags().StringVar(&workfile, "workfile", "", "Working file to publish")
	cmd.Flags().StringVar(&versioned, "versioned-workfile", "", "Versioned save destination for the working file")
	cmd.Flags().StringVar(&published, "published-workfile", "", "Published copy destination (omit to skip the copy stage)")
	cmd.Flags().StringArrayVar(&outputs, "output", nil, "Resolved render output path (repeatable)")
	cmd.Flags().StringVar(&selector, "selector", "", "Render selector naming the outputs to arm")
	cmd.Flags().StringVar(&state, "state", "", "Pipeline state to commit on success")
	cmd.Flags().IntVar(&version, "version", 0, "Publish version number")
	cmd.Flags().StringVar(&comment, "comment", "", "Publish comment for the status commit")
	cmd.Flags().StringVar(&project, "project", "", "Project short code for the journal")
	cmd.Flags().StringVar(&item, "item", "", "Item short name for the journal")
	cmd.Flags().StringVar(&step, "step", "", "Step short name for the journal")
	_ = cmd.MarkFlagRequired("workfile")
	_ = cmd.MarkFlagRequired("versioned-workfile")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// recordOutcome appends the run to the journal. Journal trouble is
// reported but never changes the publish result.
func recordOutcome(cmd *cobra.Command, ctx *commandContext, logger *slog.Logger, outcome publish.Outcome, project, item, step string, version int, state string) {
	store, err := ctx.openJournal()
	if err != nil {
		logger.Warn("journal unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	record := &journal.Record{
		SessionID:   outcome.SessionID,
		Project:     project,
		Item:        item,
		Step:        step,
		Version:     version,
		State:       state,
		Succeeded:   outcome.Succeeded,
		FailedStage: string(outcome.FailedStage),
		Artifacts:   outcome.Artifacts,
	}
	if outcome.Err != nil {
		record.ErrorMessage = outcome.Err.Error()
	}
	if err := store.Append(cmd.Context(), record); err != nil {
		logger.Warn("failed to record publish outcome", logging.Error(err))
	}
}
