package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"renderpub/internal/journal"
	"renderpub/internal/statuscache"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		limit int
		item  string
		step  string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent publish runs from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			var records []*journal.Record
			if strings.TrimSpace(item) != "" || strings.TrimSpace(step) != "" {
				if item == "" || step == "" {
					return errors.New("--item and --step must be used together")
				}
				records, err = store.ListForItemStep(cmd.Context(), item, step)
			} else {
				records, err = store.List(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No publish runs recorded yet.")
				return nil
			}

			states := currentStates(cmd.Context(), store, records, cfg.Pipeline.PrefetchWorkers)
			colorize := shouldColorize(out)

			headers := []string{"When", "Project", "Item", "Step", "Version", "Result", "Current State", "Artifacts"}
			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				current := states[statuscache.Key{Item: rec.Item, Step: rec.Step}]
				if current == "" {
					current = "-"
				}
				rows = append(rows, []string{
					formatTimestamp(rec.CreatedAt),
					rec.Project,
					rec.Item,
					rec.Step,
					formatVersion(rec.Version),
					outcomeLabel(rec.Succeeded, rec.FailedStage, colorize),
					current,
					strconv.Itoa(len(rec.Artifacts)),
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{
				alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft, alignRight,
			}))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	cmd.Flags().StringVar(&item, "item", "", "Filter by item short name")
	cmd.Flags().StringVar(&step, "step", "", "Filter by step short name")

	return cmd
}

// currentStates resolves the last committed state for every item/step
// pair in the listing. Lookups fan out over a bounded pool; a pair with
// no successful run simply has no current state.
func currentStates(ctx context.Context, store *journal.Store, records []*journal.Record, workers int) map[statuscache.Key]string {
	seen := make(map[statuscache.Key]struct{}, len(records))
	keys := make([]statuscache.Key, 0, len(records))
	for _, rec := range records {
		key := statuscache.Key{Item: rec.Item, Step: rec.Step}
		if key.Item == "" && key.Step == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	lookup := func(ctx context.Context, key statuscache.Key) (string, error) {
		history, err := store.ListForItemStep(ctx, key.Item, key.Step)
		if err != nil {
			return "", err
		}
		for _, rec := range history {
			if rec.Succeeded {
				return rec.State, nil
			}
		}
		return "", nil
	}
	return statuscache.FetchAll(ctx, keys, lookup, workers)
}

func formatVersion(version int) string {
	if version <= 0 {
		return "-"
	}
	return fmt.Sprintf("v%03d", version)
}
