package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"renderpub/internal/naming"
	"renderpub/internal/outpath"
	"renderpub/internal/saver"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var (
		project     string
		item        string
		step        string
		resource    string
		state       string
		version     int
		format      string
		destination string
		startFrame  int
		frameCount  int
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the output path a render would write to",
		Long: `Builds the convention-driven file name from the given metadata and
joins it under the configured export root. Image-sequence formats get a
zero-run frame placeholder sized to the frame range.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if !saver.KnownFormat(format) {
				return fmt.Errorf("unknown output format %q (known: %s)", format, strings.Join(saver.Formats(), ", "))
			}
			ext, _ := saver.FormatExtension(format)
			sequence, _ := saver.FormatIsSequence(format)

			saverCfg := &saver.Config{
				Format:        format,
				ImageSequence: sequence,
				Destination:   saver.DestinationProjectExport,
			}
			switch strings.TrimSpace(destination) {
			case "", string(saver.DestinationProjectExport):
			case string(saver.DestinationStepPublished):
				return fmt.Errorf("destination %q is database-governed and cannot be resolved offline", destination)
			default:
				return fmt.Errorf("unknown destination %q", destination)
			}

			nameCtx := naming.Context{
				ProjectShort: project,
				ItemShort:    item,
				StepShort:    step,
				Resource:     resource,
				Extension:    ext,
				Version:      version,
				StateShort:   state,
			}
			if startFrame == 0 {
				startFrame = cfg.Naming.DefaultStartFrame
			}
			frameRange := naming.FrameRange{Start: startFrame, FrameCount: frameCount}

			path, err := outpath.Resolve(saverCfg, nameCtx, frameRange, outpath.Roots{
				ProjectExportRoot: cfg.Paths.ProjectExportRoot,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project short code")
	cmd.Flags().StringVar(&item, "item", "", "Item (shot) short name")
	cmd.Flags().StringVar(&step, "step", "", "Pipeline step short name")
	cmd.Flags().StringVar(&resource, "resource", "", "Secondary output resource name")
	cmd.Flags().StringVar(&state, "state", "", "State short code appended to the name")
	cmd.Flags().IntVar(&version, "version", 0, "Publish version number")
	cmd.Flags().StringVar(&format, "format", "", "Render output format identifier")
	cmd.Flags().StringVar(&destination, "destination", "", "Output destination (project_export)")
	cmd.Flags().IntVar(&startFrame, "start-frame", 0, "First frame of the range")
	cmd.Flags().IntVar(&frameCount, "frame-count", 0, "Number of frames in the range")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("format")

	return cmd
}
