package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"renderpub/internal/verify"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <path>...",
		Short: "Check that render outputs exist and are non-empty",
		Long: `Verifies each path the way the publish pipeline does: a plain path
must be a non-empty regular file, a path with a frame placeholder
(shot.0000.exr) must match at least one non-empty frame on disk.`,
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failures := 0
			for _, path := range args {
				if verify.Output(path) {
					fmt.Fprintf(out, "ok      %s\n", path)
					continue
				}
				failures++
				fmt.Fprintf(out, "missing %s\n", path)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d outputs failed verification", failures, len(args))
			}
			return nil
		},
	}
}
