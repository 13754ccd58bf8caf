package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"renderpub/internal/literal"
	"renderpub/internal/saver"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var encode bool

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract saver configuration from a pasted node dump",
		Long: `Reads a compositing node dump from the given file (or stdin) and
extracts the render-output format and its properties. Text without a
recognizable saver declaration is reported as such, not as an error.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			cfg, ok := saver.Extract(raw)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No saver configuration found in the pasted text.")
				return nil
			}

			out := cmd.OutOrStdout()
			if encode {
				fmt.Fprintln(out, cfg.EncodeLiteral())
				return nil
			}

			ext, _ := saver.FormatExtension(cfg.Format)
			fmt.Fprintf(out, "Format:    %s\n", cfg.Format)
			fmt.Fprintf(out, "Extension: %s\n", ext)
			fmt.Fprintf(out, "Sequence:  %t\n", cfg.ImageSequence)

			keys := cfg.PropertyKeys()
			if len(keys) == 0 {
				fmt.Fprintln(out, "Properties: none")
				return nil
			}
			headers := []string{"Property", "Value"}
			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				value, _ := cfg.Property(key)
				rows = append(rows, []string{key, formatLiteral(value)})
			}
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&encode, "encode", false, "Print the normalized literal instead of a summary")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read dump file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func formatLiteral(value literal.Value) string {
	if value.Kind() == literal.KindString {
		return value.Text()
	}
	return strings.TrimSpace(value.Encode())
}
