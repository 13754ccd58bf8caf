package testsupport

import (
	"path/filepath"
	"testing"

	"renderpub/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per
// test and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ProjectExportRoot = filepath.Join(base, "export")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.JournalPath = filepath.Join(base, "journal.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithRenderCommand points the render hook at an executable.
func WithRenderCommand(path string, args ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Render.Command = path
		cfg.Render.Args = args
	}
}

// WithStatusCommand points the status-commit hook at an executable.
func WithStatusCommand(path string, args ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Pipeline.StatusCommand = path
		cfg.Pipeline.StatusArgs = args
	}
}
