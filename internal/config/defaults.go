package config

const (
	defaultProjectExportRoot    = "~/renderpub/export"
	defaultLogDir               = "~/.local/share/renderpub/logs"
	defaultJournalPath          = "~/.local/share/renderpub/journal.db"
	defaultStartFrame           = 1001
	defaultRenderTimeoutSeconds = 3600
	defaultStatusTimeoutSeconds = 30
	defaultPrefetchWorkers      = 16
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectExportRoot: defaultProjectExportRoot,
			LogDir:            defaultLogDir,
			JournalPath:       defaultJournalPath,
		},
		Naming: Naming{
			DefaultStartFrame: defaultStartFrame,
		},
		Render: Render{
			TimeoutSeconds: defaultRenderTimeoutSeconds,
		},
		Pipeline: Pipeline{
			StatusTimeoutSeconds: defaultStatusTimeoutSeconds,
			PrefetchWorkers:      defaultPrefetchWorkers,
		},
		Copy: Copy{
			Verified: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
