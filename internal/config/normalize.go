package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeNaming()
	c.normalizeRender()
	c.normalizePipeline()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeRender() {
	if c.Render.TimeoutSeconds <= 0 {
		c.Render.TimeoutSeconds = defaultRenderTimeoutSeconds
	}
	c.Render.Command = strings.TrimSpace(c.Render.Command)
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ProjectExportRoot) == "" {
		c.Paths.ProjectExportRoot = defaultProjectExportRoot
	}
	if c.Paths.ProjectExportRoot, err = expandPath(c.Paths.ProjectExportRoot); err != nil {
		return fmt.Errorf("paths.project_export_root: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.JournalPath) == "" {
		c.Paths.JournalPath = defaultJournalPath
	}
	if c.Paths.JournalPath, err = expandPath(c.Paths.JournalPath); err != nil {
		return fmt.Errorf("paths.journal_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeNaming() {
	if c.Naming.DefaultStartFrame == 0 {
		c.Naming.DefaultStartFrame = defaultStartFrame
	}
}

func (c *Config) normalizePipeline() {
	if c.Pipeline.PrefetchWorkers <= 0 {
		c.Pipeline.PrefetchWorkers = defaultPrefetchWorkers
	}
	if c.Pipeline.StatusTimeoutSeconds <= 0 {
		c.Pipeline.StatusTimeoutSeconds = defaultStatusTimeoutSeconds
	}
	c.Pipeline.StatusCommand = strings.TrimSpace(c.Pipeline.StatusCommand)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
