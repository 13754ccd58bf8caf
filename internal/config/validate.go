package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateNaming(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.ProjectExportRoot == "" {
		return errors.New("paths.project_export_root must be set")
	}
	if c.Paths.JournalPath == "" {
		return errors.New("paths.journal_path must be set")
	}
	return nil
}

func (c *Config) validateNaming() error {
	if c.Naming.DefaultStartFrame < 0 {
		return errors.New("naming.default_start_frame must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.PrefetchWorkers > 256 {
		return errors.New("pipeline.prefetch_workers is unreasonably large; use 256 or fewer")
	}
	return nil
}
