package main

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"renderpub/internal/config"
	"renderpub/internal/hook"
	"renderpub/internal/journal"
	"renderpub/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.logger = logging.NewNop()
			return
		}
		outputs := []string{"stderr"}
		if cfg.Paths.LogDir != "" {
			outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, "renderpub.log"))
		}
		logger, err := logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: outputs,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) openJournal() (*journal.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return journal.Open(cfg.Paths.JournalPath)
}

func (c *commandContext) renderHook() (*hook.Command, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.Render.TimeoutSeconds) * time.Second
	return hook.New("render", cfg.Render.Command, cfg.Render.Args, timeout, c.ensureLogger()), nil
}

func (c *commandContext) statusHook() (*hook.Command, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.Pipeline.StatusTimeoutSeconds) * time.Second
	return hook.New("status", cfg.Pipeline.StatusCommand, cfg.Pipeline.StatusArgs, timeout, c.ensureLogger()), nil
}
