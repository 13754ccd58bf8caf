package hook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"renderpub/internal/logging"
)

// Command describes one configured external hook.
type Command struct {
	Name    string
	Path    string
	Args    []string
	Timeout time.Duration
	logger  *slog.Logger
}

// New builds a hook command. The logger may be nil.
func New(name, path string, args []string, timeout time.Duration, logger *slog.Logger) *Command {
	return &Command{
		Name:    name,
		Path:    strings.TrimSpace(path),
		Args:    args,
		Timeout: timeout,
		logger:  logging.NewComponentLogger(logger, "hook"),
	}
}

// Configured reports whether an executable has been assigned.
func (c *Command) Configured() bool {
	return c != nil && c.Path != ""
}

// Run executes the hook with extra arguments appended to the
// configured ones, honoring the timeout. Stderr is captured into the
// returned error so operators see the tool's own diagnostic.
func (c *Command) Run(ctx context.Context, extra ...string) error {
	if !c.Configured() {
		return fmt.Errorf("%s hook is not configured", c.Name)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(c.Args)+len(extra))
	args = append(args, c.Args...)
	args = append(args, extra...)

	cmd := exec.CommandContext(ctx, c.Path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	started := time.Now()
	c.logger.Debug("hook started",
		logging.String("hook", c.Name),
		logging.String("path", c.Path),
		logging.Int("args", len(args)),
	)

	err := cmd.Run()
	elapsed := time.Since(started)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s hook timed out after %s", c.Name, c.Timeout)
		}
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("%s hook failed: %w: %s", c.Name, err, detail)
		}
		return fmt.Errorf("%s hook failed: %w", c.Name, err)
	}

	c.logger.Debug("hook finished",
		logging.String("hook", c.Name),
		logging.Duration("elapsed", elapsed),
	)
	return nil
}

// Renderer adapts a hook command to the publish Renderer contract.
type Renderer struct {
	Command *Command
}

func (r Renderer) Render(ctx context.Context, selector string) error {
	return r.Command.Run(ctx, selector)
}

// StatusCommitter adapts a hook command to the publish status-commit
// contract: state, version, and comment become trailing arguments.
type StatusCommitter struct {
	Command *Command
}

func (s StatusCommitter) Commit(ctx context.Context, state string, version int, comment string) error {
	return s.Command.Run(ctx, state, strconv.Itoa(version), comment)
}
