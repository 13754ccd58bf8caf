package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func outcomeLabel(succeeded bool, failedStage string, colorize bool) string {
	if succeeded {
		if colorize {
			return ansiGreen + "ok" + ansiReset
		}
		return "ok"
	}
	label := "failed"
	if stage := strings.TrimSpace(failedStage); stage != "" {
		label = fmt.Sprintf("failed (%s)", stage)
	}
	if colorize {
		return ansiRed + label + ansiReset
	}
	return label
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04:05")
}
