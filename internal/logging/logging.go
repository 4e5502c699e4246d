// Package logging configures the optional debug logger.
//
// The TUI owns the terminal, so diagnostics never go to stdout; they go
// to a file when -debug is set, and nowhere otherwise.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// File returns a logger appending to path, plus a close func.
func File(path string) (*log.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "tick",
	})
	return logger, f.Close, nil
}
