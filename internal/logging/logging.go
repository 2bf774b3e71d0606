// Package logging configures the application logger.
//
// The TUI owns the terminal, so logs go to a file (or are discarded)
// rather than stderr unless a non-interactive command is running.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a leveled logger writing to w. Verbose enables debug
// level; otherwise info and above.
func New(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wayfarer",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// File opens path for appending and returns a logger writing to it,
// along with a close func.
func File(path string, verbose bool) (*log.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(f, verbose), f.Close, nil
}

// Discard returns a logger that drops everything. Used when no log
// file is configured so the TUI output stays clean.
func Discard() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel + 1)
	return l
}
