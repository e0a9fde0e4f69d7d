package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blobrun/internal/games/blobrun"
)

var flagLogFile string

// openLogger returns the logger for a TUI command. The screen belongs to
// Bubble Tea, so logs only go somewhere when --log names a file. The
// returned func closes that file.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blobrun",
		Level:           log.DebugLevel,
	})
	blobrun.SetLogger(logger)

	return logger, func() {
		//nolint:errcheck // Nothing left to log to
		f.Close()
	}, nil
}

// stderrLogger is used by commands that do not take over the terminal.
func stderrLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
