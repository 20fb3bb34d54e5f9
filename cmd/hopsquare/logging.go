package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hopsquare/internal/games/hopsquare"
)

// newLogger builds the command logger and hands it to new game sessions.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hopsquare",
		Level:           level,
	})
	hopsquare.SetLogger(logger)
	return logger, nil
}

// interactiveLogger logs to a file because the terminal belongs to the game.
// The returned close function is never nil.
func interactiveLogger() (*log.Logger, func(), error) {
	path := flagLogFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger, lerr := newLogger(io.Discard)
			return logger, func() {}, lerr
		}
		path = filepath.Join(home, ".hopsquare", "hopsquare.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}
