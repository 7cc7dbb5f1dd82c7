package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/platform/tui"
	"github.com/vovakirdan/pixel-snake/internal/storage"
)

// newLogger builds the process logger. Without --log-file it writes to
// fallback, which is io.Discard while the TUI owns the terminal.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openServices loads the configuration and opens the shared score file and
// history database. A history database that cannot be opened is reported and
// skipped; the game still runs.
func openServices(logger *log.Logger) (tui.Services, func(), error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return tui.Services{}, nil, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	scores, err := storage.OpenScoreBoard(flagScoresPath, logger)
	if err != nil {
		return tui.Services{}, nil, err
	}

	services := tui.Services{
		Config: cfg,
		Scores: scores,
		Logger: logger,
	}
	closeFn := func() {}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: session history disabled: %v\n", err)
	} else {
		services.History = store
		closeFn = func() { store.Close() }
	}

	return services, closeFn, nil
}
