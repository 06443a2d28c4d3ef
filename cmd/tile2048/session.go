package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile2048/internal/config"
	"github.com/vovakirdan/tile2048/internal/game"
	"github.com/vovakirdan/tile2048/internal/storage"
)

// session bundles what every play command needs.
type session struct {
	game   *game.Game
	store  *storage.Store
	logger *log.Logger
	seed   int64
	fps    int
	closer func()
}

// Close releases the store and the log file.
func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
	s.closer()
}

// newLogger builds the process logger. Without --log-file, logs go to
// stderr, or nowhere when stderr is needed for the game itself.
func newLogger(quietStderr bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case quietStderr:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tile2048",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// newSession loads the config, seeds the RNG and opens the result store.
// A store that cannot be opened is logged and play goes on without it.
func newSession(backend string, quietStderr bool) (*session, error) {
	logger, closer, err := newLogger(quietStderr)
	if err != nil {
		return nil, err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		closer()
		return nil, err
	}
	if flagFPS > 0 {
		cfg.Window.FPS = flagFPS
	}

	theme, err := cfg.Theme()
	if err != nil {
		closer()
		return nil, err
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database, results will not be saved", "error", err)
		store = nil
	}

	logger.Info("starting", "backend", backend, "seed", seed, "config", source, "fps", theme.FPS)

	return &session{
		game:   game.New(theme, rand.New(rand.NewSource(seed))),
		store:  store,
		logger: logger,
		seed:   seed,
		fps:    theme.FPS,
		closer: closer,
	}, nil
}
