package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/games/grove"
	"github.com/vovakirdan/tui-grove/internal/levels"
	"github.com/vovakirdan/tui-grove/internal/platform/spectate"
	"github.com/vovakirdan/tui-grove/internal/storage"
)

// applyGameSettings hands the global flags to the grove game before any
// instance is created.
func applyGameSettings() {
	grove.SetConfigPath(flagConfig)
	grove.SetDifficultyPreset(flagDifficulty)
	grove.SetLayoutDir(flagLayoutDir)
}

// newLogger builds the structured logger. Terminal play must not write to
// the screen, so without --log it discards unless toStderr is set.
func newLogger(prefix string, toStderr bool) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closer := func() {}

	switch {
	case flagLogPath != "":
		path := expandHome(flagLogPath)
		//nolint:errcheck // Best-effort directory creation
		os.MkdirAll(filepath.Dir(path), 0o755)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
			break
		}
		w = f
		closer = func() { f.Close() }
	case toStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if os.Getenv("GROVE_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer
}

func expandHome(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the runs database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

func loadLayouts() ([]levels.Layout, error) {
	return levels.NewLoader(flagLayoutDir).LoadAll()
}

// startSpectator serves the websocket feed when --spectate is set and
// hooks it into every grove session. The returned stop function is safe
// to call when nothing was started.
func startSpectator(logger *log.Logger) (*spectate.Hub, func()) {
	if flagSpectate == "" {
		return nil, func() {}
	}

	hub := spectate.NewHub(spectate.WithLogger(logger.WithPrefix("spectate")), spectate.WithEvery(2))
	mux := http.NewServeMux()
	mux.Handle("/spectate", hub)
	srv := &http.Server{
		Addr:              flagSpectate,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("spectator feed listening", "address", flagSpectate, "path", "/spectate")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("spectator feed stopped", "err", err)
		}
	}()
	grove.SetSpectator(hub)

	return hub, func() {
		grove.SetSpectator(nil)
		hub.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		//nolint:errcheck // Best-effort shutdown
		srv.Shutdown(ctx)
	}
}
