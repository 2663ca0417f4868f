package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/falldown/internal/audio"
	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/storage"
)

// newLogger returns a logger for --log-file, or w when no file is given.
// The returned close func is always safe to call.
func newLogger(prefix string, w io.Writer) (*log.Logger, func(), error) {
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the game config from --config and the search path.
func loadConfig() (config.FalldownConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSound {
		cfg.Audio.Enabled = true
	}
	return cfg, nil
}

// openStore opens the scores database. Play goes on without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// startAudio returns sound cues when enabled. A missing audio device
// leaves the game silent.
func startAudio(cfg config.FalldownConfig, logger *log.Logger) *audio.Cues {
	if !cfg.Audio.Enabled {
		return nil
	}
	cues := audio.NewCues(cfg.Audio.Volume)
	if err := cues.Initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return nil
	}
	return cues
}

// playerName is --player, then $USER.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return storage.AnonymousPlayer
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
