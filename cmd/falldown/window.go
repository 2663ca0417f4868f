package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falldown/internal/falldown"
	"github.com/vovakirdan/falldown/internal/platform/window"
	"github.com/vovakirdan/falldown/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Falldown in a desktop window sized by window.width/window.height.

Controls:
  Left/A      - Steer left (while held)
  Right/D     - Steer right (while held)
  P           - Pause
  Esc/Q       - Quit

Examples:
  falldown window
  falldown window --sound --player ann`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("falldown", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	recorder := storage.NewRecorder(store, falldown.GameID, playerName(), logger)
	opts := []window.Option{
		window.WithPresenter(recorder),
		window.WithBestScore(recorder.Best()),
	}
	if cues := startAudio(cfg, logger); cues != nil {
		defer cues.Cleanup()
		opts = append(opts, window.WithObserver(cues))
	}

	logger.Info("opening window", "width", cfg.Window.Width, "height", cfg.Window.Height)
	return window.Run(window.New(cfg, flagSeed, opts...), flagFPS)
}
