package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falldown/internal/core"
	"github.com/vovakirdan/falldown/internal/falldown"
	"github.com/vovakirdan/falldown/internal/platform/tui"
	"github.com/vovakirdan/falldown/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Falldown in the terminal.

Terminals do not report key releases, so a direction stays held while the
key auto-repeats and lets go shortly after (input.release_after_ms).

Controls:
  Left/A/H    - Steer left
  Right/D/L   - Steer right
  Down/S/Space- Stop steering
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Examples:
  falldown play
  falldown play --seed 42
  falldown play --config ./my-falldown.yaml --log-file falldown.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to the game; logs only go to --log-file
	logger, closeLog, err := newLogger("falldown", io.Discard)
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

	game := falldown.NewGame(cfg)
	recorder := storage.NewRecorder(store, game.ID(), playerName(), logger)
	game.SetPresenter(recorder)
	game.SetBestScore(recorder.Best())

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []tui.ModelOption{tui.WithReleaseAfter(cfg.Input.ReleaseAfter())}
	if cues := startAudio(cfg, logger); cues != nil {
		defer cues.Cleanup()
		opts = append(opts, tui.WithObserver(cues))
	}

	logger.Debug("starting terminal game", "cols", width, "rows", height, "seed", flagSeed)
	if err := tui.Run(game, rc, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
