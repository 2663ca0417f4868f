package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/falldown/internal/falldown"
	"github.com/vovakirdan/falldown/internal/platform/tui"
	"github.com/vovakirdan/falldown/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show score history",
	Long: `Display the best Falldown scores.

On a terminal the scores open in a scrollable table; when piped they are
printed as plain text.

Examples:
  falldown scores
  falldown scores --limit 5 | cat
  falldown scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print when not on a terminal")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(falldown.GameID)
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d scores.\n", n)
		return nil
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, h := terminalSize()
		return tui.RunScoreboard(store, falldown.GameID, "Falldown", w, h)
	}

	scores, err := store.TopScores(falldown.GameID, flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.GameStats(falldown.GameID)
	if err != nil {
		return err
	}
	fmt.Print(tui.FormatScores(scores, stats))
	return nil
}
