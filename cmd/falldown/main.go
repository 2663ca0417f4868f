// falldown is an arcade game: steer a falling square through the gaps in
// a shaft of rising blocks.
//
// Usage:
//
//	falldown play      - Play in the terminal
//	falldown window    - Play in a desktop window
//	falldown serve     - Start SSH server for remote play
//	falldown scores    - Show score history
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gap sequences
//	--db <path>        - Set database path (default: ~/.falldown/scores.db)
//	--config <path>    - Game config YAML
//	--log-file <path>  - Write logs to a file
//	--sound            - Enable sound cues
//	--player <name>    - Name recorded with scores
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/falldown/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagSound   bool
	flagPlayer  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "falldown",
	Short: "Falldown - steer through the gaps before the blocks push you out",
	Long: `Falldown drops a square down a shaft of rising blocks. Each block has
one gap; slip through it to score, or get carried up. Reaching the top
ends the game.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View score history

Examples:
  falldown play
  falldown play --seed 42 --sound
  falldown window
  falldown serve --ssh :2222
  falldown scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable sound cues")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for the score history (default: $USER)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
