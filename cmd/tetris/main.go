// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list               - List game modes
//	tetris play [mode]        - Play a mode (default from config)
//	tetris menu               - Pick a mode and difficulty interactively
//	tetris scores [mode]      - Show high scores
//	tetris simulate           - Run a seeded game headless and print its state
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - Log level for ~/.arcade/tetris.log (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling-block puzzle game in your terminal",
	Long: `A falling-block puzzle game played directly in the terminal.

Available commands:
  list      - Show all game modes
  play      - Play a mode directly
  menu      - Interactive mode and difficulty picker
  scores    - View high scores
  simulate  - Run a seeded game without a terminal

Examples:
  tetris play
  tetris play tetris_bag --difficulty hard
  tetris menu
  tetris scores tetris
  tetris simulate --seed 42 --pieces 200 --board`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
