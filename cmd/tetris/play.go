package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode. Without a mode the randomizer from the
config decides: "uniform" plays tetris, "bag" plays tetris_bag.

Controls (defaults, see configs/tetris.yaml):
  Left/Right, h/l   - Shift
  Up, x, k          - Rotate clockwise
  z                 - Rotate counter-clockwise
  Down, j           - Soft drop (hold)
  Space             - Hard drop
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit
  ?                 - Toggle help

Difficulty options:
  easy    - Start at the slowest drop speed (790 ms)
  normal  - Start at 550 ms
  hard    - Start at 310 ms
  fixed   - Use the config's initial interval unchanged

Examples:
  tetris play
  tetris play tetris_bag
  tetris play --difficulty hard --theme light
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, simulateCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().StringVar(&flagTheme, "theme", "", "Colour theme: dark, light")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameID := defaultMode(cfg)
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	store := openStore(logger)
	rt := terminalConfig()
	logger.Info("play", "mode", gameID, "difficulty", cfg.Difficulty, "fps", rt.TickRate)

	final, runErr := tui.Run(game, rt, tui.Options{
		Store:  store,
		Logger: logger,
		Keys:   gameKeys(cfg),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Score %d  Lines %d  Level %d\n", final.Score, final.Lines, final.Level)
}
