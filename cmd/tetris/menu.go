package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty,
Enter to play and Tab to view high scores. After a game ends you
return to the menu.

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	base, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	store := openStore(logger)
	rt := terminalConfig()
	preset := base.Difficulty
	lastMode := ""

	// Menu loop
	for {
		result, err := tui.RunMenu(store, rt, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the chosen difficulty across rounds
		rt = result.Config
		preset = result.Difficulty

		if result.Quit {
			break
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, lastMode, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if result.GameID == "" {
			break
		}

		cfg := base
		config.ApplyTetrisPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		tetris.SetConfig(cfg)

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		lastMode = result.GameID

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}
		logger.Info("play", "mode", result.GameID, "difficulty", preset)

		if _, err := tui.Run(game, rt, tui.Options{Store: store, Logger: logger, Keys: gameKeys(cfg)}); err != nil {
			logger.Error("game failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
