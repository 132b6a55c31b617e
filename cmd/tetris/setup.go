package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const logPath = "~/.arcade/tetris.log"

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
)

// loadConfig reads the game config, applies the difficulty preset (from the
// flag, else the file) and the theme flag, and makes the result the config
// for games created afterwards. The default preset is fixed, so the file's
// initial_drop_interval_ms holds unless a preset is named.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset := cfg.Difficulty
	if flagDifficulty != "" {
		if preset, err = config.ParseDifficulty(flagDifficulty); err != nil {
			return cfg, err
		}
	}
	config.ApplyTetrisPreset(&cfg, preset)
	if flagTheme != "" {
		cfg.Theme.Background = flagTheme
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	tetris.SetConfig(cfg)
	return cfg, nil
}

// defaultMode picks the mode matching the configured randomizer.
func defaultMode(cfg config.TetrisConfig) string {
	if engine.Policy(cfg.Engine.Randomizer) == engine.PolicyBag {
		return tetris.ModeBag
	}
	return tetris.ModeClassic
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
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

// openLogger opens the log file. The terminal belongs to the game, so logs
// never go to stderr while playing. On failure logging is disabled.
func openLogger() (*log.Logger, func()) {
	f, err := logging.OpenFile(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}
	logger, err := logging.New(f, "tetris", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		logger, _ = logging.New(f, "tetris", logging.DefaultLevel)
	}
	return logger, func() { f.Close() }
}

// openStore opens the score database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// gameKeys builds the in-game key bindings from the loaded config.
func gameKeys(cfg config.TetrisConfig) *tui.GameKeyMap {
	keys := tui.NewGameKeyMap(cfg.Keys)
	return &keys
}
