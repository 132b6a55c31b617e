// Package config provides YAML-based game configuration loading and
// difficulty presets for the falling-block game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Engine     TetrisEngine     `yaml:"engine"`
	Keys       TetrisKeys       `yaml:"keys"`
	Theme      TetrisTheme      `yaml:"theme"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// TetrisEngine holds the engine tuning values. Intervals are milliseconds.
type TetrisEngine struct {
	InitialDropIntervalMS int    `yaml:"initial_drop_interval_ms"`
	MinDropIntervalMS     int    `yaml:"min_drop_interval_ms"`
	SoftDropDivisor       int    `yaml:"soft_drop_divisor"`
	Randomizer            string `yaml:"randomizer"` // "uniform" or "bag"
	LockOnHardDrop        bool   `yaml:"lock_on_hard_drop"`
}

// TetrisKeys lists the key names bound to each command, in Bubble Tea's
// key.String() form ("left", "ctrl+c", " " for space).
type TetrisKeys struct {
	ShiftLeft  []string `yaml:"shift_left"`
	ShiftRight []string `yaml:"shift_right"`
	RotateCW   []string `yaml:"rotate_cw"`
	RotateCCW  []string `yaml:"rotate_ccw"`
	SoftDrop   []string `yaml:"soft_drop"`
	HardDrop   []string `yaml:"hard_drop"`
	Pause      []string `yaml:"pause"`
	Restart    []string `yaml:"restart"`
	Quit       []string `yaml:"quit"`
}

// Background names accepted by TetrisTheme.
const (
	BackgroundDark  = "dark"
	BackgroundLight = "light"
)

// TetrisTheme selects the colour variant used for pieces.
type TetrisTheme struct {
	Background string `yaml:"background"`
	Ghost      bool   `yaml:"ghost"`
}

// Validate reports the first out-of-range value.
func (c TetrisConfig) Validate() error {
	e := c.Engine
	if e.InitialDropIntervalMS <= 0 {
		return fmt.Errorf("config: initial_drop_interval_ms must be positive, got %d", e.InitialDropIntervalMS)
	}
	if e.MinDropIntervalMS <= 0 || e.MinDropIntervalMS > e.InitialDropIntervalMS {
		return fmt.Errorf("config: min_drop_interval_ms must be in 1..%d, got %d",
			e.InitialDropIntervalMS, e.MinDropIntervalMS)
	}
	if e.SoftDropDivisor < 1 {
		return fmt.Errorf("config: soft_drop_divisor must be at least 1, got %d", e.SoftDropDivisor)
	}
	switch engine.Policy(e.Randomizer) {
	case "", engine.PolicyUniform, engine.PolicyBag:
	default:
		return fmt.Errorf("config: unknown randomizer %q", e.Randomizer)
	}
	switch c.Theme.Background {
	case "", BackgroundDark, BackgroundLight:
	default:
		return fmt.Errorf("config: unknown background %q", c.Theme.Background)
	}
	if c.Difficulty != "" {
		if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
			return err
		}
	}
	return c.Keys.validate()
}

func (k TetrisKeys) validate() error {
	owner := make(map[string]string)
	for name, keys := range k.byCommand() {
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("config: empty key bound to %s", name)
			}
			if prev, ok := owner[key]; ok && prev != name {
				return fmt.Errorf("config: key %q bound to both %s and %s", key, prev, name)
			}
			owner[key] = name
		}
	}
	return nil
}

func (k TetrisKeys) byCommand() map[string][]string {
	return map[string][]string{
		"shift_left":  k.ShiftLeft,
		"shift_right": k.ShiftRight,
		"rotate_cw":   k.RotateCW,
		"rotate_ccw":  k.RotateCCW,
		"soft_drop":   k.SoftDrop,
		"hard_drop":   k.HardDrop,
		"pause":       k.Pause,
		"restart":     k.Restart,
		"quit":        k.Quit,
	}
}

// ToOptions converts the engine section to session options.
func (c TetrisConfig) ToOptions(seed int64) engine.Options {
	return engine.Options{
		Seed:                seed,
		Randomizer:          engine.Policy(c.Engine.Randomizer),
		InitialDropInterval: c.Engine.InitialDropIntervalMS,
		MinDropInterval:     c.Engine.MinDropIntervalMS,
		SoftDropDivisor:     c.Engine.SoftDropDivisor,
		LockOnHardDrop:      c.Engine.LockOnHardDrop,
	}
}

// DarkBackground reports whether pieces should use their bright colours.
func (c TetrisConfig) DarkBackground() bool {
	return c.Theme.Background != BackgroundLight
}

// ErrUnknownDifficulty is returned by ParseDifficulty.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")
