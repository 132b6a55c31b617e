package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty accepts a preset name in any case.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownDifficulty, s)
}

// InitialIntervalForPreset returns the starting drop interval in ms for a
// preset. Easy starts at level 0 speed, normal at level 3, hard at level 6.
// The second result is false for fixed, which keeps the configured value.
func InitialIntervalForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 790, true
	case DifficultyNormal:
		return 550, true
	case DifficultyHard:
		return 310, true
	default:
		return 0, false
	}
}

// IsFixedPreset returns true if the preset keeps the configured interval.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// The minimum interval is lowered if it would exceed the new start value.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	if IsFixedPreset(preset) {
		return
	}
	interval, ok := InitialIntervalForPreset(preset)
	if !ok {
		return
	}
	cfg.Engine.InitialDropIntervalMS = interval
	if cfg.Engine.MinDropIntervalMS > interval {
		cfg.Engine.MinDropIntervalMS = interval
	}
}
