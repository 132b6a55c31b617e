package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Engine: TetrisEngine{
			InitialDropIntervalMS: 790,
			MinDropIntervalMS:     50,
			SoftDropDivisor:       3,
			Randomizer:            "uniform",
			LockOnHardDrop:        false,
		},
		Keys: TetrisKeys{
			ShiftLeft:  []string{"left", "h"},
			ShiftRight: []string{"right", "l"},
			RotateCW:   []string{"up", "x", "k"},
			RotateCCW:  []string{"z"},
			SoftDrop:   []string{"down", "j"},
			HardDrop:   []string{" "},
			Pause:      []string{"p"},
			Restart:    []string{"r"},
			Quit:       []string{"q", "ctrl+c"},
		},
		Theme: TetrisTheme{
			Background: BackgroundDark,
			Ghost:      true,
		},
		Difficulty: DifficultyFixed,
	}
}
