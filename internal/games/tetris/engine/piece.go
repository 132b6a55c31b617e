// Package engine implements the falling-block simulation: playfield, piece
// catalog, rotation with wall kicks, T-spin detection, line clearing and the
// score/level state machine.
//
// The package is UI-agnostic and deterministic. It never starts timers or
// goroutines; an external driver issues commands and gravity ticks.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// AllKinds lists every piece kind in catalog order.
var AllKinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// NumStates is the number of rotation states every kind owns.
const NumStates = 4

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("engine: unknown piece kind")

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// ParseKind converts a single-letter name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Offset is a {row, column} displacement. Positive Row moves down.
type Offset struct {
	Row int
	Col int
}

// IsZero reports whether the offset is the identity.
func (o Offset) IsZero() bool {
	return o.Row == 0 && o.Col == 0
}

// Neg returns the offset pointing the other way.
func (o Offset) Neg() Offset {
	return Offset{Row: -o.Row, Col: -o.Col}
}

// MaxShapeSize bounds the side of every shape matrix.
const MaxShapeSize = 4

// Shape is a square occupancy matrix for one rotation state.
// Row 0 is the top row; the bottom-left cell sits on the piece anchor.
type Shape struct {
	Size  int
	Cells [MaxShapeSize][MaxShapeSize]bool
}

// Filled reports whether the shape occupies local cell (r, c).
func (s Shape) Filled(r, c int) bool {
	return s.Cells[r][c]
}

// parseShape builds a shape from rows of '.' and 'X'.
func parseShape(rows ...string) Shape {
	s := Shape{Size: len(rows)}
	for r, row := range rows {
		if len(row) != s.Size {
			panic(fmt.Sprintf("engine: shape row %q is not %d wide", row, s.Size))
		}
		for c, ch := range row {
			s.Cells[r][c] = ch == 'X'
		}
	}
	return s
}

// pieceDef is the static description of one kind.
type pieceDef struct {
	shapes [NumStates]Shape
	kicks  [NumStates][]Offset
	bright core.Color
	dark   core.Color
}

// defaultKicks is shared by J, L, S, T and Z. Row i holds the candidates for
// the clockwise transition i -> i+1.
var defaultKicks = [NumStates][]Offset{
	{{0, 0}, {0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	{{0, 0}, {0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	{{0, 0}, {0, 1}, {-1, 1}, {2, 0}, {2, 1}},
	{{0, 0}, {0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
}

var iKicks = [NumStates][]Offset{
	{{0, 0}, {0, -2}, {0, 1}, {1, -2}, {-2, 1}},
	{{0, 0}, {0, -1}, {0, 2}, {-2, -1}, {1, 2}},
	{{0, 0}, {0, 2}, {0, -1}, {-1, 2}, {2, -1}},
	{{0, 0}, {0, 1}, {0, -2}, {2, 1}, {-1, -2}},
}

var oKicks = [NumStates][]Offset{
	{{0, 0}},
	{{0, 0}},
	{{0, 0}},
	{{0, 0}},
}

var catalog = [...]pieceDef{
	KindI: {
		shapes: [NumStates]Shape{
			parseShape("....", "XXXX", "....", "...."),
			parseShape("..X.", "..X.", "..X.", "..X."),
			parseShape("....", "....", "XXXX", "...."),
			parseShape(".X..", ".X..", ".X..", ".X.."),
		},
		kicks:  iKicks,
		bright: core.ColorBrightCyan,
		dark:   core.ColorCyan,
	},
	KindJ: {
		shapes: [NumStates]Shape{
			parseShape("X..", "XXX", "..."),
			parseShape(".XX", ".X.", ".X."),
			parseShape("...", "XXX", "..X"),
			parseShape(".X.", ".X.", "XX."),
		},
		kicks:  defaultKicks,
		bright: core.ColorBrightBlue,
		dark:   core.ColorBlue,
	},
	KindL: {
		shapes: [NumStates]Shape{
			parseShape("..X", "XXX", "..."),
			parseShape(".X.", ".X.", ".XX"),
			parseShape("...", "XXX", "X.."),
			parseShape("XX.", ".X.", ".X."),
		},
		kicks:  defaultKicks,
		bright: core.ColorBrightYellow,
		dark:   core.ColorOrange,
	},
	KindO: {
		shapes: [NumStates]Shape{
			parseShape("XX", "XX"),
			parseShape("XX", "XX"),
			parseShape("XX", "XX"),
			parseShape("XX", "XX"),
		},
		kicks:  oKicks,
		bright: core.ColorBrightGreen,
		dark:   core.ColorGreen,
	},
	KindS: {
		shapes: [NumStates]Shape{
			parseShape(".XX", "XX.", "..."),
			parseShape(".X.", ".XX", "..X"),
			parseShape("...", ".XX", "XX."),
			parseShape("X..", "XX.", ".X."),
		},
		kicks:  defaultKicks,
		bright: core.ColorBrightMagenta,
		dark:   core.ColorMagenta,
	},
	KindT: {
		shapes: [NumStates]Shape{
			parseShape(".X.", "XXX", "..."),
			parseShape(".X.", ".XX", ".X."),
			parseShape("...", "XXX", ".X."),
			parseShape(".X.", "XX.", ".X."),
		},
		kicks:  defaultKicks,
		bright: core.ColorBrightWhite,
		dark:   core.ColorGray,
	},
	KindZ: {
		shapes: [NumStates]Shape{
			parseShape("XX.", ".XX", "..."),
			parseShape("..X", ".XX", ".X."),
			parseShape("...", "XX.", ".XX"),
			parseShape(".X.", "XX.", "X.."),
		},
		kicks:  defaultKicks,
		bright: core.ColorBrightRed,
		dark:   core.ColorRed,
	},
}

func (k Kind) def() *pieceDef {
	if int(k) >= len(catalog) {
		panic(fmt.Sprintf("engine: piece kind %d out of range", k))
	}
	return &catalog[k]
}

func checkState(state int) {
	if state < 0 || state >= NumStates {
		panic(fmt.Sprintf("engine: rotation state %d out of range", state))
	}
}

// Shape returns the occupancy matrix of the given rotation state.
func (k Kind) Shape(state int) Shape {
	checkState(state)
	return k.def().shapes[state]
}

// Size returns the side of the kind's shape matrix.
func (k Kind) Size() int {
	return k.def().shapes[0].Size
}

// Kicks returns the wall-kick candidates authored for the clockwise
// transition state -> state+1, in trial order.
func (k Kind) Kicks(state int) []Offset {
	checkState(state)
	return k.def().kicks[state]
}

// Colors returns the bright and dark colour pair of the kind.
func (k Kind) Colors() (bright, dark core.Color) {
	d := k.def()
	return d.bright, d.dark
}

// IsValidRotate reports whether the target state's shape fits the window:
// no filled shape cell may coincide with a non-empty window cell.
func (k Kind) IsValidRotate(w Window, target int) bool {
	s := k.Shape(target)
	if w.Size != s.Size {
		panic(fmt.Sprintf("engine: window size %d does not match %s shape size %d", w.Size, k, s.Size))
	}
	for r := 0; r < s.Size; r++ {
		for c := 0; c < s.Size; c++ {
			if s.Cells[r][c] && !w.Cells[r][c].IsEmpty() {
				return false
			}
		}
	}
	return true
}
