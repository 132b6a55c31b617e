package engine

// Spin is the T-spin classification of a rotation.
type Spin uint8

const (
	SpinNone Spin = iota
	SpinMini
	SpinFull
)

func (s Spin) String() string {
	switch s {
	case SpinMini:
		return "mini"
	case SpinFull:
		return "full"
	default:
		return "none"
	}
}

type corner struct{ r, c int }

var (
	cornerTL = corner{0, 0}
	cornerTR = corner{0, 2}
	cornerBL = corner{2, 0}
	cornerBR = corner{2, 2}
)

// frontCorners holds, per rotation state, the two corners the T points at.
var frontCorners = [NumStates][2]corner{
	{cornerTL, cornerTR},
	{cornerTR, cornerBR},
	{cornerBR, cornerBL},
	{cornerBL, cornerTL},
}

// ClassifyTSpin inspects the four corners of the 3×3 window around a T piece
// in the given state. Three or more occupied corners are required; both front
// corners occupied is a full spin and exactly one is a mini. With three
// corners filled but neither front corner occupied the result is SpinNone.
func ClassifyTSpin(w Window, state int) Spin {
	checkState(state)
	if w.Size != 3 {
		panic("engine: T-spin window must be 3x3")
	}
	occupied := func(c corner) bool { return !w.Cells[c.r][c.c].IsEmpty() }

	n := 0
	for _, c := range []corner{cornerTL, cornerTR, cornerBL, cornerBR} {
		if occupied(c) {
			n++
		}
	}
	if n < 3 {
		return SpinNone
	}

	front := 0
	for _, c := range frontCorners[state] {
		if occupied(c) {
			front++
		}
	}
	switch front {
	case 2:
		return SpinFull
	case 1:
		return SpinMini
	default:
		return SpinNone
	}
}
