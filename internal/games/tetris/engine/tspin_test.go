package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func windowWith(corners ...corner) Window {
	w := Window{Size: 3}
	for _, c := range corners {
		w.Cells[c.r][c.c] = BlockCell(KindZ)
	}
	return w
}

// Three occupied corners always include a front one, so the "no front corner"
// branch of ClassifyTSpin never fires on a real window. It stays SpinNone.
func TestClassifyTSpinPerFacing(t *testing.T) {
	all := []corner{cornerTL, cornerTR, cornerBL, cornerBR}
	for state := 0; state < NumStates; state++ {
		front := frontCorners[state]
		var back []corner
		for _, c := range all {
			if c != front[0] && c != front[1] {
				back = append(back, c)
			}
		}

		tests := []struct {
			name    string
			corners []corner
			want    Spin
		}{
			{"empty", nil, SpinNone},
			{"both front only", []corner{front[0], front[1]}, SpinNone},
			{"two back one front", []corner{back[0], back[1], front[0]}, SpinMini},
			{"two back other front", []corner{back[0], back[1], front[1]}, SpinMini},
			{"both front one back", []corner{front[0], front[1], back[0]}, SpinFull},
			{"all four", all, SpinFull},
		}
		for _, tt := range tests {
			got := ClassifyTSpin(windowWith(tt.corners...), state)
			assert.Equal(t, tt.want, got, "state %d: %s", state, tt.name)
		}
	}
}

func TestClassifyTSpinCountsWalls(t *testing.T) {
	w := windowWith(cornerTL)
	w.Cells[2][0] = Wall
	w.Cells[2][2] = Wall
	// State 2 faces down: both bottom corners are walls.
	assert.Equal(t, SpinFull, ClassifyTSpin(w, 2))
	assert.Equal(t, SpinMini, ClassifyTSpin(w, 0))
}

func TestClassifyTSpinEdgesIgnored(t *testing.T) {
	w := windowWith(cornerTL, cornerTR)
	w.Cells[1][0] = Wall
	w.Cells[1][2] = Wall
	w.Cells[2][1] = Wall
	assert.Equal(t, SpinNone, ClassifyTSpin(w, 0), "only corners count")
}

func TestClassifyTSpinRejectsBadWindow(t *testing.T) {
	assert.Panics(t, func() { ClassifyTSpin(Window{Size: 4}, 0) })
	assert.Panics(t, func() { ClassifyTSpin(Window{Size: 3}, 4) })
}
