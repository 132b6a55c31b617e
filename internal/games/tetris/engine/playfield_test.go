package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(pf *Playfield, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for c := 0; c < Cols; c++ {
		if !skip[c] {
			pf.SetCell(row, c, BlockCell(KindJ))
		}
	}
}

func TestNewPlayfieldIsEmpty(t *testing.T) {
	pf := NewPlayfield()
	assert.Equal(t, 0, pf.FilledCount())
	assert.Equal(t, Rows, pf.Rows())
	assert.Equal(t, Cols, pf.Cols())
	for r := 0; r < Rows; r++ {
		assert.False(t, pf.RowFull(r), "row %d", r)
	}
	// Padding columns and the floor row are walls.
	assert.True(t, pf.Cell(0, -1).IsWall())
	assert.True(t, pf.Cell(0, -2).IsWall())
	assert.True(t, pf.Cell(0, Cols).IsWall())
	assert.True(t, pf.Cell(Rows, 0).IsWall())
}

func TestCellOutsideBackingGridPanics(t *testing.T) {
	pf := NewPlayfield()
	assert.Panics(t, func() { pf.Cell(0, -3) })
	assert.Panics(t, func() { pf.Cell(Rows+1, 0) })
	assert.Panics(t, func() { pf.SetCell(0, -1, BlockCell(KindI)) })
	assert.Panics(t, func() { pf.SetCell(0, 0, Wall) })
}

func TestCanPlaceAtSpawnForEveryPiece(t *testing.T) {
	pf := NewPlayfield()
	for _, k := range AllKinds {
		for state := 0; state < NumStates; state++ {
			p := Spawn(k, state)
			assert.True(t, pf.CanPlace(p.Shape(), p.Row, p.Col), "%s state %d", k, state)
		}
	}
}

func TestCanPlaceBounds(t *testing.T) {
	pf := NewPlayfield()
	o := KindO.Shape(0)

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"floor", 19, 0, true},
		{"below floor", 20, 0, false},
		{"left of field", 10, -1, false},
		{"right edge", 10, 8, true},
		{"right of field", 10, 9, false},
		{"above field", -5, 4, true},
		{"straddling top", 0, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pf.CanPlace(o, tt.row, tt.col))
		})
	}

	pf.SetCell(19, 1, BlockCell(KindS))
	assert.False(t, pf.CanPlace(o, 19, 0))
	assert.False(t, pf.CanPlace(o, 19, 1))
	assert.True(t, pf.CanPlace(o, 18, 0))
}

func TestLockWritesCellsAndFlagsTopOut(t *testing.T) {
	pf := NewPlayfield()

	res := pf.Lock(KindO.Shape(0), 19, 0, KindO)
	assert.False(t, res.ToppedOut)
	for _, p := range []Point{{18, 0}, {18, 1}, {19, 0}, {19, 1}} {
		k, ok := pf.Cell(p.Row, p.Col).Kind()
		require.True(t, ok, "%v", p)
		assert.Equal(t, KindO, k)
	}

	res = pf.Lock(KindO.Shape(0), 0, 4, KindO)
	assert.True(t, res.ToppedOut)
	assert.True(t, pf.Cell(0, 4).IsBlock(), "cells inside the field are still written")
	assert.True(t, pf.Cell(0, 5).IsBlock())
	assert.Equal(t, 6, pf.FilledCount())
}

func TestClearFilledRowsSingle(t *testing.T) {
	pf := NewPlayfield()
	fillRow(&pf, 19)
	pf.SetCell(18, 0, BlockCell(KindT))
	pf.SetCell(17, 3, BlockCell(KindT))

	n := pf.ClearFilledRows(19, 16)
	assert.Equal(t, 1, n)
	assert.True(t, pf.Cell(19, 0).IsBlock())
	assert.True(t, pf.Cell(18, 3).IsBlock())
	assert.False(t, pf.RowFull(19))
	assert.Equal(t, 2, pf.FilledCount())
	for c := 0; c < Cols; c++ {
		assert.True(t, pf.Cell(0, c).IsEmpty())
	}
}

func TestClearFilledRowsNonAdjacent(t *testing.T) {
	pf := NewPlayfield()
	fillRow(&pf, 19)
	fillRow(&pf, 18, 4)
	fillRow(&pf, 17)
	pf.SetCell(16, 9, BlockCell(KindL))

	n := pf.ClearFilledRows(19, 16)
	assert.Equal(t, 2, n)

	// Old row 18 is now the floor row, old row 16 sits on top of it.
	assert.True(t, pf.Cell(19, 4).IsEmpty())
	assert.True(t, pf.Cell(19, 0).IsBlock())
	assert.True(t, pf.Cell(18, 9).IsBlock())
	assert.Equal(t, 10, pf.FilledCount())
}

func TestClearFilledRowsPullsRowsAboveRange(t *testing.T) {
	pf := NewPlayfield()
	fillRow(&pf, 19)
	pf.SetCell(5, 5, BlockCell(KindZ))
	pf.SetCell(0, 2, BlockCell(KindZ))

	n := pf.ClearFilledRows(19, 19)
	assert.Equal(t, 1, n)
	assert.True(t, pf.Cell(6, 5).IsBlock())
	assert.True(t, pf.Cell(1, 2).IsBlock())
	assert.True(t, pf.Cell(0, 2).IsEmpty())
	assert.True(t, pf.Cell(5, 5).IsEmpty())
}

func TestClearFilledRowsIgnoresRowsOutsideRange(t *testing.T) {
	pf := NewPlayfield()
	fillRow(&pf, 19)
	assert.Equal(t, 0, pf.ClearFilledRows(18, 15))
	assert.True(t, pf.RowFull(19))
}

func TestClearFilledRowsFourLines(t *testing.T) {
	pf := NewPlayfield()
	for r := 16; r < Rows; r++ {
		fillRow(&pf, r)
	}
	pf.SetCell(15, 7, BlockCell(KindI))

	assert.Equal(t, 4, pf.ClearFilledRows(19, 16))
	assert.Equal(t, 1, pf.FilledCount())
	assert.True(t, pf.Cell(19, 7).IsBlock())
}

func TestPlayfieldClearKeepsWalls(t *testing.T) {
	pf := NewPlayfield()
	fillRow(&pf, 10)
	pf.Clear()
	assert.Equal(t, 0, pf.FilledCount())
	assert.True(t, pf.Cell(10, -1).IsWall())
	assert.True(t, pf.Cell(Rows, 5).IsWall())
}

func TestSurrounding(t *testing.T) {
	pf := NewPlayfield()
	pf.SetCell(19, 1, BlockCell(KindS))

	w := pf.Surrounding(19, 0, 3, 0, 0)
	require.Equal(t, 3, w.Size)
	assert.True(t, w.Cells[2][1].IsBlock(), "bottom row of the window is the anchor row")
	assert.True(t, w.Cells[0][0].IsEmpty())

	w = pf.Surrounding(19, 0, 3, 1, -1)
	assert.True(t, w.Cells[2][1].IsWall(), "floor row")
	assert.True(t, w.Cells[0][0].IsWall(), "left padding")
	assert.True(t, w.Cells[1][2].IsBlock())

	w = pf.Surrounding(0, 4, 4, 0, 0)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			assert.True(t, w.Cells[r][c].IsEmpty(), "rows above the field are open (%d,%d)", r, c)
		}
	}

	w = pf.Surrounding(10, -4, 2, 0, 0)
	assert.True(t, w.Cells[0][0].IsWall(), "outside the backing grid")

	assert.Panics(t, func() { pf.Surrounding(0, 0, 5, 0, 0) })
}

func TestPlayfieldString(t *testing.T) {
	pf := NewPlayfield()
	pf.SetCell(19, 0, BlockCell(KindT))
	lines := strings.Split(pf.String(), "\n")
	require.Len(t, lines, Rows)
	assert.Equal(t, "T.........", lines[Rows-1])
	assert.Equal(t, "..........", lines[0])
}
