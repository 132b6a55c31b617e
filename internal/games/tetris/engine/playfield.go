package engine

import "strings"

// Logical field dimensions.
const (
	Cols = 10
	Rows = 20
)

// The backing grid carries two wall columns on each side and a wall row under
// the floor so that bounds checks are ordinary collision checks.
const (
	padCols  = 2
	gridCols = Cols + 2*padCols
	gridRows = Rows + 1
)

// Playfield is the grid of placed cells. The zero value is not usable; build
// one with NewPlayfield. Playfield is a plain value, so assigning it copies
// the whole grid.
type Playfield struct {
	grid [gridRows][gridCols]Cell
}

// NewPlayfield returns an empty field surrounded by walls.
func NewPlayfield() Playfield {
	var pf Playfield
	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridCols; c++ {
			if r == Rows || c < padCols || c >= padCols+Cols {
				pf.grid[r][c] = Wall
			}
		}
	}
	return pf
}

// Rows returns the number of logical rows.
func (pf *Playfield) Rows() int { return Rows }

// Cols returns the number of logical columns.
func (pf *Playfield) Cols() int { return Cols }

// Cell returns the cell at logical (row, col). Coordinates outside the backing
// array panic.
func (pf *Playfield) Cell(row, col int) Cell {
	return pf.grid[row][col+padCols]
}

// SetCell writes an interior cell. Used to build fixtures; writes outside the
// logical area panic so the walls stay intact.
func (pf *Playfield) SetCell(row, col int, c Cell) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols || c == Wall {
		panic("engine: SetCell outside the interior or with a wall value")
	}
	pf.grid[row][col+padCols] = c
}

// Clear empties every interior cell.
func (pf *Playfield) Clear() {
	for r := 0; r < Rows; r++ {
		pf.clearRow(r)
	}
}

func (pf *Playfield) clearRow(r int) {
	for c := padCols; c < padCols+Cols; c++ {
		pf.grid[r][c] = Empty
	}
}

// RowFull reports whether every interior cell of the row is occupied.
func (pf *Playfield) RowFull(row int) bool {
	for c := padCols; c < padCols+Cols; c++ {
		if pf.grid[row][c].IsEmpty() {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied interior cells.
func (pf *Playfield) FilledCount() int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := padCols; c < padCols+Cols; c++ {
			if pf.grid[r][c].IsBlock() {
				n++
			}
		}
	}
	return n
}

// shapeCells calls fn with the grid row and logical column of every filled
// cell of the shape anchored at (row, col). The anchor is the bottom-left
// corner of the shape matrix.
func shapeCells(s Shape, row, col int, fn func(r, c int) bool) {
	for sr := 0; sr < s.Size; sr++ {
		for sc := 0; sc < s.Size; sc++ {
			if !s.Cells[sr][sc] {
				continue
			}
			if !fn(row-(s.Size-1-sr), col+sc) {
				return
			}
		}
	}
}

// CanPlace reports whether the shape fits with its anchor at (row, col).
// Cells above row 0 are always open.
func (pf *Playfield) CanPlace(s Shape, row, col int) bool {
	ok := true
	shapeCells(s, row, col, func(r, c int) bool {
		switch {
		case c < 0 || c >= Cols || r >= Rows:
			ok = false
		case r < 0:
		case !pf.grid[r][c+padCols].IsEmpty():
			ok = false
		}
		return ok
	})
	return ok
}

// LockResult reports the outcome of writing a piece into the field.
type LockResult struct {
	// ToppedOut is set when at least one cell landed above row 0.
	ToppedOut bool
}

// Lock writes the shape into the grid as blocks of kind. Cells above row 0
// are skipped and flag a top-out.
func (pf *Playfield) Lock(s Shape, row, col int, kind Kind) LockResult {
	var res LockResult
	shapeCells(s, row, col, func(r, c int) bool {
		if r < 0 {
			res.ToppedOut = true
			return true
		}
		pf.grid[r][c+padCols] = BlockCell(kind)
		return true
	})
	return res
}

// rowFrom copies row src into row dst. A negative src yields an empty row.
func (pf *Playfield) rowFrom(dst, src int) {
	if src < 0 {
		pf.clearRow(dst)
		return
	}
	if src == dst {
		return
	}
	copy(pf.grid[dst][padCols:padCols+Cols], pf.grid[src][padCols:padCols+Cols])
}

// ClearFilledRows removes the full rows between fromRow (the lowest row to
// test) and toRow (the highest), pulling everything above them down, and
// returns how many rows were removed. Rows outside the range are never tested
// for fullness.
func (pf *Playfield) ClearFilledRows(fromRow, toRow int) int {
	if fromRow > Rows-1 {
		fromRow = Rows - 1
	}
	if toRow < 0 {
		toRow = 0
	}
	cleared := 0
	for r := fromRow; r >= toRow; r-- {
		for {
			if cleared > 0 {
				pf.rowFrom(r, r-cleared)
			}
			if !pf.RowFull(r) {
				break
			}
			cleared++
		}
	}
	if cleared > 0 {
		for r := toRow - 1; r >= 0; r-- {
			pf.rowFrom(r, r-cleared)
		}
	}
	return cleared
}

// Window is a square block of cells cut from the grid around a piece anchor.
// Row 0 is the top of the window.
type Window struct {
	Size  int
	Cells [MaxShapeSize][MaxShapeSize]Cell
}

// Surrounding returns the size×size window whose bottom-left corner is at
// (row+rowOffset, col+colOffset). Positions left, right or below the backing
// grid read as Wall; positions above row 0 read as Empty.
func (pf *Playfield) Surrounding(row, col, size, rowOffset, colOffset int) Window {
	if size < 1 || size > MaxShapeSize {
		panic("engine: window size out of range")
	}
	w := Window{Size: size}
	baseRow := row + rowOffset
	baseCol := col + colOffset + padCols
	for r := 0; r < size; r++ {
		gr := baseRow - (size - 1 - r)
		for c := 0; c < size; c++ {
			gc := baseCol + c
			switch {
			case gc < 0 || gc >= gridCols || gr >= gridRows:
				w.Cells[r][c] = Wall
			case gr < 0:
				w.Cells[r][c] = Empty
			default:
				w.Cells[r][c] = pf.grid[gr][gc]
			}
		}
	}
	return w
}

// String renders the interior as rows of runes, top row first.
func (pf *Playfield) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Cols; c++ {
			sb.WriteRune(pf.Cell(r, c).Rune())
		}
	}
	return sb.String()
}
