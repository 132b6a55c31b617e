package engine

// Cell is one grid square: empty, a wall, or a block left by a locked piece.
type Cell uint8

const (
	// Empty is an unoccupied interior cell.
	Empty Cell = 0
	// Wall marks the permanent border around the logical field.
	Wall Cell = 0xFF
)

// BlockCell returns the cell a locked piece of the given kind leaves behind.
func BlockCell(k Kind) Cell {
	return Cell(k) + 1
}

// IsEmpty reports whether the cell is free.
func (c Cell) IsEmpty() bool { return c == Empty }

// IsWall reports whether the cell belongs to the border.
func (c Cell) IsWall() bool { return c == Wall }

// IsBlock reports whether the cell holds a locked piece unit.
func (c Cell) IsBlock() bool { return c != Empty && c != Wall }

// Kind returns the kind that placed a block cell. ok is false for empty and
// wall cells.
func (c Cell) Kind() (k Kind, ok bool) {
	if !c.IsBlock() {
		return 0, false
	}
	return Kind(c - 1), true
}

// Rune returns the character used in ASCII dumps.
func (c Cell) Rune() rune {
	switch {
	case c.IsEmpty():
		return '.'
	case c.IsWall():
		return '#'
	default:
		k, _ := c.Kind()
		return rune(k.String()[0])
	}
}
