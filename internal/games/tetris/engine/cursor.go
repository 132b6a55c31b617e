package engine

// Point is an absolute logical grid coordinate.
type Point struct {
	Row int
	Col int
}

// ActivePiece is the falling piece: its kind, rotation state and the anchor
// (bottom-left corner of its shape matrix) in logical coordinates.
type ActivePiece struct {
	Kind  Kind
	State int
	Row   int
	Col   int
}

// SpawnRow is the anchor row of every freshly spawned piece.
const SpawnRow = 0

// Spawn returns a piece of the given kind and state at the spawn anchor:
// row 0, horizontally centred.
func Spawn(kind Kind, state int) ActivePiece {
	checkState(state)
	return ActivePiece{
		Kind:  kind,
		State: state,
		Row:   SpawnRow,
		Col:   (Cols - kind.Size()) / 2,
	}
}

// Shape returns the matrix of the current rotation state.
func (p ActivePiece) Shape() Shape {
	return p.Kind.Shape(p.State)
}

// Fits reports whether the piece can stand where it is.
func (p ActivePiece) Fits(pf *Playfield) bool {
	return pf.CanPlace(p.Shape(), p.Row, p.Col)
}

// Cells returns the absolute coordinates of the occupied cells, including
// those above the field.
func (p ActivePiece) Cells() []Point {
	pts := make([]Point, 0, 4)
	shapeCells(p.Shape(), p.Row, p.Col, func(r, c int) bool {
		pts = append(pts, Point{Row: r, Col: c})
		return true
	})
	return pts
}

// TryShift moves the piece dc columns if it fits there.
func (p *ActivePiece) TryShift(pf *Playfield, dc int) bool {
	if !pf.CanPlace(p.Shape(), p.Row, p.Col+dc) {
		return false
	}
	p.Col += dc
	return true
}

// TryDropOne moves the piece one row down if it fits there.
func (p *ActivePiece) TryDropOne(pf *Playfield) bool {
	if !pf.CanPlace(p.Shape(), p.Row+1, p.Col) {
		return false
	}
	p.Row++
	return true
}

// HardDrop drops the piece as far as it goes and returns the rows travelled.
func (p *ActivePiece) HardDrop(pf *Playfield) int {
	n := 0
	for p.TryDropOne(pf) {
		n++
	}
	return n
}

// GhostRow returns the anchor row the piece would land on.
func (p ActivePiece) GhostRow(pf *Playfield) int {
	ghost := p
	ghost.HardDrop(pf)
	return ghost.Row
}

// Rotate turns the piece a quarter turn, trying the kick candidates in
// order. Clockwise uses the current state's list as authored; counter-clockwise
// uses the target state's list negated. On success the state and anchor are
// updated and the applied offset is returned.
func (p *ActivePiece) Rotate(pf *Playfield, clockwise bool) (Offset, bool) {
	var (
		target int
		kicks  []Offset
	)
	if clockwise {
		target = (p.State + 1) % NumStates
		kicks = p.Kind.Kicks(p.State)
	} else {
		target = (p.State + NumStates - 1) % NumStates
		kicks = p.Kind.Kicks(target)
	}
	size := p.Kind.Size()
	for _, k := range kicks {
		if !clockwise {
			k = k.Neg()
		}
		w := pf.Surrounding(p.Row, p.Col, size, k.Row, k.Col)
		if !p.Kind.IsValidRotate(w, target) {
			continue
		}
		p.State = target
		p.Row += k.Row
		p.Col += k.Col
		return k, true
	}
	return Offset{}, false
}
