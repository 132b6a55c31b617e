package engine

// Snapshot captures the observable session state for determinism checks.
type Snapshot struct {
	State        State
	Score        int
	Lines        int
	Level        int
	DropInterval int
	Kind         Kind
	Rotation     int
	Row          int
	Col          int
	NextKind     Kind
	Pieces       int
	Board        string
}

// Snapshot returns the current snapshot.
func (s *Session) Snapshot() Snapshot {
	sc := s.score.State()
	return Snapshot{
		State:        s.state,
		Score:        sc.Score,
		Lines:        sc.Lines,
		Level:        sc.Level,
		DropInterval: sc.DropInterval,
		Kind:         s.current.Kind,
		Rotation:     s.current.State,
		Row:          s.current.Row,
		Col:          s.current.Col,
		NextKind:     s.next.Kind,
		Pieces:       s.pieces,
		Board:        s.field.String(),
	}
}

// Hash folds the snapshot into a single value.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.State)
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DropInterval) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kind)
	h = h*31 + uint64(snap.Rotation) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Row)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Col)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextKind)
	h = h*31 + uint64(snap.Pieces) //#nosec G115 -- hash computation
	for i := 0; i < len(snap.Board); i++ {
		h = h*31 + uint64(snap.Board[i])
	}
	return h
}
