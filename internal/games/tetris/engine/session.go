package engine

import (
	"fmt"
	"math/rand"
)

// State is the lifecycle state of a session.
type State uint8

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "not_started"
	}
}

// Direction of a horizontal shift.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// DefaultSoftDropDivisor divides the drop interval while soft drop is held.
const DefaultSoftDropDivisor = 3

// Options configures a session.
type Options struct {
	Seed                int64
	Randomizer          Policy
	InitialDropInterval int // ms
	MinDropInterval     int // ms
	SoftDropDivisor     int
	// LockOnHardDrop locks a hard-dropped piece at once instead of on the
	// following gravity tick.
	LockOnHardDrop bool
}

// DefaultOptions returns the classic settings.
func DefaultOptions() Options {
	return Options{
		Randomizer:          PolicyUniform,
		InitialDropInterval: DefaultDropInterval,
		MinDropInterval:     DefaultMinDropInterval,
		SoftDropDivisor:     DefaultSoftDropDivisor,
	}
}

// TickResult describes what one gravity tick did.
type TickResult struct {
	Moved    bool
	Locked   bool
	Clear    ClearResult
	GameOver bool
}

// Session runs one game: spawn, fall, lock, clear, spawn again. It has no
// clock of its own; the caller issues OnGravityTick at DropInterval (or
// EffectiveInterval) pace. A Session is not safe for concurrent use.
type Session struct {
	opts  Options
	rnd   Randomizer
	field Playfield
	score *ScoreEngine

	current ActivePiece
	next    Draw
	state   State

	softDrop bool
	spin     Spin
	wallKick bool

	lastClear ClearResult
	pieces    int
}

// NewSession builds a session in StateNotStarted.
func NewSession(opts Options) (*Session, error) {
	if opts.SoftDropDivisor <= 0 {
		opts.SoftDropDivisor = DefaultSoftDropDivisor
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	rnd, err := NewRandomizer(opts.Randomizer, rng)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Session{
		opts:  opts,
		rnd:   rnd,
		field: NewPlayfield(),
		score: NewScoreEngine(opts.InitialDropInterval, opts.MinDropInterval),
	}, nil
}

// Start begins a new game from any state.
func (s *Session) Start() {
	s.score.Reset()
	s.field.Clear()
	s.softDrop = false
	s.resetLatches()
	s.lastClear = ClearResult{}
	s.pieces = 0
	s.state = StateRunning
	s.next = s.rnd.Next()
	s.spawnNext()
}

func (s *Session) resetLatches() {
	s.spin = SpinNone
	s.wallKick = false
}

// spawnNext promotes the lookahead to the active piece and draws a new
// lookahead. A blocked spawn ends the game.
func (s *Session) spawnNext() {
	s.current = Spawn(s.next.Kind, s.next.State)
	s.next = s.rnd.Next()
	if !s.current.Fits(&s.field) {
		s.state = StateGameOver
	}
}

func (s *Session) running() bool {
	return s.state == StateRunning
}

// OnGravityTick drops the active piece one row, or locks it when it cannot
// fall any further.
func (s *Session) OnGravityTick() TickResult {
	if !s.running() {
		return TickResult{}
	}
	if s.current.TryDropOne(&s.field) {
		if s.softDrop {
			s.score.AddSoftDropPoint()
		}
		return TickResult{Moved: true}
	}
	return s.lock()
}

func (s *Session) lock() TickResult {
	p := s.current
	res := TickResult{Locked: true}
	s.pieces++

	if s.field.Lock(p.Shape(), p.Row, p.Col, p.Kind).ToppedOut {
		s.state = StateGameOver
		s.resetLatches()
		res.GameOver = true
		return res
	}

	lines := s.field.ClearFilledRows(p.Row, p.Row-p.Kind.Size()+1)
	res.Clear = s.score.RecordClear(ClearEvent{
		Lines:     lines,
		MiniTSpin: s.spin == SpinMini,
		FullTSpin: s.spin == SpinFull,
		WallKick:  s.wallKick,
	})
	s.lastClear = res.Clear
	s.resetLatches()

	s.spawnNext()
	res.GameOver = s.state == StateGameOver
	return res
}

// OnShift moves the active piece one column.
func (s *Session) OnShift(dir Direction) bool {
	if !s.running() {
		return false
	}
	return s.current.TryShift(&s.field, int(dir))
}

// OnRotate rotates the active piece. A non-identity kick latches the wall
// kick flag; a T rotation re-latches the T-spin classification.
func (s *Session) OnRotate(clockwise bool) bool {
	if !s.running() {
		return false
	}
	off, ok := s.current.Rotate(&s.field, clockwise)
	if !ok {
		return false
	}
	if !off.IsZero() {
		s.wallKick = true
	}
	if s.current.Kind == KindT {
		w := s.field.Surrounding(s.current.Row, s.current.Col, 3, 0, 0)
		s.spin = ClassifyTSpin(w, s.current.State)
	}
	return true
}

// OnSoftDropStart makes gravity ticks award a point per row.
func (s *Session) OnSoftDropStart() bool {
	if !s.running() || s.softDrop {
		return false
	}
	s.softDrop = true
	return true
}

// OnSoftDropStop releases soft drop. It is honoured in every state so a key
// released during a pause does not leave the flag stuck.
func (s *Session) OnSoftDropStop() bool {
	was := s.softDrop
	s.softDrop = false
	return was
}

// OnHardDrop drops the piece to the floor and returns the rows travelled.
func (s *Session) OnHardDrop() (int, bool) {
	if !s.running() {
		return 0, false
	}
	rows := s.current.HardDrop(&s.field)
	s.score.AddHardDropPoints(rows)
	if s.opts.LockOnHardDrop {
		s.lock()
	}
	return rows, true
}

// Pause suspends a running game.
func (s *Session) Pause() bool {
	if !s.running() {
		return false
	}
	s.state = StatePaused
	return true
}

// Resume continues a paused game.
func (s *Session) Resume() bool {
	if s.state != StatePaused {
		return false
	}
	s.state = StateRunning
	return true
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Current returns the active piece.
func (s *Session) Current() ActivePiece { return s.current }

// Next returns the lookahead piece.
func (s *Session) Next() Draw { return s.next }

// Field returns a copy of the playfield.
func (s *Session) Field() Playfield { return s.field }

// Score returns the score state.
func (s *Session) Score() ScoreState { return s.score.State() }

// DropInterval returns the gravity interval in milliseconds.
func (s *Session) DropInterval() int { return s.score.State().DropInterval }

// EffectiveInterval is DropInterval shortened while soft drop is held.
func (s *Session) EffectiveInterval() int {
	d := s.DropInterval()
	if s.softDrop {
		d /= s.opts.SoftDropDivisor
	}
	if d < 1 {
		d = 1
	}
	return d
}

// SoftDropping reports whether soft drop is held.
func (s *Session) SoftDropping() bool { return s.softDrop }

// GhostRow returns the anchor row the active piece would land on.
func (s *Session) GhostRow() int { return s.current.GhostRow(&s.field) }

// LastClear returns the result of the most recent lock.
func (s *Session) LastClear() ClearResult { return s.lastClear }

// PiecesPlaced counts the pieces locked since Start.
func (s *Session) PiecesPlaced() int { return s.pieces }

// LatchedSpin returns the T-spin classification waiting for the next lock.
func (s *Session) LatchedSpin() Spin { return s.spin }

// WallKickLatched reports whether a kicked rotation is waiting for the next
// lock.
func (s *Session) WallKickLatched() bool { return s.wallKick }
