package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStartedSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := NewSession(opts)
	require.NoError(t, err)
	s.Start()
	require.Equal(t, StateRunning, s.State())
	return s
}

// withCurrent replaces the active piece so scenarios do not depend on the
// random sequence.
func withCurrent(s *Session, kind Kind, state int) {
	s.current = Spawn(kind, state)
}

func TestNewSessionRejectsUnknownRandomizer(t *testing.T) {
	opts := DefaultOptions()
	opts.Randomizer = "weighted"
	_, err := NewSession(opts)
	assert.Error(t, err)
}

func TestCommandsIgnoredBeforeStart(t *testing.T) {
	s, err := NewSession(DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, StateNotStarted, s.State())

	assert.False(t, s.OnShift(Left))
	assert.False(t, s.OnRotate(true))
	assert.False(t, s.OnSoftDropStart())
	_, ok := s.OnHardDrop()
	assert.False(t, ok)
	assert.Equal(t, TickResult{}, s.OnGravityTick())
	assert.False(t, s.Pause())
	assert.False(t, s.Resume())
}

func TestStartSpawnsPieces(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	cur := s.Current()
	assert.Equal(t, SpawnRow, cur.Row)
	assert.Equal(t, (Cols-cur.Kind.Size())/2, cur.Col)
	f := s.Field()
	assert.True(t, cur.Fits(&f))
	assert.Zero(t, s.PiecesPlaced())
	assert.Equal(t, DefaultDropInterval, s.DropInterval())
}

func TestOPieceFallsAndLocks(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	withCurrent(s, KindO, 0)

	for i := 0; i < 19; i++ {
		res := s.OnGravityTick()
		require.True(t, res.Moved, "tick %d", i)
	}
	res := s.OnGravityTick()
	assert.True(t, res.Locked)
	assert.False(t, res.GameOver)
	assert.False(t, res.Clear.Scored)

	f := s.Field()
	for _, p := range []Point{{18, 4}, {18, 5}, {19, 4}, {19, 5}} {
		assert.True(t, f.Cell(p.Row, p.Col).IsBlock(), "%v", p)
	}
	assert.Equal(t, 4, f.FilledCount())
	assert.Zero(t, s.Score().Score)
	assert.Zero(t, s.Score().Lines)
	assert.Equal(t, 1, s.PiecesPlaced())
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, SpawnRow, s.Current().Row)
}

func TestSoftDropAwardsPointPerRow(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	withCurrent(s, KindO, 0)

	require.True(t, s.OnSoftDropStart())
	assert.False(t, s.OnSoftDropStart(), "already held")
	assert.Equal(t, DefaultDropInterval/3, s.EffectiveInterval())

	for i := 0; i < 19; i++ {
		s.OnGravityTick()
	}
	assert.Equal(t, 19, s.Score().Score)

	assert.True(t, s.OnSoftDropStop())
	assert.Equal(t, DefaultDropInterval, s.EffectiveInterval())
	s.OnGravityTick()
	assert.Equal(t, 19, s.Score().Score, "locking tick awards nothing")
}

func TestHardDropLocksOnNextTick(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	withCurrent(s, KindO, 0)

	rows, ok := s.OnHardDrop()
	require.True(t, ok)
	assert.Equal(t, 19, rows)
	assert.Equal(t, 38, s.Score().Score)
	assert.Zero(t, s.PiecesPlaced())

	res := s.OnGravityTick()
	assert.True(t, res.Locked)
	assert.Equal(t, 1, s.PiecesPlaced())
}

func TestHardDropLockImmediately(t *testing.T) {
	opts := DefaultOptions()
	opts.LockOnHardDrop = true
	s := newStartedSession(t, opts)
	withCurrent(s, KindO, 0)

	rows, ok := s.OnHardDrop()
	require.True(t, ok)
	assert.Equal(t, 19, rows)
	assert.Equal(t, 1, s.PiecesPlaced())
	f := s.Field()
	assert.Equal(t, 4, f.FilledCount())
}

func TestLineClearThroughSession(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	fillRow(&s.field, 19, 8, 9)
	withCurrent(s, KindO, 0)

	for i := 0; i < 4; i++ {
		require.True(t, s.OnShift(Right))
	}
	assert.False(t, s.OnShift(Right), "right wall")

	rows, _ := s.OnHardDrop()
	require.Equal(t, 19, rows)
	res := s.OnGravityTick()
	require.True(t, res.Locked)
	assert.Equal(t, 1, res.Clear.Lines)
	assert.Equal(t, TagRegular, res.Clear.Tag)
	assert.Equal(t, 100, res.Clear.Points)
	assert.Equal(t, res.Clear, s.LastClear())
	assert.Equal(t, 138, s.Score().Score)
	assert.Equal(t, 1, s.Score().Lines)

	f := s.Field()
	assert.Equal(t, 2, f.FilledCount())
	assert.True(t, f.Cell(19, 8).IsBlock())
	assert.True(t, f.Cell(19, 9).IsBlock())
}

// tSlot places a T in state 0 at anchor (18,3) and fills the given corners of
// its 3×3 box (rows 16-18, columns 3-5).
func tSlot(t *testing.T, corners ...Point) *Session {
	t.Helper()
	s := newStartedSession(t, DefaultOptions())
	for _, p := range corners {
		s.field.SetCell(p.Row, p.Col, BlockCell(KindJ))
	}
	s.current = ActivePiece{Kind: KindT, State: 0, Row: 18, Col: 3}
	f := s.Field()
	require.True(t, s.current.Fits(&f))
	return s
}

func TestFullTSpinLatchedAndScored(t *testing.T) {
	s := tSlot(t, Point{16, 5}, Point{18, 5}, Point{18, 3})

	require.True(t, s.OnRotate(true))
	assert.Equal(t, 1, s.Current().State)
	assert.Equal(t, SpinFull, s.LatchedSpin())
	assert.False(t, s.WallKickLatched())

	res := s.OnGravityTick()
	require.True(t, res.Locked)
	assert.True(t, res.Clear.Scored)
	assert.Equal(t, TagFullTSpin, res.Clear.Tag)
	assert.Equal(t, 400, res.Clear.Points)
	assert.Equal(t, 400, s.Score().Score)
	assert.Equal(t, SpinNone, s.LatchedSpin(), "latch consumed")
}

func TestMiniTSpinWithoutLinesScoresNothing(t *testing.T) {
	s := tSlot(t, Point{16, 3}, Point{18, 3}, Point{18, 5})

	require.True(t, s.OnRotate(true))
	assert.Equal(t, SpinMini, s.LatchedSpin())

	res := s.OnGravityTick()
	require.True(t, res.Locked)
	assert.False(t, res.Clear.Scored)
	assert.Zero(t, s.Score().Score)
}

func TestLatchedSpinSurvivesShift(t *testing.T) {
	s := tSlot(t, Point{16, 5}, Point{18, 5}, Point{18, 3})
	require.True(t, s.OnRotate(true))
	s.current.Row -= 3
	require.True(t, s.OnShift(Left))
	assert.Equal(t, SpinFull, s.LatchedSpin())
}

func TestWallKickLatch(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	s.current = ActivePiece{Kind: KindI, State: 1, Row: 10, Col: -2}

	require.True(t, s.OnRotate(true))
	assert.True(t, s.WallKickLatched())
	assert.Equal(t, SpinNone, s.LatchedSpin(), "only T pieces classify")

	s.OnHardDrop()
	s.OnGravityTick()
	assert.False(t, s.WallKickLatched())
}

func TestTopOutOnLockAboveField(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	for r := 1; r < Rows; r++ {
		s.field.SetCell(r, 4, BlockCell(KindI))
		s.field.SetCell(r, 5, BlockCell(KindI))
	}
	withCurrent(s, KindO, 0)

	res := s.OnGravityTick()
	assert.True(t, res.Locked)
	assert.True(t, res.GameOver)
	assert.Equal(t, StateGameOver, s.State())

	assert.False(t, s.OnShift(Left))
	assert.Equal(t, TickResult{}, s.OnGravityTick())
}

func TestBlockOutAtSpawn(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	fillRow(&s.field, 0)
	s.next = Draw{Kind: KindO}

	s.spawnNext()
	assert.Equal(t, StateGameOver, s.State())
}

func TestPauseResume(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	before := s.Snapshot()

	require.True(t, s.Pause())
	assert.Equal(t, StatePaused, s.State())
	assert.False(t, s.Pause())
	assert.False(t, s.OnShift(Left))
	assert.False(t, s.OnRotate(false))
	assert.Equal(t, TickResult{}, s.OnGravityTick())

	require.True(t, s.Resume())
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, before, s.Snapshot())
}

func TestSoftDropStopWhilePaused(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	require.True(t, s.OnSoftDropStart())
	s.Pause()
	assert.True(t, s.OnSoftDropStop())
	assert.False(t, s.SoftDropping())
}

func TestRestartClearsGame(t *testing.T) {
	s := newStartedSession(t, DefaultOptions())
	withCurrent(s, KindO, 0)
	s.OnHardDrop()
	s.OnGravityTick()
	require.NotZero(t, s.Score().Score)

	s.Start()
	f := s.Field()
	assert.Zero(t, f.FilledCount())
	assert.Zero(t, s.Score().Score)
	assert.Zero(t, s.PiecesPlaced())
	assert.Equal(t, StateRunning, s.State())
}

func playRandom(s *Session, seed int64, pieces int) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < 100*pieces && s.State() == StateRunning && s.PiecesPlaced() < pieces; i++ {
		switch rng.Intn(8) {
		case 0:
			s.OnShift(Left)
		case 1:
			s.OnShift(Right)
		case 2:
			s.OnRotate(true)
		case 3:
			s.OnRotate(false)
		case 4:
			s.OnHardDrop()
		}
		s.OnGravityTick()
	}
}

func TestDeterminism(t *testing.T) {
	for _, policy := range []Policy{PolicyUniform, PolicyBag} {
		opts := DefaultOptions()
		opts.Seed = 12345
		opts.Randomizer = policy

		s1 := newStartedSession(t, opts)
		s2 := newStartedSession(t, opts)
		playRandom(s1, 99, 60)
		playRandom(s2, 99, 60)

		snap1, snap2 := s1.Snapshot(), s2.Snapshot()
		assert.Equal(t, snap1, snap2, "policy %s", policy)
		assert.Equal(t, snap1.Hash(), snap2.Hash())
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 2024
	s := newStartedSession(t, opts)

	rng := rand.New(rand.NewSource(5))
	prevScore, prevLevel := 0, 0
	for i := 0; i < 5000 && s.State() == StateRunning; i++ {
		switch rng.Intn(6) {
		case 0:
			s.OnShift(Left)
		case 1:
			s.OnShift(Right)
		case 2:
			s.OnRotate(rng.Intn(2) == 0)
		case 3:
			s.OnHardDrop()
		}
		s.OnGravityTick()

		f := s.Field()
		if s.State() == StateRunning {
			cur := s.Current()
			require.True(t, cur.Fits(&f), "active piece overlaps the stack")
		}
		for c := 0; c < Cols; c++ {
			require.True(t, f.Cell(Rows, c).IsWall())
		}
		sc := s.Score()
		require.GreaterOrEqual(t, sc.Score, prevScore)
		require.GreaterOrEqual(t, sc.Level, prevLevel)
		prevScore, prevLevel = sc.Score, sc.Level
	}
}
