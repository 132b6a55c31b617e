// Package tetris adapts the falling-block engine to the terminal platform.
// It owns the clock the engine lacks: simulation ticks are counted against
// the session's drop interval to issue gravity, and a held soft-drop key is
// emulated with a short hold window because terminals report no key release.
package tetris

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode IDs registered with the platform.
const (
	ModeClassic = "tetris"
	ModeBag     = "tetris_bag"
)

// SoftDropHoldMS is how long one soft-drop key press keeps soft drop held.
// It spans a usual key auto-repeat delay, and each repeat refreshes it, so
// holding the key keeps dropping. The hold never ends before the next
// accelerated gravity step.
const SoftDropHoldMS = 300

var (
	cfgMu     sync.RWMutex
	activeCfg = config.DefaultTetrisConfig()
)

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.TetrisConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	activeCfg = cfg
}

// CurrentConfig returns the configuration new games will use.
func CurrentConfig() config.TetrisConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return activeCfg
}

// Game implements registry.Game around an engine.Session.
type Game struct {
	mode    string
	policy  engine.Policy
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	session *engine.Session

	tick        uint64
	gravityTick int // ticks since the last gravity step
	softHold    int // ticks left before soft drop releases itself

	screenW  int
	screenH  int
	tooSmall bool

	flash      string // last notable clear, shown under the HUD
	flashTicks int
}

// New creates a classic game: any piece in any initial rotation.
func New() *Game {
	return &Game{mode: ModeClassic, policy: engine.PolicyUniform}
}

// NewBag creates a game dealing pieces from shuffled bags of seven.
func NewBag() *Game {
	return &Game{mode: ModeBag, policy: engine.PolicyBag}
}

func init() {
	registry.Register(ModeClassic, func() registry.Game { return New() })
	registry.Register(ModeBag, func() registry.Game { return NewBag() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.mode }

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBag {
		return "Tetris (7-bag)"
	}
	return "Tetris"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.mode == ModeBag {
		return "every piece once per bag of seven, flat spawn"
	}
	return "uniform random pieces with random spawn rotation"
}

// Reset starts a new game with the current configuration.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = CurrentConfig()
	g.runtime = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.gravityTick = 0
	g.softHold = 0
	g.flash = ""
	g.flashTicks = 0

	opts := g.cfg.ToOptions(cfg.Seed)
	opts.Randomizer = g.policy
	s, err := engine.NewSession(opts)
	if err != nil {
		// policy is fixed per mode and always known
		panic(fmt.Sprintf("tetris: %v", err))
	}
	s.Start()
	g.session = s
	g.checkScreenSize()
}

// Step advances the game by one simulation tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []string
	g.tick++

	if in.Has(core.ActionPause) {
		g.togglePause()
	}

	if g.session.State() == engine.StateRunning && !g.tooSmall {
		if !in.Empty() {
			events = g.applyInput(in, events)
		}
		events = g.advanceGravity(events)
	}
	if in.Has(core.ActionSoftDropStop) {
		g.releaseSoftDrop()
	}

	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = ""
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) togglePause() {
	switch g.session.State() {
	case engine.StateRunning:
		g.session.Pause()
		g.releaseSoftDrop()
	case engine.StatePaused:
		g.session.Resume()
	}
}

func (g *Game) applyInput(in core.InputFrame, events []string) []string {
	if in.Has(core.ActionShiftLeft) {
		g.session.OnShift(engine.Left)
	}
	if in.Has(core.ActionShiftRight) {
		g.session.OnShift(engine.Right)
	}
	if in.Has(core.ActionRotateCW) {
		g.session.OnRotate(true)
	}
	if in.Has(core.ActionRotateCCW) {
		g.session.OnRotate(false)
	}
	if in.Has(core.ActionSoftDrop) {
		fresh := !g.session.SoftDropping()
		g.session.OnSoftDropStart()
		g.softHold = g.softDropHoldTicks()
		if fresh {
			// A press moves the piece at once; holding then follows the
			// accelerated gravity.
			g.gravityTick = 0
			events = g.fall(events)
		}
	}
	if in.Has(core.ActionHardDrop) {
		before := g.session.PiecesPlaced()
		g.session.OnHardDrop()
		if g.session.PiecesPlaced() != before {
			// Locked immediately: the next piece gets a full interval.
			g.gravityTick = 0
			events = g.noteClear(g.session.LastClear(), events)
			if g.session.State() == engine.StateGameOver {
				events = append(events, "game over")
			}
		}
	}
	return events
}

func (g *Game) advanceGravity(events []string) []string {
	if g.session.State() != engine.StateRunning {
		return events
	}
	if g.softHold > 0 {
		g.softHold--
		if g.softHold == 0 {
			g.session.OnSoftDropStop()
		}
	}

	g.gravityTick++
	if g.gravityTick < g.gravityThreshold() {
		return events
	}
	g.gravityTick = 0
	return g.fall(events)
}

// fall issues one gravity step and reports what it caused.
func (g *Game) fall(events []string) []string {
	res := g.session.OnGravityTick()
	if res.Locked {
		events = g.noteClear(res.Clear, events)
	}
	if res.GameOver {
		g.releaseSoftDrop()
		events = append(events, "game over")
	}
	return events
}

// gravityThreshold is the current drop interval in ticks.
func (g *Game) gravityThreshold() int {
	return g.runtime.TickMillis(g.session.EffectiveInterval())
}

// softDropHoldTicks is the hold window of one soft-drop press: at least
// SoftDropHoldMS and always past the next accelerated gravity step.
func (g *Game) softDropHoldTicks() int {
	return max(g.runtime.TickMillis(SoftDropHoldMS), g.gravityThreshold()+1)
}

func (g *Game) releaseSoftDrop() {
	g.softHold = 0
	g.session.OnSoftDropStop()
}

func (g *Game) noteClear(c engine.ClearResult, events []string) []string {
	if !c.Scored {
		return events
	}
	text := clearLabel(c)
	events = append(events, text)
	if c.LevelUp {
		events = append(events, fmt.Sprintf("level %d", g.session.Score().Level))
	}
	g.flash = text
	g.flashTicks = g.runtime.TickMillis(1500)
	return events
}

var lineWords = [...]string{"", "single", "double", "triple", "tetris"}

// clearLabel names a scoring clear the way players call it.
func clearLabel(c engine.ClearResult) string {
	var label string
	switch c.Tag {
	case engine.TagTetris:
		label = "tetris"
	case engine.TagFullTSpin, engine.TagMiniTSpin:
		label = c.Tag.String()
		if c.Lines > 0 {
			label += " " + lineWords[c.Lines]
		}
	default:
		label = lineWords[c.Lines]
	}
	if c.BackToBack {
		label = "back-to-back " + label
	}
	return fmt.Sprintf("%s +%d", label, c.Points)
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	sc := g.session.Score()
	return core.GameState{
		Score:    sc.Score,
		Lines:    sc.Lines,
		Level:    sc.Level,
		GameOver: g.session.State() == engine.StateGameOver,
		Paused:   g.session.State() == engine.StatePaused,
	}
}

// Session exposes the underlying engine session for headless drivers.
func (g *Game) Session() *engine.Session { return g.session }

// Snapshot returns the engine snapshot plus the adapter tick counter.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{Tick: g.tick, Mode: g.mode, Engine: g.session.Snapshot()}
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Engine engine.Snapshot
}

// Hash folds the snapshot into a single value.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	for i := 0; i < len(s.Mode); i++ {
		h = h*31 + uint64(s.Mode[i])
	}
	return h*31 + s.Engine.Hash()
}
