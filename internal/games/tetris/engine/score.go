package engine

import "fmt"

// Default timing in milliseconds.
const (
	DefaultDropInterval    = 790
	DefaultMinDropInterval = 50
)

// ClearTag classifies a scoring clear for back-to-back tracking.
type ClearTag uint8

const (
	TagRegular ClearTag = iota
	TagMiniTSpin
	TagTetris
	TagFullTSpin
)

func (t ClearTag) String() string {
	switch t {
	case TagMiniTSpin:
		return "mini t-spin"
	case TagTetris:
		return "tetris"
	case TagFullTSpin:
		return "t-spin"
	default:
		return "regular"
	}
}

// BackToBack is the tag and line count of the most recent scoring clear.
type BackToBack struct {
	Tag   ClearTag
	Lines int
}

// ScoreState is the observable output of the score engine.
type ScoreState struct {
	Score        int
	Lines        int
	Level        int
	DropInterval int
	BackToBack   BackToBack
}

// ClearEvent describes the placement of one piece.
type ClearEvent struct {
	Lines     int
	MiniTSpin bool
	FullTSpin bool
	WallKick  bool
}

// ClearResult reports what RecordClear did with an event.
type ClearResult struct {
	// Scored is false when the event was ignored.
	Scored     bool
	Lines      int
	Tag        ClearTag
	Points     int
	BackToBack bool
	LevelUp    bool
}

var regularPoints = [...]int{0, 100, 300, 500, 800}

// ScoreEngine turns clear events into score, level and gravity changes.
type ScoreEngine struct {
	state           ScoreState
	initialInterval int
	minInterval     int
}

// NewScoreEngine returns an engine at level 0. Non-positive arguments fall
// back to the defaults.
func NewScoreEngine(initialInterval, minInterval int) *ScoreEngine {
	if initialInterval <= 0 {
		initialInterval = DefaultDropInterval
	}
	if minInterval <= 0 {
		minInterval = DefaultMinDropInterval
	}
	if minInterval > initialInterval {
		minInterval = initialInterval
	}
	e := &ScoreEngine{initialInterval: initialInterval, minInterval: minInterval}
	e.state.DropInterval = initialInterval
	return e
}

// State returns a copy of the current score state.
func (e *ScoreEngine) State() ScoreState {
	return e.state
}

// Reset zeroes score, lines and level and restores the initial interval.
// The back-to-back record survives a reset.
func (e *ScoreEngine) Reset() {
	b2b := e.state.BackToBack
	e.state = ScoreState{DropInterval: e.initialInterval, BackToBack: b2b}
}

// AddSoftDropPoint awards the point for one soft-dropped row.
func (e *ScoreEngine) AddSoftDropPoint() {
	e.state.Score++
}

// AddHardDropPoints awards two points per hard-dropped row.
func (e *ScoreEngine) AddHardDropPoints(rows int) {
	if rows > 0 {
		e.state.Score += 2 * rows
	}
}

func classify(ev ClearEvent) ClearTag {
	switch {
	case ev.MiniTSpin:
		return TagMiniTSpin
	case ev.Lines == 4:
		return TagTetris
	case ev.FullTSpin:
		return TagFullTSpin
	default:
		return TagRegular
	}
}

// basePoints is the award for a clear outside a back-to-back chain.
func basePoints(tag ClearTag, ev ClearEvent, level int) int {
	mult := level + 1
	switch tag {
	case TagMiniTSpin:
		if ev.Lines == 2 {
			return 400 * mult
		}
		return 0
	case TagTetris:
		return 800 * mult
	case TagFullTSpin:
		switch ev.Lines {
		case 0:
			if ev.WallKick {
				return 100 * mult
			}
			return 400 * mult
		case 1:
			if ev.WallKick {
				return 200 * mult
			}
			return 800 * mult
		case 2:
			return 1200 * mult
		default:
			return 1600 * mult
		}
	default:
		return regularPoints[ev.Lines] * mult
	}
}

// comboPoints is the fixed award for repeating the previous clear exactly.
func comboPoints(tag ClearTag, lines int) int {
	switch tag {
	case TagMiniTSpin:
		return 300 * lines
	case TagTetris:
		return 1200
	default:
		return 1200 + 600*(lines-1)
	}
}

// intervalStep is the drop interval reduction applied on reaching level.
func intervalStep(level int) int {
	switch level {
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return 80
	case 9:
		return 30
	case 10, 13, 16, 19, 29:
		return 20
	default:
		return 0
	}
}

// RecordClear scores the placement of one piece. Placements with no lines
// and no full T-spin are ignored and leave the back-to-back record alone.
func (e *ScoreEngine) RecordClear(ev ClearEvent) ClearResult {
	if ev.Lines < 0 || ev.Lines > 4 {
		panic(fmt.Sprintf("engine: line count %d out of range", ev.Lines))
	}
	if ev.Lines == 0 && !ev.FullTSpin {
		return ClearResult{}
	}

	tag := classify(ev)
	res := ClearResult{Scored: true, Lines: ev.Lines, Tag: tag}

	prev := e.state.BackToBack
	points := basePoints(tag, ev, e.state.Level)
	if prev.Tag != TagRegular && tag != TagRegular {
		res.BackToBack = true
		if prev.Tag == tag && prev.Lines == ev.Lines {
			points = comboPoints(tag, ev.Lines)
		} else {
			points = points * 3 / 2
		}
	}
	res.Points = points
	e.state.Score += points

	before := e.state.Lines
	e.state.Lines += ev.Lines
	if before/10 < e.state.Lines/10 {
		e.state.Level++
		e.state.DropInterval -= intervalStep(e.state.Level)
		if e.state.DropInterval < e.minInterval {
			e.state.DropInterval = e.minInterval
		}
		res.LevelUp = true
	}

	e.state.BackToBack = BackToBack{Tag: tag, Lines: ev.Lines}
	return res
}
