package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone          Action = iota
	ActionShiftLeft            // Left, H - move piece one column left
	ActionShiftRight           // Right, L - move piece one column right
	ActionRotateCW             // Up, X - rotate clockwise
	ActionRotateCCW            // Z - rotate counter-clockwise
	ActionSoftDrop             // Down, J - begin soft drop (held)
	ActionSoftDropStop         // emitted by the platform when the hold expires
	ActionHardDrop             // Space - drop to the floor
	ActionRestart              // R key - restart game after game over
	ActionQuit                 // Q, Ctrl+C - exit game
	ActionPause                // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionShiftLeft:    "ShiftLeft",
	ActionShiftRight:   "ShiftRight",
	ActionRotateCW:     "RotateCW",
	ActionRotateCCW:    "RotateCCW",
	ActionSoftDrop:     "SoftDrop",
	ActionSoftDropStop: "SoftDropStop",
	ActionHardDrop:     "HardDrop",
	ActionRestart:      "Restart",
	ActionQuit:         "Quit",
	ActionPause:        "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}
