package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionUndo
	ActionReset
	ActionConfirm // Enter - next level, menu selection
	ActionBack    // Escape - back to menu
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionUndo:    "undo",
	ActionReset:   "reset",
	ActionConfirm: "confirm",
	ActionBack:    "back",
	ActionQuit:    "quit",
}

// String returns the config name of the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction returns the action with the given config name.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name && Action(i) != ActionNone {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// InputFrame holds the actions triggered during one tick, in the order they
// arrived. Games must consume them in that order.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Add appends an action. ActionNone is ignored.
func (f *InputFrame) Add(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, x := range f.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if len(f.Actions) == 0 {
		return InputFrame{}
	}
	return InputFrame{Actions: append([]Action(nil), f.Actions...)}
}
