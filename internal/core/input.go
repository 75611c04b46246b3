package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionForward            // W, Up arrow - walk toward the camera heading
	ActionBackward           // S, Down arrow - walk away from the camera heading
	ActionStrafeLeft         // A
	ActionStrafeRight        // D
	ActionTurnLeft           // Left arrow, Q
	ActionTurnRight          // Right arrow, E
	ActionJump               // Space - edge-triggered in the integrator
	ActionRun                // Shift+movement key, or the run toggle
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart after winning
	ActionQuit               // Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionForward:     "Forward",
	ActionBackward:    "Backward",
	ActionStrafeLeft:  "StrafeLeft",
	ActionStrafeRight: "StrafeRight",
	ActionTurnLeft:    "TurnLeft",
	ActionTurnRight:   "TurnRight",
	ActionJump:        "Jump",
	ActionRun:         "Run",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// InputLatch turns discrete key presses into held actions.
//
// Terminals report key presses and auto-repeats but never releases, so a
// movement key counts as held until no repeat has arrived for holdTicks ticks.
// The hold window must be longer than the terminal repeat interval, otherwise
// a held jump key would read as a series of separate presses.
type InputLatch struct {
	holdTicks int
	remaining map[Action]int
}

// NewInputLatch creates a latch that keeps actions alive for holdTicks ticks.
func NewInputLatch(holdTicks int) *InputLatch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &InputLatch{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press records a key press (or auto-repeat) for an action.
func (l *InputLatch) Press(a Action) {
	l.remaining[a] = l.holdTicks
}

// Frame returns the actions held this tick and ages every hold by one tick.
func (l *InputLatch) Frame() InputFrame {
	frame := NewInputFrame()
	for a, n := range l.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
	return frame
}

// Reset forgets every held action.
func (l *InputLatch) Reset() {
	for a := range l.remaining {
		delete(l.remaining, a)
	}
}
