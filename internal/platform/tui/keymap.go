package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-grove/internal/core"
)

// Terminal auto-repeat typically fires every 30-50ms after a longer initial
// delay. Movement keys bridge that delay; tapped keys only bridge the repeat
// interval so two quick presses read as two edges.
const (
	holdTicks = 32
	tapTicks  = 6
)

// isTap reports whether an action is consumed on its press edge.
func isTap(a core.Action) bool {
	switch a {
	case core.ActionJump, core.ActionPause, core.ActionRestart, core.ActionConfirm, core.ActionBack:
		return true
	}
	return false
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game actions. Shifted movement keys
// also run. Returns whether the key is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	if key == "ctrl+c" {
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "w", "up":
		return []core.Action{core.ActionForward}, false
	case "s", "down":
		return []core.Action{core.ActionBackward}, false
	case "a":
		return []core.Action{core.ActionStrafeLeft}, false
	case "d":
		return []core.Action{core.ActionStrafeRight}, false
	case "W", "shift+up":
		return []core.Action{core.ActionForward, core.ActionRun}, false
	case "S", "shift+down":
		return []core.Action{core.ActionBackward, core.ActionRun}, false
	case "A":
		return []core.Action{core.ActionStrafeLeft, core.ActionRun}, false
	case "D":
		return []core.Action{core.ActionStrafeRight, core.ActionRun}, false
	case "q", "Q", "left":
		return []core.Action{core.ActionTurnLeft}, false
	case "e", "E", "right":
		return []core.Action{core.ActionTurnRight}, false
	case " ":
		return []core.Action{core.ActionJump}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// MapKeyToLatches presses the mapped actions, tapped actions on taps and
// everything else on held. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToLatches(msg tea.KeyMsg, held, taps *core.InputLatch) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		if isTap(a) {
			taps.Press(a)
		} else {
			held.Press(a)
		}
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionPrev
	MenuActionNext
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionPrev
	case "d", "right", "l":
		return MenuActionNext
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
