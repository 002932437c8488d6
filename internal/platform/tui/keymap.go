package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// GameKeyMap binds physical keys to runner actions.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Slide   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Slide, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Slide},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultGameKeyMap returns the default runner bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "lane left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "lane right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Slide: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "slide"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea input messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump, false
	case key.Matches(msg, km.keys.Slide):
		return core.ActionSlide, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse converts a left-button press or release into a pointer edge.
// Cells are scaled to reference pixels and Y is flipped so it grows upward.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, screenH int, at time.Time) (core.PointerEvent, bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.PointerEvent{}, false
	}

	var phase core.PointerPhase
	switch msg.Action {
	case tea.MouseActionPress:
		phase = core.PointerPress
	case tea.MouseActionRelease:
		phase = core.PointerRelease
	default:
		return core.PointerEvent{}, false
	}

	return core.PointerEvent{
		Source: core.PointerMouse,
		Phase:  phase,
		X:      float64(msg.X * core.CellWidthPx),
		Y:      float64((screenH - 1 - msg.Y) * core.CellHeightPx),
		At:     at,
	}, true
}
