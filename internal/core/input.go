package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - change lane left
	ActionRight          // D, Right arrow - change lane right
	ActionJump           // Space, W, Up
	ActionSlide          // S, Down, Ctrl
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionSlide:
		return "Slide"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerSource identifies the device that produced a pointer event.
// Each source tracks its own press/release pair.
type PointerSource int

const (
	PointerMouse PointerSource = iota
	PointerTouch
)

// PointerPhase is the edge reported by a pointer event.
type PointerPhase int

const (
	PointerPress PointerPhase = iota
	PointerRelease
)

// PointerEvent is a press or release edge in screen space.
// Y grows upward, so a swipe towards the top of the screen has positive dy.
type PointerEvent struct {
	Source PointerSource
	Phase  PointerPhase
	X, Y   float64 // Screen position in pixels
	At     time.Time
}

// InputFrame represents the input state for a single simulation tick.
// It contains all key-down edges and pointer edges seen since the last tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer holds press/release edges in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// AddPointer appends a pointer edge to this frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointer) > 0 {
		clone.Pointer = append([]PointerEvent(nil), f.Pointer...)
	}
	return clone
}
