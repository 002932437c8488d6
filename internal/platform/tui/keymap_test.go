package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"space", runeKey(' '), core.ActionJump, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSlide, false},
		{"s", runeKey('s'), core.ActionSlide, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('a'), &frame) {
		t.Error("a should not quit")
	}
	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame) {
		t.Error("down should not quit")
	}
	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionSlide) {
		t.Errorf("frame = %v, expected Left and Slide", frame.Actions)
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is handled by the platform, not put in the frame")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	at := time.Unix(100, 0)

	tests := []struct {
		name  string
		msg   tea.MouseMsg
		ok    bool
		phase core.PointerPhase
		x, y  float64
	}{
		{
			name:  "left press at top row",
			msg:   tea.MouseMsg{X: 10, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
			ok:    true,
			phase: core.PointerPress,
			x:     80,
			y:     23 * 16,
		},
		{
			name:  "release at bottom row",
			msg:   tea.MouseMsg{X: 2, Y: 23, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease},
			ok:    true,
			phase: core.PointerRelease,
			x:     16,
			y:     0,
		},
		{
			name: "motion is ignored",
			msg:  tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion},
		},
		{
			name: "right button is ignored",
			msg:  tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonRight, Action: tea.MouseActionPress},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tc.msg, 24, at)
			if ok != tc.ok {
				t.Fatalf("MapMouse() ok = %v, expected %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if ev.Phase != tc.phase || ev.X != tc.x || ev.Y != tc.y {
				t.Errorf("event = %+v, expected phase %v at (%v, %v)", ev, tc.phase, tc.x, tc.y)
			}
			if ev.Source != core.PointerMouse || !ev.At.Equal(at) {
				t.Errorf("event source/time = %v/%v", ev.Source, ev.At)
			}
		})
	}
}

func TestMouseSwipeUpHasPositiveDY(t *testing.T) {
	km := NewKeyMapper()
	now := time.Now()

	press, _ := km.MapMouse(tea.MouseMsg{X: 5, Y: 20, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, 24, now)
	release, _ := km.MapMouse(tea.MouseMsg{X: 5, Y: 10, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, 24, now)

	if dy := release.Y - press.Y; dy != 160 {
		t.Errorf("dy = %v, expected 160", dy)
	}
}
