// Package tui drives registered levels in a terminal with Bubble Tea.
// It maps keys and mouse edges to input frames, ticks the simulation at a
// fixed rate, records finished runs and serves the same session over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that delivers one TickMsg after a fixed-rate interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
