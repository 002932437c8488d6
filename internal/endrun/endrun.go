// Package endrun ends the run on the first contact between the player and an obstacle.
package endrun

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// ContactKind distinguishes solid collisions from trigger overlaps.
type ContactKind int

const (
	KindCollision ContactKind = iota
	KindTrigger
)

// String returns a human-readable name for the contact kind.
func (k ContactKind) String() string {
	if k == KindTrigger {
		return "trigger"
	}
	return "collision"
}

// Contact is a collision or trigger event reported by the host.
type Contact struct {
	OtherTag     string
	ObstacleName string
	Kind         ContactKind
}

// Panel is the game-over UI element.
type Panel interface {
	SetActive(active bool)
}

// Readout is the distance label moved under the game-over panel.
type Readout interface {
	SetLocalPosition(p mgl64.Vec2)
}

// Handler owns the run state of one level.
type Handler struct {
	cfg     config.EndRunConfig
	panel   Panel
	readout Readout
	logger  *log.Logger

	state    core.RunState
	events   int
	cause    Contact
	endCount int
}

// New creates a handler with the run active. Nil UI elements are skipped.
func New(cfg config.EndRunConfig, panel Panel, readout Readout, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{
		cfg:     cfg,
		panel:   panel,
		readout: readout,
		logger:  logger,
	}
}

// HandleContact ends the run if the contact involves the player.
// Only the first qualifying contact has any effect.
func (h *Handler) HandleContact(c Contact) {
	if c.OtherTag != h.cfg.PlayerTag {
		return
	}
	h.events++
	if h.state.Ended() {
		return
	}

	h.state = core.RunEnded
	h.cause = c
	h.endCount++

	if h.panel != nil {
		h.panel.SetActive(true)
	}
	if h.readout != nil {
		h.readout.SetLocalPosition(mgl64.Vec2{h.cfg.ReadoutOffsetX, h.cfg.ReadoutOffsetY})
	}
	h.logger.Info("game over", "obstacle", c.ObstacleName, "kind", c.Kind)
}

// State returns the current run state.
func (h *Handler) State() core.RunState {
	return h.state
}

// Cause returns the contact that ended the run.
func (h *Handler) Cause() (Contact, bool) {
	return h.cause, h.state.Ended()
}

// Events returns how many player contacts were reported, including ignored ones.
func (h *Handler) Events() int {
	return h.events
}

// Ends returns how many times the end-of-run reaction ran. It is at most 1.
func (h *Handler) Ends() int {
	return h.endCount
}
