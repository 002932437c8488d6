// Package player implements the runner's movement and lane state machine.
//
// The player runs forward at a constant speed, seeks the center of its current
// lane, jumps under constant gravity and slides with a shrunken capsule. The
// package owns no physics: it drives a Controller and reports animation
// signals to an Animator, both supplied by the host.
package player

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/lane"
)

// State is a snapshot of the player for observers and tests.
type State struct {
	Position         mgl64.Vec3
	VerticalVelocity float64
	Lane             int
	MinLane, MaxLane int
	Grounded         bool
	Sliding          bool
	SlideTimer       float64
	CooldownTimer    float64
	Capsule          Capsule
}

// Movement owns the player's lane, vertical velocity and slide timers.
type Movement struct {
	cfg    config.PlayerConfig
	ctrl   Controller
	anim   Animator
	logger *log.Logger
	swipe  *SwipeDetector

	geometry lane.Geometry
	lane     int // 0 = center; negatives left, positives right
	minLane  int
	maxLane  int

	verticalVelocity float64
	startZ           float64

	sliding            bool
	slideTimer         float64
	slideCooldownTimer float64
	originalCapsule    Capsule
	slideCapsule       Capsule
}

// New creates the movement component for a freshly spawned player.
// The controller's capsule is normalized so its bottom rests on the
// controller position; that shape is restored after every slide.
func New(cfg config.PlayerConfig, ctrl Controller, anim Animator, logger *log.Logger) *Movement {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Movement{
		cfg:      cfg,
		ctrl:     ctrl,
		anim:     anim,
		logger:   logger,
		swipe:    NewSwipeDetector(cfg.Swipe.Threshold, cfg.Swipe.MaxTime),
		geometry: lane.New(cfg.Lanes.Count, cfg.Lanes.Width),
	}
	m.minLane, m.maxLane = m.geometry.Bounds()
	m.lane = m.geometry.Clamp(0)

	if ctrl != nil {
		c := ctrl.Capsule()
		c.Center = mgl64.Vec3{c.Center.X(), c.Height * 0.5, c.Center.Z()}
		ctrl.SetCapsule(c)
		m.originalCapsule = c
		m.startZ = ctrl.Position().Z()
	}
	m.slideCapsule = Capsule{
		Height: cfg.Slide.Height,
		Radius: cfg.Slide.Radius,
		Center: mgl64.Vec3{m.originalCapsule.Center.X(), cfg.Slide.Height, m.originalCapsule.Center.Z()},
	}

	return m
}

// Geometry returns the lane layout the player moves on.
func (m *Movement) Geometry() lane.Geometry {
	return m.geometry
}

// Lane returns the current signed lane index.
func (m *Movement) Lane() int {
	return m.lane
}

// LaneBounds returns the valid signed lane index range.
func (m *Movement) LaneBounds() (int, int) {
	return m.minLane, m.maxLane
}

// Sliding reports whether a slide is active.
func (m *Movement) Sliding() bool {
	return m.sliding
}

// SlideTimer returns the seconds left in the current slide.
func (m *Movement) SlideTimer() float64 {
	return math.Max(0, m.slideTimer)
}

// CooldownTimer returns the seconds left before another slide may start.
func (m *Movement) CooldownTimer() float64 {
	return math.Max(0, m.slideCooldownTimer)
}

// VerticalVelocity returns the current vertical velocity.
func (m *Movement) VerticalVelocity() float64 {
	return m.verticalVelocity
}

// Position returns the controller position, or the zero vector without one.
func (m *Movement) Position() mgl64.Vec3 {
	if m.ctrl == nil {
		return mgl64.Vec3{}
	}
	return m.ctrl.Position()
}

// DistanceRun returns the distance traveled along +Z since construction.
func (m *Movement) DistanceRun() float64 {
	return m.Position().Z() - m.startZ
}

// State returns a snapshot of the player.
func (m *Movement) State() State {
	s := State{
		Position:         m.Position(),
		VerticalVelocity: m.verticalVelocity,
		Lane:             m.lane,
		MinLane:          m.minLane,
		MaxLane:          m.maxLane,
		Sliding:          m.sliding,
		SlideTimer:       m.SlideTimer(),
		CooldownTimer:    m.CooldownTimer(),
	}
	if m.ctrl != nil {
		s.Grounded = m.ctrl.IsGrounded()
		s.Capsule = m.ctrl.Capsule()
	}
	return s
}

// Tick advances the player by dt seconds.
func (m *Movement) Tick(dt float64, in core.InputFrame, run core.RunState) {
	if run.Ended() || m.ctrl == nil {
		return
	}

	m.handleSwipeInput(in)
	m.handleKeyboardFallbacks(in)
	m.handleMovement(dt)
}

func (m *Movement) handleSwipeInput(in core.InputFrame) {
	for _, ev := range in.Pointer {
		switch m.swipe.Feed(ev) {
		case GestureLeft:
			m.ChangeLane(-1)
		case GestureRight:
			m.ChangeLane(+1)
		case GestureJump:
			m.TryJump()
		case GestureSlide:
			m.TrySlide()
		}
	}
}

func (m *Movement) handleKeyboardFallbacks(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		m.ChangeLane(-1)
	}
	if in.Has(core.ActionRight) {
		m.ChangeLane(+1)
	}
	if in.Has(core.ActionJump) {
		m.TryJump()
	}
	if in.Has(core.ActionSlide) {
		m.TrySlide()
	}
}

// ChangeLane moves the target lane by dir, clamped to the lane bounds.
// It reports whether the lane actually changed.
func (m *Movement) ChangeLane(dir int) bool {
	target := core.Clamp(m.lane+dir, m.minLane, m.maxLane)
	if target == m.lane {
		return false
	}
	m.lane = target
	m.trigger(m.cfg.Animation.LaneTrigger)
	return true
}

// TryJump starts a jump when grounded and not sliding.
func (m *Movement) TryJump() bool {
	if m.ctrl == nil || !m.ctrl.IsGrounded() || m.sliding {
		return false
	}

	m.verticalVelocity = JumpVelocity(m.cfg.JumpHeight, m.cfg.Gravity)
	if m.cfg.DebugLogs {
		m.logger.Debug("jump", "v0", m.verticalVelocity, "grounded", m.ctrl.IsGrounded())
	}
	m.trigger(m.cfg.Animation.JumpTrigger)
	return true
}

// TrySlide starts a slide unless one is active or cooling down.
func (m *Movement) TrySlide() bool {
	if m.sliding || m.slideCooldownTimer > 0 {
		return false
	}
	m.startSlide()
	return true
}

func (m *Movement) startSlide() {
	m.sliding = true
	m.slideTimer = m.cfg.Slide.Duration
	m.slideCooldownTimer = m.cfg.Slide.Duration + m.cfg.Slide.Cooldown
	if m.ctrl != nil {
		m.ctrl.SetCapsule(m.slideCapsule)
	}

	if m.cfg.DebugLogs {
		m.logger.Debug("slide start", "duration", m.cfg.Slide.Duration, "height", m.cfg.Slide.Height)
	}
	m.trigger(m.cfg.Animation.SlideTrigger)
	m.setBool(m.cfg.Animation.SlidingBool, true)
}

func (m *Movement) endSlide() {
	m.sliding = false
	if m.ctrl != nil {
		m.ctrl.SetCapsule(m.originalCapsule)
	}

	if m.cfg.DebugLogs {
		m.logger.Debug("slide end")
	}
	m.setBool(m.cfg.Animation.SlidingBool, false)
}

func (m *Movement) handleMovement(dt float64) {
	pos := m.ctrl.Position()
	targetX := m.geometry.Offset(m.lane)
	newX := core.MoveTowards(pos.X(), targetX, m.cfg.Lanes.ChangeSpeed*dt)

	if m.ctrl.IsGrounded() && m.verticalVelocity < 0 {
		m.verticalVelocity = m.cfg.StickToGroundForce
	}
	m.verticalVelocity += m.cfg.Gravity * dt

	if m.sliding {
		m.slideTimer -= dt
		if m.slideTimer <= 0 {
			m.endSlide()
		}
	}
	if m.slideCooldownTimer > 0 {
		m.slideCooldownTimer -= dt
	}

	// Horizontal and vertical are resolved by separate controller sweeps
	m.ctrl.Move(mgl64.Vec3{newX - pos.X(), 0, m.cfg.RunSpeed * dt})
	m.ctrl.Move(mgl64.Vec3{0, m.verticalVelocity * dt, 0})

	m.setBool(m.cfg.Animation.GroundedBool, m.ctrl.IsGrounded())
}

func (m *Movement) trigger(name string) {
	if m.anim == nil || name == "" {
		return
	}
	m.anim.SetTrigger(name)
}

func (m *Movement) setBool(name string, v bool) {
	if m.anim == nil || name == "" {
		return
	}
	m.anim.SetBool(name, v)
}

// JumpVelocity returns the launch speed that peaks at height under gravity.
func JumpVelocity(height, gravity float64) float64 {
	return math.Sqrt(height * 2 * math.Abs(gravity))
}
