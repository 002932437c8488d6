package player

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Gesture is a discrete command recognized from a swipe.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureLeft
	GestureRight
	GestureJump
	GestureSlide
)

// String returns a human-readable name for the gesture.
func (g Gesture) String() string {
	switch g {
	case GestureLeft:
		return "Left"
	case GestureRight:
		return "Right"
	case GestureJump:
		return "Jump"
	case GestureSlide:
		return "Slide"
	default:
		return "None"
	}
}

type swipeTrack struct {
	active bool
	start  mgl64.Vec2
	at     time.Time
}

// SwipeDetector turns press/release pairs into gestures.
// Every pointer source keeps its own press so mouse and touch never interfere.
type SwipeDetector struct {
	threshold float64
	maxTime   time.Duration
	tracks    map[core.PointerSource]*swipeTrack
}

// NewSwipeDetector creates a detector. maxTime is in seconds.
func NewSwipeDetector(threshold, maxTime float64) *SwipeDetector {
	return &SwipeDetector{
		threshold: threshold,
		maxTime:   time.Duration(maxTime * float64(time.Second)),
		tracks:    make(map[core.PointerSource]*swipeTrack),
	}
}

// Feed consumes one pointer edge. A release that completes a valid swipe
// returns its gesture; everything else returns GestureNone.
func (d *SwipeDetector) Feed(ev core.PointerEvent) Gesture {
	tr, ok := d.tracks[ev.Source]
	if !ok {
		tr = &swipeTrack{}
		d.tracks[ev.Source] = tr
	}

	pos := mgl64.Vec2{ev.X, ev.Y}
	switch ev.Phase {
	case core.PointerPress:
		tr.active = true
		tr.start = pos
		tr.at = ev.At
	case core.PointerRelease:
		if !tr.active {
			return GestureNone
		}
		tr.active = false
		return EvaluateSwipe(tr.start, pos, ev.At.Sub(tr.at), d.threshold, d.maxTime)
	}
	return GestureNone
}

// Tracking reports whether a press is pending for the source.
func (d *SwipeDetector) Tracking(src core.PointerSource) bool {
	tr, ok := d.tracks[src]
	return ok && tr.active
}

// EvaluateSwipe classifies a completed swipe. Slow or short swipes are ignored.
// The dominant axis wins; ties go to the vertical axis.
func EvaluateSwipe(start, end mgl64.Vec2, elapsed time.Duration, threshold float64, maxTime time.Duration) Gesture {
	delta := end.Sub(start)
	if elapsed > maxTime {
		return GestureNone
	}
	if delta.Len() < threshold {
		return GestureNone
	}

	if math.Abs(delta.X()) > math.Abs(delta.Y()) {
		if delta.X() > 0 {
			return GestureRight
		}
		return GestureLeft
	}
	if delta.Y() > 0 {
		return GestureJump
	}
	return GestureSlide
}

