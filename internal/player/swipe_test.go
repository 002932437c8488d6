package player

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestEvaluateSwipe(t *testing.T) {
	const threshold = 60.0
	maxTime := 600 * time.Millisecond

	tests := []struct {
		name    string
		end     mgl64.Vec2
		elapsed time.Duration
		want    Gesture
	}{
		{"right", mgl64.Vec2{100, 10}, 100 * time.Millisecond, GestureRight},
		{"left", mgl64.Vec2{-100, -10}, 100 * time.Millisecond, GestureLeft},
		{"up jumps", mgl64.Vec2{5, 80}, 100 * time.Millisecond, GestureJump},
		{"down slides", mgl64.Vec2{-5, -80}, 100 * time.Millisecond, GestureSlide},
		{"too short", mgl64.Vec2{30, 30}, 100 * time.Millisecond, GestureNone},
		{"too slow", mgl64.Vec2{200, 0}, 700 * time.Millisecond, GestureNone},
		{"exactly max time", mgl64.Vec2{200, 0}, maxTime, GestureRight},
		{"exactly threshold", mgl64.Vec2{0, 60}, 0, GestureJump},
		{"diagonal tie goes vertical", mgl64.Vec2{70, 70}, 0, GestureJump},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateSwipe(mgl64.Vec2{}, tc.end, tc.elapsed, threshold, maxTime)
			if got != tc.want {
				t.Errorf("EvaluateSwipe() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSwipeDetectorSourcesAreIndependent(t *testing.T) {
	d := NewSwipeDetector(60, 0.6)
	now := time.Unix(0, 0)

	d.Feed(core.PointerEvent{Source: core.PointerMouse, Phase: core.PointerPress, X: 0, Y: 0, At: now})
	if !d.Tracking(core.PointerMouse) {
		t.Fatal("mouse press should be tracked")
	}
	if d.Tracking(core.PointerTouch) {
		t.Fatal("touch should not be tracked")
	}

	// A touch release without a touch press is ignored
	g := d.Feed(core.PointerEvent{Source: core.PointerTouch, Phase: core.PointerRelease, X: 200, Y: 0, At: now})
	if g != GestureNone {
		t.Errorf("orphan touch release = %v, expected None", g)
	}
	if !d.Tracking(core.PointerMouse) {
		t.Error("touch release must not clear the mouse press")
	}

	g = d.Feed(core.PointerEvent{Source: core.PointerMouse, Phase: core.PointerRelease, X: 200, Y: 0, At: now.Add(time.Millisecond)})
	if g != GestureRight {
		t.Errorf("mouse release = %v, expected Right", g)
	}
	if d.Tracking(core.PointerMouse) {
		t.Error("release should end tracking")
	}
}

func TestGestureString(t *testing.T) {
	names := map[Gesture]string{
		GestureNone:  "None",
		GestureLeft:  "Left",
		GestureRight: "Right",
		GestureJump:  "Jump",
		GestureSlide: "Slide",
	}
	for g, want := range names {
		if g.String() != want {
			t.Errorf("%d.String() = %q, expected %q", g, g.String(), want)
		}
	}
}

func TestCapsuleExtent(t *testing.T) {
	slide := Capsule{Height: 0.375, Radius: 0.3, Center: mgl64.Vec3{0, 0.375, 0}}
	if slide.EffectiveHeight() != 0.6 {
		t.Errorf("effective height = %v, expected 0.6", slide.EffectiveHeight())
	}
	if b := slide.Bottom(); b < 0.0749 || b > 0.0751 {
		t.Errorf("slide bottom = %v, expected 0.075", b)
	}

	stand := StandingCapsule(2, 0.5)
	if stand.Bottom() != 0 || stand.Top() != 2 {
		t.Errorf("standing extent = [%v, %v], expected [0, 2]", stand.Bottom(), stand.Top())
	}
}
