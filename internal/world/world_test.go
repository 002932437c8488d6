package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/player"
)

func groundScene(t *testing.T, tiles int) *Scene {
	t.Helper()
	cfg := config.DefaultRunnerConfig().Ground
	prefab := PrefabFromConfig(cfg.Prefab, "Ground")
	s := NewScene()
	parent := s.NewNode("Ground", nil)
	for i := 0; i < tiles; i++ {
		pos := mgl64.Vec3{cfg.OffsetX, cfg.OffsetY, float64(i) * cfg.TileLength}
		s.Instantiate(prefab, pos, mgl64.QuatIdent(), parent)
	}
	return s
}

func TestPrefabBounds(t *testing.T) {
	center := &Prefab{Size: mgl64.Vec3{2, 0.8, 0.5}}
	b := center.Bounds(mgl64.Vec3{2.5, 0, 30})
	if b.Min != (mgl64.Vec3{1.5, 0, 29.75}) || b.Max != (mgl64.Vec3{3.5, 0.8, 30.25}) {
		t.Errorf("centered bounds = %+v", b)
	}

	bar := &Prefab{Size: mgl64.Vec3{2, 1.5, 0.5}, Elevation: 1}
	b = bar.Bounds(mgl64.Vec3{})
	if b.Min.Y() != 1 || b.Max.Y() != 2.5 {
		t.Errorf("elevated bounds y = [%v, %v], expected [1, 2.5]", b.Min.Y(), b.Max.Y())
	}

	ground := PrefabFromConfig(config.DefaultRunnerConfig().Ground.Prefab, "Ground")
	b = ground.Bounds(mgl64.Vec3{-0.33, -0.5, 20})
	if b.Min.Z() != 20 || b.Max.Z() != 40 {
		t.Errorf("front-pivot z = [%v, %v], expected [20, 40]", b.Min.Z(), b.Max.Z())
	}
	if b.Max.Y() != 0 {
		t.Errorf("ground top = %v, expected 0", b.Max.Y())
	}
}

func TestPrefabFromNilConfig(t *testing.T) {
	if PrefabFromConfig(nil, "Obstacle") != nil {
		t.Error("nil config should produce nil prefab")
	}
}

func TestAABBOverlaps(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{"inside", AABB{Min: mgl64.Vec3{0.2, 0.2, 0.2}, Max: mgl64.Vec3{0.8, 0.8, 0.8}}, true},
		{"partial", AABB{Min: mgl64.Vec3{0.5, 0.5, 0.5}, Max: mgl64.Vec3{2, 2, 2}}, true},
		{"touching", AABB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}}, false},
		{"apart in y", AABB{Min: mgl64.Vec3{0, 2, 0}, Max: mgl64.Vec3{1, 3, 1}}, false},
	}
	for _, tc := range tests {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps() = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestSceneInstantiate(t *testing.T) {
	s := NewScene()
	node := s.NewNode("Obstacles", nil)
	p := &Prefab{Name: "HurdleJump", Tag: "Obstacle", Size: mgl64.Vec3{2, 0.8, 0.5}}

	inst := s.Instantiate(p, mgl64.Vec3{0, 0, 10}, mgl64.QuatIdent(), node)
	if inst == nil {
		t.Fatal("Instantiate returned nil")
	}
	if inst.Parent != node || len(node.Instances()) != 1 {
		t.Error("instance should be parented under the node")
	}
	if node.Parent() != s.Root() || len(s.Root().Children()) != 1 {
		t.Error("node should hang under the root")
	}
	if inst.Name() != "HurdleJump" || inst.Tag() != "Obstacle" {
		t.Errorf("instance = %q/%q", inst.Name(), inst.Tag())
	}

	if s.Instantiate(nil, mgl64.Vec3{}, mgl64.QuatIdent(), node) != nil {
		t.Error("nil prefab should not instantiate")
	}
	if s.Len() != 1 {
		t.Errorf("scene has %d instances, expected 1", s.Len())
	}

	second := s.Instantiate(p, mgl64.Vec3{}, mgl64.QuatIdent(), nil)
	if second.Parent != s.Root() {
		t.Error("nil parent should default to the root")
	}
	if second.ID == inst.ID {
		t.Error("instance ids must be unique")
	}
	if len(s.Tagged("Obstacle")) != 2 || len(s.Tagged("Ground")) != 0 {
		t.Error("Tagged() filtered incorrectly")
	}
}

func TestControllerStandsOnGround(t *testing.T) {
	s := groundScene(t, 2)
	c := NewCharacterController(s, "Ground", mgl64.Vec3{}, player.StandingCapsule(2, 0.5))

	if !c.IsGrounded() {
		t.Fatal("controller resting on the ground should start grounded")
	}

	c.Move(mgl64.Vec3{0, -0.1, 0})
	if !c.IsGrounded() || c.Position().Y() != 0 {
		t.Errorf("after pushing down: y = %v grounded = %v", c.Position().Y(), c.IsGrounded())
	}

	c.Move(mgl64.Vec3{0, 1, 0})
	if c.IsGrounded() {
		t.Error("upward move should leave the ground")
	}

	c.Move(mgl64.Vec3{1, 0, 5})
	if c.IsGrounded() {
		t.Error("horizontal move must not change grounding")
	}
	if c.Position().X() != 1 || c.Position().Z() != 5 {
		t.Errorf("horizontal move not applied: %v", c.Position())
	}

	c.Move(mgl64.Vec3{0, -5, 0})
	if !c.IsGrounded() || c.Position().Y() != 0 {
		t.Errorf("landing: y = %v grounded = %v", c.Position().Y(), c.IsGrounded())
	}
}

func TestControllerFallsPastTiles(t *testing.T) {
	s := groundScene(t, 1)
	c := NewCharacterController(s, "Ground", mgl64.Vec3{0, 0, 25}, player.StandingCapsule(2, 0.5))

	if c.IsGrounded() {
		t.Fatal("no tile under z=25, controller should not be grounded")
	}
	c.Move(mgl64.Vec3{0, -1, 0})
	if c.IsGrounded() || c.Position().Y() != -1 {
		t.Errorf("expected free fall, got y = %v grounded = %v", c.Position().Y(), c.IsGrounded())
	}
}

func TestControllerPushesOutAfterCapsuleGrows(t *testing.T) {
	s := groundScene(t, 1)
	c := NewCharacterController(s, "Ground", mgl64.Vec3{}, player.StandingCapsule(2, 0.5))

	slide := player.Capsule{Height: 0.375, Radius: 0.3, Center: mgl64.Vec3{0, 0.375, 0}}
	c.SetCapsule(slide)
	for i := 0; i < 5; i++ {
		c.Move(mgl64.Vec3{0, -0.05, 0})
	}
	if math.Abs(c.Position().Y()+0.075) > 1e-9 || !c.IsGrounded() {
		t.Fatalf("slide capsule should settle at y = -0.075, got %v", c.Position().Y())
	}

	c.SetCapsule(player.StandingCapsule(2, 0.5))
	c.Move(mgl64.Vec3{0, -0.05, 0})
	if math.Abs(c.Position().Y()) > 1e-9 || !c.IsGrounded() {
		t.Errorf("standing capsule should be pushed back to y = 0, got %v", c.Position().Y())
	}
}

func TestOverlapsAndTriggerTracker(t *testing.T) {
	s := groundScene(t, 1)
	obstacles := s.NewNode("Obstacles", nil)
	hurdle := &Prefab{Name: "HurdleJump", Tag: "Obstacle", Size: mgl64.Vec3{2, 0.8, 0.5}}
	s.Instantiate(hurdle, mgl64.Vec3{0, 0, 3}, mgl64.QuatIdent(), obstacles)
	s.Instantiate(hurdle, mgl64.Vec3{2.5, 0, 3}, mgl64.QuatIdent(), obstacles)

	c := NewCharacterController(s, "Ground", mgl64.Vec3{}, player.StandingCapsule(2, 0.5))
	tracker := NewTriggerTracker()

	if hits := Overlaps(c, s, "Obstacle"); len(hits) != 0 {
		t.Fatalf("no overlap expected at z=0, got %d", len(hits))
	}

	c.Move(mgl64.Vec3{0, 0, 3})
	hits := Overlaps(c, s, "Obstacle")
	if len(hits) != 1 || hits[0].Position.X() != 0 {
		t.Fatalf("expected only the center hurdle, got %d hits", len(hits))
	}
	if entered := tracker.Update(hits); len(entered) != 1 {
		t.Errorf("first overlap should enter, got %d", len(entered))
	}
	if entered := tracker.Update(Overlaps(c, s, "Obstacle")); len(entered) != 0 {
		t.Errorf("staying inside should not re-enter, got %d", len(entered))
	}

	// Jumping clear of the hurdle leaves the trigger
	c.Move(mgl64.Vec3{0, 1, 0})
	if entered := tracker.Update(Overlaps(c, s, "Obstacle")); len(entered) != 0 || tracker.Inside() != 0 {
		t.Error("player above the hurdle should be outside")
	}

	if Overlaps(nil, s, "Obstacle") != nil {
		t.Error("nil controller should overlap nothing")
	}
}

func TestAnimatorRecorder(t *testing.T) {
	a := NewAnimatorRecorder()
	a.SetTrigger("Jump")
	a.SetTrigger("Lane")
	a.SetTrigger("Jump")
	a.SetBool("Grounded", true)

	if a.Count("Jump") != 2 || a.Last() != "Jump" || len(a.Triggers()) != 3 {
		t.Errorf("triggers = %v", a.Triggers())
	}
	if !a.Bool("Grounded") || a.Bool("Sliding") {
		t.Error("bool state recorded incorrectly")
	}
}

func TestSurface(t *testing.T) {
	ui := NewSurface()
	if ui.GameOver.Active() {
		t.Error("game-over panel should start hidden")
	}
	ui.Distance.SetText("Distance: 1.0 m")
	ui.Distance.SetLocalPosition(mgl64.Vec2{0, -80})
	if ui.Distance.Text() != "Distance: 1.0 m" || ui.Distance.LocalPosition().Y() != -80 {
		t.Error("text state not stored")
	}
}
