package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/lane-runner/internal/player"
)

// CharacterController is a kinematic capsule that stands on ground tiles.
// Only the vertical component of a move is resolved; lateral and forward
// motion is free and leaves the grounded flag untouched.
type CharacterController struct {
	scene     *Scene
	groundTag string

	pos      mgl64.Vec3
	capsule  player.Capsule
	grounded bool
}

// NewCharacterController creates a controller at pos.
// Instances tagged groundTag are treated as walkable.
func NewCharacterController(scene *Scene, groundTag string, pos mgl64.Vec3, capsule player.Capsule) *CharacterController {
	c := &CharacterController{
		scene:     scene,
		groundTag: groundTag,
		pos:       pos,
		capsule:   capsule,
	}
	c.Snap()
	return c
}

// Snap grounds the controller if its capsule already rests on a surface.
func (c *CharacterController) Snap() {
	top, ok := c.surfaceBelow(c.bottom())
	c.grounded = ok && math.Abs(c.bottom()-top) <= groundSkin
}

const (
	groundSkin = 1e-6 // Tolerance for standing on a surface
	stepOffset = 0.3  // Surfaces this far above the capsule bottom are still climbed
)

// Position returns the controller position (the capsule's reference point).
func (c *CharacterController) Position() mgl64.Vec3 {
	return c.pos
}

// IsGrounded reports whether the last vertical move ended on a surface.
func (c *CharacterController) IsGrounded() bool {
	return c.grounded
}

// Capsule returns the current collision shape.
func (c *CharacterController) Capsule() player.Capsule {
	return c.capsule
}

// SetCapsule replaces the collision shape without moving the controller.
// A taller shape that ends up inside the ground is pushed out on the next
// downward move.
func (c *CharacterController) SetCapsule(cp player.Capsule) {
	c.capsule = cp
}

// Bounds returns the capsule's world box.
func (c *CharacterController) Bounds() AABB {
	r := c.capsule.Radius
	center := c.pos.Add(c.capsule.Center)
	return AABB{
		Min: mgl64.Vec3{center.X() - r, c.pos.Y() + c.capsule.Bottom(), center.Z() - r},
		Max: mgl64.Vec3{center.X() + r, c.pos.Y() + c.capsule.Top(), center.Z() + r},
	}
}

// Move displaces the controller. A downward move that would cross the top
// of a ground tile stops on it and grounds the controller.
func (c *CharacterController) Move(d mgl64.Vec3) {
	c.pos = mgl64.Vec3{c.pos.X() + d.X(), c.pos.Y(), c.pos.Z() + d.Z()}
	if d.Y() == 0 {
		return
	}

	before := c.bottom()
	c.pos[1] += d.Y()
	if d.Y() > 0 {
		c.grounded = false
		return
	}

	top, ok := c.surfaceBelow(before)
	if ok && c.bottom() <= top {
		c.pos[1] += top - c.bottom()
		c.grounded = true
		return
	}
	c.grounded = false
}

// Teleport places the controller without collision and clears grounding.
func (c *CharacterController) Teleport(pos mgl64.Vec3) {
	c.pos = pos
	c.grounded = false
}

func (c *CharacterController) bottom() float64 {
	return c.pos.Y() + c.capsule.Bottom()
}

// surfaceBelow returns the highest ground top under the controller that a
// capsule bottom at from can land on.
func (c *CharacterController) surfaceBelow(from float64) (float64, bool) {
	if c.scene == nil {
		return 0, false
	}

	best, found := 0.0, false
	for _, inst := range c.scene.Tagged(c.groundTag) {
		b := inst.Bounds()
		if !b.ContainsXZ(c.pos.X(), c.pos.Z()) {
			continue
		}
		top := b.Max.Y()
		if top > from+stepOffset {
			continue
		}
		if !found || top > best {
			best, found = top, true
		}
	}
	return best, found
}
