package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Capsule is the vertical collision shape of a character controller.
// Center is relative to the controller position.
type Capsule struct {
	Height float64
	Radius float64
	Center mgl64.Vec3
}

// StandingCapsule returns a capsule whose bottom rests on the controller position.
func StandingCapsule(height, radius float64) Capsule {
	return Capsule{
		Height: height,
		Radius: radius,
		Center: mgl64.Vec3{0, height * 0.5, 0},
	}
}

// EffectiveHeight is the height actually swept. A capsule can never be
// shorter than its two hemispheres.
func (c Capsule) EffectiveHeight() float64 {
	return math.Max(c.Height, 2*c.Radius)
}

// Bottom returns the lowest point relative to the controller position.
func (c Capsule) Bottom() float64 {
	return c.Center.Y() - c.EffectiveHeight()*0.5
}

// Top returns the highest point relative to the controller position.
func (c Capsule) Top() float64 {
	return c.Center.Y() + c.EffectiveHeight()*0.5
}
