package player

import "github.com/go-gl/mathgl/mgl64"

// Controller is the physics collaborator that moves the player capsule.
// Move resolves collisions itself and may adjust the final position.
type Controller interface {
	Position() mgl64.Vec3
	IsGrounded() bool
	Move(displacement mgl64.Vec3)
	Capsule() Capsule
	SetCapsule(c Capsule)
}

// Animator receives fire-and-forget triggers and named boolean states.
type Animator interface {
	SetTrigger(name string)
	SetBool(name string, value bool)
}
