package motor

import "github.com/go-gl/mathgl/mgl32"

// LayerMask selects the layers of world geometry a query considers.
type LayerMask uint32

const (
	LayerDefault LayerMask = 1 << iota
	LayerGround
	LayerClimbable
	LayerTrigger

	LayerAll LayerMask = ^LayerMask(0)
)

// Has returns true if any layer of other is part of the mask.
func (m LayerMask) Has(other LayerMask) bool {
	return m&other != 0
}

// MovementBackend resolves displacement requests against the world. The Motor never moves the body
// directly: it requests a displacement once per frame and reads back the velocity that resulted.
type MovementBackend interface {
	// Move applies a frame-relative displacement, resolving collisions internally. Trigger volumes
	// entered or left by the move may call back into the Motor before Move returns.
	Move(displacement mgl32.Vec3)
	// HorizontalVelocity returns the velocity the body moved with during the last Move.
	HorizontalVelocity() mgl32.Vec3
	// Enabled returns true if the backend resolves collisions.
	Enabled() bool
	// SetEnabled suspends or resumes collision resolution.
	SetEnabled(enabled bool)
}

// Transform exposes the position and facing of the body. Both are owned by the backend.
type Transform interface {
	Position() mgl32.Vec3
	// SetPosition moves the body without any collision response.
	SetPosition(pos mgl32.Vec3)
	// Forward returns the unit vector the body is facing on the horizontal plane.
	Forward() mgl32.Vec3
	// Right returns the unit vector to the right of the body on the horizontal plane.
	Right() mgl32.Vec3
}

// WorldQuery bridges the physics queries needed for ground detection.
type WorldQuery interface {
	SphereOverlap(center mgl32.Vec3, radius float32, mask LayerMask, ignoreTriggers bool) bool
}
