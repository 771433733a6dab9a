package world

import (
	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/zone"
)

const (
	DefaultBodyRadius = 0.5
	DefaultBodyHeight = 2.0
)

// Body is an upright box moved through a World. It implements the movement backend and transform of
// a motor, and is rotated by a camera.
type Body struct {
	world *World

	pos            mgl32.Vec3
	yaw            float32
	radius, height float32

	delta   float32
	vel     mgl32.Vec3
	enabled bool

	// inside holds the zones the body overlapped after its last move.
	inside *orderedmap.OrderedMap[string, zone.Zone]
}

// NewBody creates a body in the world with its feet at pos. Collision is enabled.
func (w *World) NewBody(pos mgl32.Vec3, radius, height float32) *Body {
	return &Body{
		world:   w,
		pos:     pos,
		radius:  radius,
		height:  height,
		enabled: true,
		inside:  orderedmap.NewOrderedMap[string, zone.Zone](),
	}
}

// Position returns the position of the feet of the body.
func (b *Body) Position() mgl32.Vec3 {
	return b.pos
}

// SetPosition teleports the body without any collision response.
func (b *Body) SetPosition(pos mgl32.Vec3) {
	b.pos = pos
}

// BBox returns the bounding box of the body at its current position.
func (b *Body) BBox() cube.BBox {
	return game.BodyBox(b.pos, b.radius, b.height)
}

// Yaw returns the rotation of the body around the up axis in degrees, in [0, 360).
func (b *Body) Yaw() float32 {
	return b.yaw
}

// Rotate turns the body clockwise around the up axis by yaw degrees.
func (b *Body) Rotate(yaw float32) {
	b.yaw = math32.Mod(b.yaw+yaw, 360)
	if b.yaw < 0 {
		b.yaw += 360
	}
}

// Forward returns the horizontal direction the body faces. A yaw of zero faces +Z.
func (b *Body) Forward() mgl32.Vec3 {
	s, c := math32.Sincos(mgl32.DegToRad(b.yaw))
	return mgl32.Vec3{s, 0, c}
}

// Right returns the horizontal direction to the right of the body. A yaw of zero gives +X.
func (b *Body) Right() mgl32.Vec3 {
	s, c := math32.Sincos(mgl32.DegToRad(b.yaw))
	return mgl32.Vec3{c, 0, -s}
}

// SetDelta sets the frame time used to derive the velocity of the next move.
func (b *Body) SetDelta(dt float32) {
	b.delta = dt
}

// Velocity returns the velocity the body moved with during its last move.
func (b *Body) Velocity() mgl32.Vec3 {
	return b.vel
}

// HorizontalVelocity returns the horizontal part of Velocity.
func (b *Body) HorizontalVelocity() mgl32.Vec3 {
	return mgl32.Vec3{b.vel.X(), 0, b.vel.Z()}
}

// Enabled returns true if the body collides with the world.
func (b *Body) Enabled() bool {
	return b.enabled
}

// SetEnabled suspends or resumes collision of the body. Moves are ignored while it is suspended.
func (b *Body) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// Move moves the body by the displacement passed, clipped against the solids of the world on the Y,
// X and Z axes in that order. Zones entered or left by the move are notified before Move returns.
func (b *Body) Move(displacement mgl32.Vec3) {
	if !b.enabled {
		if b.world.logger != nil {
			b.world.logger.Debug("ignored move of suspended body", "world", b.world.id, "displacement", displacement)
		}
		return
	}

	collisionBB := b.BBox()
	bbList := b.world.NearbyBBoxes(collisionBB.Extend(displacement))

	yVel := mgl32.Vec3{0, displacement.Y()}
	for i := len(bbList) - 1; i >= 0; i-- {
		yVel = game.BBClipCollide(bbList[i], collisionBB, yVel, false, nil)
	}
	collisionBB = collisionBB.Translate(yVel)

	xVel := mgl32.Vec3{displacement.X()}
	for i := len(bbList) - 1; i >= 0; i-- {
		xVel = game.BBClipCollide(bbList[i], collisionBB, xVel, false, nil)
	}
	collisionBB = collisionBB.Translate(xVel)

	zVel := mgl32.Vec3{0, 0, displacement.Z()}
	for i := len(bbList) - 1; i >= 0; i-- {
		zVel = game.BBClipCollide(bbList[i], collisionBB, zVel, false, nil)
	}

	moved := mgl32.Vec3{xVel.X(), yVel.Y(), zVel.Z()}
	b.pos = b.pos.Add(moved)
	if b.delta > 0 {
		b.vel = moved.Mul(1 / b.delta)
	} else {
		b.vel = mgl32.Vec3{}
	}

	b.updateZones()
}

// updateZones notifies the zones the body entered or left since the last update. No world lock is
// held while zones are notified.
func (b *Body) updateZones() {
	current := b.world.zonesIntersecting(b.BBox())

	var left, entered []zone.Zone
	for _, id := range b.inside.Keys() {
		if _, ok := current.Get(id); !ok {
			z, _ := b.inside.Get(id)
			left = append(left, z)
		}
	}
	for _, id := range current.Keys() {
		if _, ok := b.inside.Get(id); !ok {
			z, _ := current.Get(id)
			entered = append(entered, z)
		}
	}
	b.inside = current

	for _, z := range left {
		if b.world.logger != nil {
			b.world.logger.Debug("body left zone", "world", b.world.id, "zone", z.ID())
		}
		z.OnExit()
	}
	for _, z := range entered {
		if b.world.logger != nil {
			b.world.logger.Debug("body entered zone", "world", b.world.id, "zone", z.ID())
		}
		z.OnEnter()
	}
}

// Inside returns the ids of the zones the body overlapped after its last move.
func (b *Body) Inside() []string {
	return append([]string(nil), b.inside.Keys()...)
}
