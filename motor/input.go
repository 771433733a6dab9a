package motor

import "github.com/go-gl/mathgl/mgl32"

// DeviceKind is the kind of device that produced the look input of a frame.
type DeviceKind uint8

const (
	// DevicePointer is a mouse or another pointer that reports deltas already scaled to the frame.
	DevicePointer DeviceKind = iota
	// DeviceOther is a gamepad stick or another device that reports a rate.
	DeviceOther
)

func (d DeviceKind) String() string {
	switch d {
	case DevicePointer:
		return "pointer"
	case DeviceOther:
		return "other"
	}
	return "unknown"
}

// InputState represents a single frame of player input.
type InputState struct {
	Move mgl32.Vec2
	Look mgl32.Vec2

	Sprint bool
	// Jump is set by the input source when jump is pressed, and cleared by the Motor only when a jump
	// is accepted. A jump that is not accepted stays pending, so holding it fires as soon as it is
	// allowed again.
	Jump bool
	// AnalogMovement scales the target speed by the magnitude of Move.
	AnalogMovement bool

	Device DeviceKind
}
