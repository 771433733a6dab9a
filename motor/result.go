package motor

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/game"
)

// JumpKind describes which jump, if any, was accepted during a frame.
type JumpKind uint8

const (
	JumpNone JumpKind = iota
	JumpGround
	JumpAir
	JumpLadder
)

func (j JumpKind) String() string {
	switch j {
	case JumpNone:
		return "none"
	case JumpGround:
		return "ground"
	case JumpAir:
		return "air"
	case JumpLadder:
		return "ladder"
	}
	return "unknown"
}

// StepResult captures the outcome of a single Step.
type StepResult struct {
	Mode     Mode
	Grounded bool

	VerticalVelocity float32
	Speed            float32
	JumpCount        int
	Jump             JumpKind

	// Displacement is the displacement that was requested from the movement backend.
	Displacement mgl32.Vec3
}

// Data returns the result as key/value pairs in a stable order, for logs and traces.
func (r StepResult) Data() *orderedmap.OrderedMap[string, any] {
	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("mode", r.Mode.String())
	data.Set("grounded", r.Grounded)
	data.Set("vy", game.Round32(r.VerticalVelocity, 4))
	data.Set("speed", game.Round32(r.Speed, 4))
	data.Set("jumps", r.JumpCount)
	data.Set("jump", r.Jump.String())
	data.Set("dx", game.Round32(r.Displacement.X(), 4))
	data.Set("dy", game.Round32(r.Displacement.Y(), 4))
	data.Set("dz", game.Round32(r.Displacement.Z(), 4))
	return data
}
