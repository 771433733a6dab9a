package motor

import "github.com/go-gl/mathgl/mgl32"

// Mode is the vertical movement mode of a character. Exactly one mode is active at a time.
type Mode uint8

const (
	ModeGrounded Mode = iota
	ModeAirborne
	ModeClimbing
)

func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeAirborne:
		return "airborne"
	case ModeClimbing:
		return "climbing"
	}
	return "unknown"
}

// State holds the movement state of a single character. It is owned by the Motor; callers only ever
// receive copies.
type State struct {
	Mode     Mode
	Grounded bool

	VerticalVelocity float32
	Speed            float32

	JumpCount            int
	JumpTimeoutRemaining float32
	FallTimeoutRemaining float32

	// JumpMultiplier is the multiplier currently applied to ground and air jumps.
	JumpMultiplier float32
	// LadderDirection is only meaningful while Mode is ModeClimbing.
	LadderDirection mgl32.Vec3
}

// Climbing returns true if the character is attached to a ladder.
func (s State) Climbing() bool {
	return s.Mode == ModeClimbing
}
