package zone

import "github.com/ethaniccc/float32-cube/cube"

// DefaultJumpBoardMultiplier is the jump multiplier a JumpBoard applies when none is configured.
const DefaultJumpBoardMultiplier = 5.0

// Zone is a trigger volume that reacts to a character entering and leaving it. OnEnter and OnExit
// are called synchronously by whatever detects the overlap, which may be in the middle of a move.
type Zone interface {
	ID() string
	Bounds() cube.BBox
	OnEnter()
	OnExit()
}
