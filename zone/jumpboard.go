package zone

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/oerror"
)

// Booster receives jump boosts keyed by the zone applying them. It is implemented by *motor.Motor.
type Booster interface {
	ApplyJumpBoost(source string, multiplier float32)
	ClearJumpBoost(source string)
}

// JumpBoard is a zone that multiplies the height of jumps made while inside it.
type JumpBoard struct {
	id         string
	bounds     cube.BBox
	multiplier float32
	target     Booster
}

// NewJumpBoard creates a jump board acting on target. A multiplier of zero or below is replaced
// with DefaultJumpBoardMultiplier.
func NewJumpBoard(id string, bounds cube.BBox, multiplier float32, target Booster) (*JumpBoard, error) {
	if target == nil {
		return nil, oerror.New(game.ErrorMissingZoneTarget, id)
	}
	if multiplier <= 0 {
		multiplier = DefaultJumpBoardMultiplier
	}
	return &JumpBoard{id: id, bounds: bounds, multiplier: multiplier, target: target}, nil
}

func (j *JumpBoard) ID() string {
	return j.id
}

func (j *JumpBoard) Bounds() cube.BBox {
	return j.bounds
}

// Multiplier returns the jump multiplier applied while inside the board.
func (j *JumpBoard) Multiplier() float32 {
	return j.multiplier
}

func (j *JumpBoard) OnEnter() {
	j.target.ApplyJumpBoost(j.id, j.multiplier)
}

func (j *JumpBoard) OnExit() {
	j.target.ClearJumpBoost(j.id)
}
