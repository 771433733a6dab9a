package zone

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/oerror"
)

// Climber is attached to and detached from ladders. It is implemented by *motor.Motor.
type Climber interface {
	EnterLadder(dir mgl32.Vec3)
	ExitLadder()
}

// Ladder is a zone that lets the character climb along its up axis while inside it.
type Ladder struct {
	id     string
	bounds cube.BBox
	up     mgl32.Vec3
	target Climber
}

// NewLadder creates a ladder zone acting on target.
func NewLadder(id string, bounds cube.BBox, up mgl32.Vec3, target Climber) (*Ladder, error) {
	if target == nil {
		return nil, oerror.New(game.ErrorMissingZoneTarget, id)
	}
	return &Ladder{id: id, bounds: bounds, up: up, target: target}, nil
}

func (l *Ladder) ID() string {
	return l.id
}

func (l *Ladder) Bounds() cube.BBox {
	return l.bounds
}

// Up returns the axis the ladder is climbed along.
func (l *Ladder) Up() mgl32.Vec3 {
	return l.up
}

// SetUp changes the climb axis. A character already on the ladder keeps the axis it entered with.
func (l *Ladder) SetUp(up mgl32.Vec3) {
	l.up = up
}

func (l *Ladder) OnEnter() {
	l.target.EnterLadder(l.up)
}

func (l *Ladder) OnExit() {
	l.target.ExitLadder()
}
