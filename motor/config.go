package motor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/oerror"
)

// Config holds the tunable parameters of a Motor.
type Config struct {
	MoveSpeed       float32
	SprintSpeed     float32
	SpeedChangeRate float32

	JumpHeight float32
	// Gravity is the vertical acceleration applied while not climbing. It must be negative.
	Gravity float32
	// TerminalVelocity is the vertical velocity at and above which gravity is no longer integrated.
	TerminalVelocity float32

	// JumpTimeout is the time after landing before another ground jump is accepted.
	JumpTimeout float32
	// FallTimeout is the grace window after leaving the ground.
	FallTimeout float32

	// GroundedOffset is subtracted from the height of the feet to find the centre of the ground
	// sensor sphere.
	GroundedOffset float32
	GroundedRadius float32
	GroundLayers   LayerMask

	FallThreshold   float32
	RespawnPosition mgl32.Vec3

	// ExtraJumpCount is the number of jumps allowed in the air on top of the ground jump.
	ExtraJumpCount int

	ClimbSpeed     float32
	LadderPushback float32
}

// DefaultConfig returns the default configuration of a Motor.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:        DefaultMoveSpeed,
		SprintSpeed:      DefaultSprintSpeed,
		SpeedChangeRate:  DefaultSpeedChangeRate,
		JumpHeight:       DefaultJumpHeight,
		Gravity:          DefaultGravity,
		TerminalVelocity: DefaultTerminalVelocity,
		JumpTimeout:      DefaultJumpTimeout,
		FallTimeout:      DefaultFallTimeout,
		GroundedOffset:   DefaultGroundedOffset,
		GroundedRadius:   DefaultGroundedRadius,
		GroundLayers:     LayerGround,
		FallThreshold:    DefaultFallThreshold,
		ExtraJumpCount:   DefaultExtraJumpCount,
		ClimbSpeed:       DefaultClimbSpeed,
		LadderPushback:   DefaultLadderPushback,
	}
}

// Validate returns an *oerror.Error describing the first value of the config that a Motor cannot
// run with.
func (c Config) Validate() error {
	switch {
	case c.MoveSpeed <= 0:
		return oerror.New(game.ErrorInvalidConfigValue, "MoveSpeed", c.MoveSpeed, "must be positive")
	case c.SprintSpeed < c.MoveSpeed:
		return oerror.New(game.ErrorInvalidConfigValue, "SprintSpeed", c.SprintSpeed, "must not be below MoveSpeed")
	case c.SpeedChangeRate <= 0:
		return oerror.New(game.ErrorInvalidConfigValue, "SpeedChangeRate", c.SpeedChangeRate, "must be positive")
	case c.JumpHeight < 0:
		return oerror.New(game.ErrorInvalidConfigValue, "JumpHeight", c.JumpHeight, "must not be negative")
	case c.Gravity >= 0:
		return oerror.New(game.ErrorInvalidConfigValue, "Gravity", c.Gravity, "must be negative")
	case c.JumpTimeout < 0:
		return oerror.New(game.ErrorInvalidConfigValue, "JumpTimeout", c.JumpTimeout, "must not be negative")
	case c.FallTimeout < 0:
		return oerror.New(game.ErrorInvalidConfigValue, "FallTimeout", c.FallTimeout, "must not be negative")
	case c.GroundedRadius <= 0:
		return oerror.New(game.ErrorInvalidConfigValue, "GroundedRadius", c.GroundedRadius, "must be positive")
	case c.GroundLayers == 0:
		return oerror.New(game.ErrorInvalidConfigValue, "GroundLayers", c.GroundLayers, "must select at least one layer")
	case c.ExtraJumpCount < 0:
		return oerror.New(game.ErrorInvalidConfigValue, "ExtraJumpCount", c.ExtraJumpCount, "must not be negative")
	case c.ClimbSpeed < 0:
		return oerror.New(game.ErrorInvalidConfigValue, "ClimbSpeed", c.ClimbSpeed, "must not be negative")
	case c.LadderPushback < 0:
		return oerror.New(game.ErrorInvalidConfigValue, "LadderPushback", c.LadderPushback, "must not be negative")
	}
	return nil
}
