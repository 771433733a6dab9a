package settings

import (
	"github.com/oomph-ac/strider/camera"
	"github.com/oomph-ac/strider/motor"
	"github.com/oomph-ac/strider/world"
	"github.com/oomph-ac/strider/zone"
)

// Default returns the default settings: the default motor and camera on a flat floor with a ladder
// and a jump board.
func Default() Settings {
	m := motor.DefaultConfig()
	c := camera.DefaultConfig()

	settings := Settings{}
	settings.Logging.Level = "info"
	settings.Logging.Format = "text"

	settings.Motor = Motor{
		MoveSpeed:        m.MoveSpeed,
		SprintSpeed:      m.SprintSpeed,
		SpeedChangeRate:  m.SpeedChangeRate,
		JumpHeight:       m.JumpHeight,
		Gravity:          m.Gravity,
		TerminalVelocity: m.TerminalVelocity,
		JumpTimeout:      m.JumpTimeout,
		FallTimeout:      m.FallTimeout,
		ExtraJumpCount:   m.ExtraJumpCount,
		GroundedOffset:   m.GroundedOffset,
		GroundedRadius:   m.GroundedRadius,
		GroundLayers:     []string{"ground"},
		FallThreshold:    m.FallThreshold,
		ClimbSpeed:       m.ClimbSpeed,
		LadderPushback:   m.LadderPushback,
	}
	settings.Camera = Camera{
		RotationSpeed: c.RotationSpeed,
		TopClamp:      c.TopClamp,
		BottomClamp:   c.BottomClamp,
	}

	settings.World.Body.Radius = world.DefaultBodyRadius
	settings.World.Body.Height = world.DefaultBodyHeight
	settings.World.Ground = []Box{{
		Min:    Vec3{-50, -1, -50},
		Max:    Vec3{50, 0, 50},
		Layers: []string{"ground"},
	}}
	settings.World.Ladders = []LadderZone{{
		ID:  "ladder",
		Min: Vec3{5, 0, -1},
		Max: Vec3{6, 8, 1},
		Up:  Vec3{0, 1, 0},
	}}
	settings.World.JumpBoards = []JumpBoardZone{{
		ID:         "jumpboard",
		Min:        Vec3{-6, 0, -1},
		Max:        Vec3{-4, 0.5, 1},
		Multiplier: zone.DefaultJumpBoardMultiplier,
	}}
	return settings
}
