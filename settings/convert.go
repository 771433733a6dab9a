package settings

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/oomph-ac/strider/camera"
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/motor"
	"github.com/oomph-ac/strider/oerror"
	"github.com/oomph-ac/strider/world"
	"github.com/oomph-ac/strider/zone"
)

var layers = map[string]motor.LayerMask{
	"default":   motor.LayerDefault,
	"ground":    motor.LayerGround,
	"climbable": motor.LayerClimbable,
	"trigger":   motor.LayerTrigger,
	"all":       motor.LayerAll,
}

// ParseLayers combines the named layers into a single mask.
func ParseLayers(names []string) (motor.LayerMask, error) {
	var mask motor.LayerMask
	for _, name := range names {
		layer, ok := layers[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, oerror.New(game.ErrorInvalidConfigValue, "layer", name, "unknown layer name")
		}
		mask |= layer
	}
	return mask, nil
}

// MotorConfig returns the motor settings as a motor.Config.
func (s Settings) MotorConfig() (motor.Config, error) {
	mask, err := ParseLayers(s.Motor.GroundLayers)
	if err != nil {
		return motor.Config{}, err
	}
	return motor.Config{
		MoveSpeed:        s.Motor.MoveSpeed,
		SprintSpeed:      s.Motor.SprintSpeed,
		SpeedChangeRate:  s.Motor.SpeedChangeRate,
		JumpHeight:       s.Motor.JumpHeight,
		Gravity:          s.Motor.Gravity,
		TerminalVelocity: s.Motor.TerminalVelocity,
		JumpTimeout:      s.Motor.JumpTimeout,
		FallTimeout:      s.Motor.FallTimeout,
		GroundedOffset:   s.Motor.GroundedOffset,
		GroundedRadius:   s.Motor.GroundedRadius,
		GroundLayers:     mask,
		FallThreshold:    s.Motor.FallThreshold,
		RespawnPosition:  s.Motor.RespawnPosition.Vec(),
		ExtraJumpCount:   s.Motor.ExtraJumpCount,
		ClimbSpeed:       s.Motor.ClimbSpeed,
		LadderPushback:   s.Motor.LadderPushback,
	}, nil
}

// CameraConfig returns the camera settings as a camera.Config.
func (s Settings) CameraConfig() camera.Config {
	return camera.Config{
		RotationSpeed: s.Camera.RotationSpeed,
		TopClamp:      s.Camera.TopClamp,
		BottomClamp:   s.Camera.BottomClamp,
	}
}

// Validate returns an error describing the first setting that cannot be used.
func (s Settings) Validate() error {
	if _, err := s.Logging.level(); err != nil {
		return err
	}
	if f := s.Logging.Format; f != "text" && f != "json" {
		return oerror.New(game.ErrorInvalidConfigValue, "Logging.Format", f, "must be text or json")
	}

	conf, err := s.MotorConfig()
	if err != nil {
		return err
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	if err := s.CameraConfig().Validate(); err != nil {
		return err
	}
	return s.World.Validate()
}

// Validate checks the geometry and zones of the world.
func (w World) Validate() error {
	if w.Body.Radius <= 0 || w.Body.Height <= 0 {
		return oerror.New(game.ErrorInvalidConfigValue, "World.Body", w.Body, "radius and height must be positive")
	}
	for i, b := range w.Ground {
		if err := checkBounds(fmt.Sprintf("World.Ground[%d]", i), b.Min, b.Max); err != nil {
			return err
		}
		if _, err := ParseLayers(b.Layers); err != nil {
			return err
		}
	}

	ids := make(map[string]struct{})
	checkID := func(id string) error {
		if id == "" {
			return oerror.New(game.ErrorInvalidConfigValue, "zone id", id, "must not be empty")
		}
		if _, ok := ids[id]; ok {
			return oerror.New(game.ErrorInvalidConfigValue, "zone id", id, "must be unique")
		}
		ids[id] = struct{}{}
		return nil
	}
	for _, l := range w.Ladders {
		if err := checkID(l.ID); err != nil {
			return err
		}
		if err := checkBounds("ladder "+l.ID, l.Min, l.Max); err != nil {
			return err
		}
	}
	for _, j := range w.JumpBoards {
		if err := checkID(j.ID); err != nil {
			return err
		}
		if err := checkBounds("jump board "+j.ID, j.Min, j.Max); err != nil {
			return err
		}
	}
	return nil
}

func checkBounds(name string, min, max Vec3) error {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return oerror.New(game.ErrorInvalidConfigValue, name, []Vec3{min, max}, "min must not exceed max")
	}
	return nil
}

// Populate adds the ground geometry to dst.
func (w World) Populate(dst *world.World) error {
	for _, b := range w.Ground {
		mask, err := ParseLayers(b.Layers)
		if err != nil {
			return err
		}
		dst.AddSolid(b.BBox(), mask)
	}
	return nil
}

// ZoneTarget is acted on by every zone of the world.
type ZoneTarget interface {
	zone.Climber
	zone.Booster
}

// Zones creates the ladders and jump boards of the world, acting on target.
func (w World) Zones(target ZoneTarget) ([]zone.Zone, error) {
	zones := make([]zone.Zone, 0, len(w.Ladders)+len(w.JumpBoards))
	for _, l := range w.Ladders {
		z, err := zone.NewLadder(l.ID, Box{Min: l.Min, Max: l.Max}.BBox(), l.Up.Vec(), target)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	for _, j := range w.JumpBoards {
		z, err := zone.NewJumpBoard(j.ID, Box{Min: j.Min, Max: j.Max}.BBox(), j.Multiplier, target)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, nil
}

func (l Logging) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, oerror.New(game.ErrorInvalidConfigValue, "Logging.Level", l.Level, err.Error())
	}
	return level, nil
}

// NewLogger creates a logger writing to w in the configured format and at the configured level.
func (l Logging) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
