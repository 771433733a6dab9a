package camera

import (
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/motor"
	"github.com/oomph-ac/strider/oerror"
)

const (
	// LookThreshold is the squared magnitude look input must reach before the camera reacts to it.
	LookThreshold = 0.01

	DefaultRotationSpeed = 1.0
	DefaultTopClamp      = 90.0
	DefaultBottomClamp   = -90.0
)

// Rotator is rotated around the world up axis when the camera yaws. It is usually the body of the
// character.
type Rotator interface {
	Rotate(yaw float32)
}

// Config holds the tunable parameters of a Camera.
type Config struct {
	RotationSpeed float32
	// TopClamp and BottomClamp bound the pitch, in degrees.
	TopClamp    float32
	BottomClamp float32
}

// DefaultConfig returns the default camera configuration.
func DefaultConfig() Config {
	return Config{
		RotationSpeed: DefaultRotationSpeed,
		TopClamp:      DefaultTopClamp,
		BottomClamp:   DefaultBottomClamp,
	}
}

// Validate returns an *oerror.Error if the config cannot be used by a Camera.
func (c Config) Validate() error {
	if c.RotationSpeed < 0 {
		return oerror.New(game.ErrorInvalidConfigValue, "RotationSpeed", c.RotationSpeed, "must not be negative")
	}
	if c.BottomClamp > c.TopClamp {
		return oerror.New(game.ErrorInvalidClampRange, c.BottomClamp, c.TopClamp)
	}
	return nil
}

// Camera turns look input into a clamped pitch and an unclamped yaw of its target. It is updated
// after the motor every frame and owns its pitch exclusively.
type Camera struct {
	conf   Config
	target Rotator

	pitch, lastPitch float32
	yaw              float32
}

// New creates a Camera that yaws target. An *oerror.Error is returned if target is nil or the config
// is invalid.
func New(conf Config, target Rotator) (*Camera, error) {
	if target == nil {
		return nil, oerror.New(game.ErrorMissingCameraTarget)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &Camera{conf: conf, target: target}, nil
}

// Update applies the look input of a frame. Pointer input is already scaled to the frame and is used
// as is, while input from other devices is a rate that is scaled by dt. It returns false if the look
// input was too small to be applied.
func (c *Camera) Update(in *motor.InputState, dt float32) bool {
	if in == nil || in.Look.LenSqr() < LookThreshold {
		return false
	}

	deltaScale := dt
	if in.Device == motor.DevicePointer {
		deltaScale = 1
	}

	c.lastPitch = c.pitch
	c.pitch = game.ClampAngle(c.pitch+in.Look.Y()*c.conf.RotationSpeed*deltaScale, c.conf.BottomClamp, c.conf.TopClamp)

	c.yaw = in.Look.X() * c.conf.RotationSpeed * deltaScale
	c.target.Rotate(c.yaw)
	return true
}

// Pitch returns the current pitch in degrees.
func (c *Camera) Pitch() float32 {
	return c.pitch
}

// PitchDelta returns the change in pitch made by the last applied Update.
func (c *Camera) PitchDelta() float32 {
	return c.pitch - c.lastPitch
}

// Yaw returns the yaw applied to the target by the last applied Update.
func (c *Camera) Yaw() float32 {
	return c.yaw
}

// Config returns the config the Camera was created with.
func (c *Camera) Config() Config {
	return c.conf
}
