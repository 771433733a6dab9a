package strider

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/camera"
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/motor"
	"github.com/oomph-ac/strider/oerror"
	"github.com/oomph-ac/strider/settings"
	"github.com/oomph-ac/strider/world"
)

// Controller runs the per-frame pipeline of a first-person character: the motor step, then the
// camera, then the fall-respawn guard.
type Controller struct {
	motor  *motor.Motor
	camera *camera.Camera
	log    *slog.Logger

	// world and body are only set when the controller was built from settings.
	world *world.World
	body  *world.Body

	frame uint64
}

// Frame is the outcome of a single Update.
type Frame struct {
	motor.StepResult
	Index uint64

	// Position is the position of the body after the frame, including any respawn.
	Position  mgl32.Vec3
	Pitch     float32
	Respawned bool
}

// New returns a Controller driving the motor and camera passed. A nil logger discards all logs.
func New(m *motor.Motor, cam *camera.Camera, log *slog.Logger) (*Controller, error) {
	if m == nil {
		return nil, oerror.New(game.ErrorMissingMotor)
	}
	if cam == nil {
		return nil, oerror.New(game.ErrorMissingCamera)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{motor: m, camera: cam, log: log}, nil
}

// NewFromSettings builds an in-memory world from s, spawns a body in it and returns a Controller
// for that body.
func NewFromSettings(s settings.Settings, log *slog.Logger) (*Controller, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	w := world.New(log)
	if err := s.World.Populate(w); err != nil {
		return nil, err
	}
	body := w.NewBody(s.World.Spawn.Vec(), s.World.Body.Radius, s.World.Body.Height)

	conf, err := s.MotorConfig()
	if err != nil {
		return nil, err
	}
	m, err := motor.New(conf, motor.Providers{Body: body, Backend: body, World: w}, log)
	if err != nil {
		return nil, err
	}
	cam, err := camera.New(s.CameraConfig(), body)
	if err != nil {
		return nil, err
	}

	zones, err := s.World.Zones(m)
	if err != nil {
		return nil, err
	}
	for _, z := range zones {
		w.AddZone(z)
	}

	c, err := New(m, cam, log)
	if err != nil {
		return nil, err
	}
	c.world, c.body = w, body
	log.Debug("controller created", "world", w.ID(), "spawn", body.Position(), "zones", len(zones))
	return c, nil
}

// Update runs a single frame with the input passed.
func (c *Controller) Update(in *motor.InputState, dt float32) Frame {
	if c.body != nil {
		c.body.SetDelta(dt)
	}

	result := c.motor.Step(in, dt)
	c.camera.Update(in, dt)
	respawned := c.motor.CheckFallRespawn()

	c.frame++
	f := Frame{
		StepResult: result,
		Index:      c.frame,
		Pitch:      c.camera.Pitch(),
		Respawned:  respawned,
	}
	if c.body != nil {
		f.Position = c.body.Position()
	}
	return f
}

// Motor returns the motor of the controller.
func (c *Controller) Motor() *motor.Motor {
	return c.motor
}

// Camera returns the camera of the controller.
func (c *Controller) Camera() *camera.Camera {
	return c.camera
}

// World returns the world the controller was built in, or nil if it was not built from settings.
func (c *Controller) World() *world.World {
	return c.world
}

// Body returns the body the controller moves, or nil if it was not built from settings.
func (c *Controller) Body() *world.Body {
	return c.body
}
