package strider

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/camera"
	"github.com/oomph-ac/strider/motor"
	"github.com/oomph-ac/strider/settings"
)

const testDelta = float32(0.02)

func newController(t *testing.T, s settings.Settings) *Controller {
	t.Helper()
	c, err := NewFromSettings(s, nil)
	if err != nil {
		t.Fatalf("failed to create controller: %v", err)
	}
	return c
}

func TestNewRequiresMotorAndCamera(t *testing.T) {
	if _, err := New(nil, nil, nil); err == nil {
		t.Fatal("expected a missing motor to be rejected")
	}
	c := newController(t, settings.Default())
	if _, err := New(c.Motor(), nil, nil); err == nil {
		t.Fatal("expected a missing camera to be rejected")
	}
	if _, err := camera.New(camera.DefaultConfig(), nil); err == nil {
		t.Fatal("expected a camera without a target to be rejected")
	}
}

func TestNewFromSettingsRejectsInvalid(t *testing.T) {
	s := settings.Default()
	s.Motor.SprintSpeed = 1
	if _, err := NewFromSettings(s, nil); err == nil {
		t.Fatal("expected invalid settings to be rejected")
	}
}

func TestStandingStill(t *testing.T) {
	c := newController(t, settings.Default())
	var f Frame
	for range 50 {
		f = c.Update(&motor.InputState{}, testDelta)
		if f.Mode != motor.ModeGrounded {
			t.Fatalf("expected to stay grounded, got %v on frame %d", f.Mode, f.Index)
		}
	}
	if f.Index != 50 {
		t.Fatalf("expected frame 50, got %d", f.Index)
	}
	if f.Position.Y() != 0 {
		t.Fatalf("expected to rest on the floor, got %v", f.Position)
	}
}

func TestWalkAndLookAround(t *testing.T) {
	c := newController(t, settings.Default())
	for range 100 {
		c.Update(&motor.InputState{Move: mgl32.Vec2{0, 1}}, testDelta)
	}
	if z := c.Body().Position().Z(); z <= 5 {
		t.Fatalf("expected to walk forward, got z=%v", z)
	}

	f := c.Update(&motor.InputState{Look: mgl32.Vec2{90, 30}, Device: motor.DevicePointer}, testDelta)
	if f.Pitch != 30 || c.Body().Yaw() != 90 {
		t.Fatalf("expected pitch 30 and yaw 90, got %v and %v", f.Pitch, c.Body().Yaw())
	}
	if !c.Body().Forward().ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("expected to face +X, got %v", c.Body().Forward())
	}
}

func TestJumpsPerExcursion(t *testing.T) {
	const dt = float32(1) / 60
	for _, extra := range []int{0, 1, 3} {
		s := settings.Default()
		s.Motor.ExtraJumpCount = extra
		c := newController(t, s)
		for range 60 {
			c.Update(&motor.InputState{}, dt)
		}

		f := c.Update(&motor.InputState{Jump: true}, dt)
		if f.Jump != motor.JumpGround {
			t.Fatalf("extra=%d: expected a ground jump, got %v", extra, f.Jump)
		}
		accepted, airborne := 1, false
		for range 1000 {
			f = c.Update(&motor.InputState{Jump: f.Mode == motor.ModeAirborne}, dt)
			if f.Jump != motor.JumpNone {
				accepted++
			}
			if f.Mode == motor.ModeAirborne {
				airborne = true
			} else if airborne {
				break
			}
		}
		if !airborne || f.Mode != motor.ModeGrounded {
			t.Fatalf("extra=%d: expected to land again, got %v", extra, f.Mode)
		}
		if accepted != extra+1 {
			t.Fatalf("extra=%d: expected %d jumps before landing, got %d", extra, extra+1, accepted)
		}
	}
}

func TestJumpBoardRoundTrip(t *testing.T) {
	c := newController(t, settings.Default())

	entered := false
	for range 300 {
		c.Update(&motor.InputState{Move: mgl32.Vec2{-1, 0}}, testDelta)
		if c.Motor().JumpMultiplier() == 5 {
			entered = true
			break
		}
	}
	if !entered {
		t.Fatalf("expected to walk onto the jump board, stopped at %v", c.Body().Position())
	}

	f := c.Update(&motor.InputState{Jump: true}, testDelta)
	if f.Jump != motor.JumpGround || f.VerticalVelocity < 10 {
		t.Fatalf("expected a boosted ground jump, got %v with vy %v", f.Jump, f.VerticalVelocity)
	}

	left := false
	for range 50 {
		c.Update(&motor.InputState{}, testDelta)
		if c.Motor().JumpMultiplier() == 1 {
			left = true
			break
		}
	}
	if !left {
		t.Fatalf("expected the multiplier to return to exactly 1 after leaving the board, got %v", c.Motor().JumpMultiplier())
	}
}

func TestClimbLadder(t *testing.T) {
	c := newController(t, settings.Default())

	for range 300 {
		c.Update(&motor.InputState{Move: mgl32.Vec2{1, 0}}, testDelta)
		if c.Motor().Mode() == motor.ModeClimbing {
			break
		}
	}
	if c.Motor().Mode() != motor.ModeClimbing {
		t.Fatalf("expected to reach the ladder, stopped at %v", c.Body().Position())
	}

	start := c.Body().Position().Y()
	var f Frame
	for range 20 {
		f = c.Update(&motor.InputState{Move: mgl32.Vec2{0, 1}}, testDelta)
		if f.VerticalVelocity != 0 || f.Mode != motor.ModeClimbing {
			t.Fatalf("expected to climb without gravity, got %v with vy %v", f.Mode, f.VerticalVelocity)
		}
	}
	if climbed := f.Position.Y() - start; climbed < 1.5 {
		t.Fatalf("expected to climb at least 1.5, climbed %v", climbed)
	}

	f = c.Update(&motor.InputState{Jump: true}, testDelta)
	if f.Jump != motor.JumpLadder || f.Mode != motor.ModeAirborne {
		t.Fatalf("expected to jump off the ladder, got %v in %v", f.Jump, f.Mode)
	}
}

func TestFallRespawn(t *testing.T) {
	s := settings.Default()
	s.World.Ground[0].Min = settings.Vec3{X: -1, Y: -1, Z: -1}
	s.World.Ground[0].Max = settings.Vec3{X: 1, Y: 0, Z: 1}
	s.World.Ladders, s.World.JumpBoards = nil, nil
	s.Motor.RespawnPosition = settings.Vec3{Y: 0.5}
	c := newController(t, s)

	for range 1000 {
		f := c.Update(&motor.InputState{Move: mgl32.Vec2{0, 1}}, testDelta)
		if !f.Respawned {
			continue
		}
		if f.Position != (mgl32.Vec3{0, 0.5, 0}) {
			t.Fatalf("expected to respawn at the respawn position, got %v", f.Position)
		}
		if vy := c.Motor().State().VerticalVelocity; vy != 0 {
			t.Fatalf("expected vertical velocity to be zeroed, got %v", vy)
		}
		if !c.Body().Enabled() {
			t.Fatal("expected collision to be restored after the respawn")
		}
		return
	}
	t.Fatalf("expected to fall off the floor and respawn, ended at %v", c.Body().Position())
}
