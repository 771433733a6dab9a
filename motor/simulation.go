package motor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/assert"
	"github.com/oomph-ac/strider/game"
)

// Step runs a single frame of movement: the ground check, the vertical state machine and the
// horizontal speed blend, and submits the resulting displacement to the backend. The jump flag of in
// is cleared if a jump is accepted.
func (m *Motor) Step(in *InputState, dt float32) StepResult {
	assert.IsTrue(dt >= 0, game.ErrorInternalNegativeDelta, dt)
	if in == nil {
		in = &InputState{}
	}

	grounded := m.groundedCheck()
	hzVel := m.backend.HorizontalVelocity()
	forward, right := m.body.Forward(), m.body.Right()

	m.mu.Lock()
	s := &m.state
	oldMode := s.Mode
	s.Grounded = grounded

	var (
		jump     JumpKind
		pushback mgl32.Vec3
	)
	if s.Mode == ModeClimbing {
		jump, pushback = m.climb(in, forward)
	} else {
		if grounded {
			s.Mode = ModeGrounded
		} else {
			s.Mode = ModeAirborne
		}
		jump = m.jumpAndGravity(in, dt)
	}

	displacement := m.move(in, dt, hzVel, forward, right).Add(pushback)
	result := StepResult{
		Mode:             s.Mode,
		Grounded:         grounded,
		VerticalVelocity: s.VerticalVelocity,
		Speed:            s.Speed,
		JumpCount:        s.JumpCount,
		Jump:             jump,
		Displacement:     displacement,
	}
	m.mu.Unlock()

	if oldMode != result.Mode {
		m.log.Debug("movement mode changed", "from", oldMode, "to", result.Mode)
	}
	if jump != JumpNone {
		m.log.Debug("jump accepted", "kind", jump, "vy", result.VerticalVelocity, "count", result.JumpCount)
	}
	m.backend.Move(displacement)
	return result
}

// groundedCheck tests a sphere at the feet of the body against the ground layers, ignoring
// trigger volumes.
func (m *Motor) groundedCheck() bool {
	pos := m.body.Position()
	center := mgl32.Vec3{pos.X(), pos.Y() - m.conf.GroundedOffset, pos.Z()}
	return m.world.SphereOverlap(center, m.conf.GroundedRadius, m.conf.GroundLayers, true)
}

// jumpAndGravity runs the grounded/airborne branch of the state machine. m.mu must be held.
func (m *Motor) jumpAndGravity(in *InputState, dt float32) JumpKind {
	s := &m.state
	jump := JumpNone

	if s.Grounded {
		s.FallTimeoutRemaining = m.conf.FallTimeout
		if s.VerticalVelocity < 0 {
			s.VerticalVelocity = RestingVerticalVelocity
		}
		s.JumpCount = 0

		if in.Jump && s.JumpTimeoutRemaining <= 0 {
			s.VerticalVelocity = m.jumpVelocity(s.JumpMultiplier)
			s.JumpCount++
			in.Jump = false
			jump = JumpGround
		}
		if s.JumpTimeoutRemaining >= 0 {
			s.JumpTimeoutRemaining -= dt
		}
	} else {
		// Reset so that a jump buffered just before leaving the ground cannot fire until landing.
		s.JumpTimeoutRemaining = m.conf.JumpTimeout
		if s.FallTimeoutRemaining >= 0 {
			s.FallTimeoutRemaining -= dt
		}

		if in.Jump && s.JumpCount < m.conf.ExtraJumpCount {
			s.VerticalVelocity = m.jumpVelocity(s.JumpMultiplier)
			s.JumpCount++
			in.Jump = false
			jump = JumpAir
		}
	}
	assert.IsTrue(s.JumpCount <= m.conf.ExtraJumpCount+1, game.ErrorJumpCountOutOfBounds, s.JumpCount, m.conf.ExtraJumpCount+1)

	if s.VerticalVelocity < m.conf.TerminalVelocity {
		s.VerticalVelocity += m.conf.Gravity * dt
	}
	return jump
}

// climb runs the climbing branch of the state machine. Gravity is suspended; a jump detaches the
// body from the ladder and returns a small push away from it. m.mu must be held.
func (m *Motor) climb(in *InputState, forward mgl32.Vec3) (JumpKind, mgl32.Vec3) {
	s := &m.state
	s.VerticalVelocity = 0
	if !in.Jump {
		return JumpNone, mgl32.Vec3{}
	}

	s.Mode = ModeAirborne
	s.LadderDirection = mgl32.Vec3{}
	// The jump multiplier is deliberately not applied to ladder jumps.
	s.VerticalVelocity = m.jumpVelocity(1)
	s.JumpCount = 1
	in.Jump = false
	return JumpLadder, game.NormalizeOrZero(forward).Mul(-m.conf.LadderPushback)
}

// move computes the displacement for the frame and updates the horizontal speed. m.mu must be held.
func (m *Motor) move(in *InputState, dt float32, hzVel, forward, right mgl32.Vec3) mgl32.Vec3 {
	s := &m.state
	if s.Mode == ModeClimbing {
		return s.LadderDirection.Mul(in.Move.Y() * m.conf.ClimbSpeed * dt)
	}

	noInput := in.Move == (mgl32.Vec2{})
	targetSpeed := m.conf.MoveSpeed
	if in.Sprint {
		targetSpeed = m.conf.SprintSpeed
	}
	if noInput {
		targetSpeed = 0
	}

	currentSpeed := game.Vec3HzLen(hzVel)
	inputMagnitude := float32(1)
	if in.AnalogMovement {
		inputMagnitude = in.Move.Len()
	}

	if currentSpeed < targetSpeed-SpeedDeadband || currentSpeed > targetSpeed+SpeedDeadband {
		s.Speed = game.Lerp32(currentSpeed, targetSpeed*inputMagnitude, dt*m.conf.SpeedChangeRate)
		s.Speed = game.Round32(s.Speed, SpeedPrecision)
	} else {
		s.Speed = targetSpeed
	}
	s.Speed = math32.Min(s.Speed, m.conf.SprintSpeed)

	var direction mgl32.Vec3
	if !noInput {
		direction = right.Mul(in.Move.X()).Add(forward.Mul(in.Move.Y()))
	}
	direction = game.NormalizeOrZero(direction)

	return direction.Mul(s.Speed * dt).Add(mgl32.Vec3{0, s.VerticalVelocity * dt, 0})
}

func (m *Motor) jumpVelocity(multiplier float32) float32 {
	return math32.Sqrt(m.conf.JumpHeight * multiplier * -2 * m.conf.Gravity)
}
