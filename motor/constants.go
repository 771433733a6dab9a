package motor

const (
	// RestingVerticalVelocity is the vertical velocity a grounded body is held at instead of zero, so
	// that it keeps pressing into the ground and the ground sensor keeps reporting contact.
	RestingVerticalVelocity = float32(-2.0)
	// SpeedDeadband is how far the measured horizontal speed may be from the target speed before it
	// is interpolated instead of snapped.
	SpeedDeadband = float32(0.1)
	// SpeedPrecision is the number of decimals an interpolated speed is rounded to.
	SpeedPrecision = 3

	DefaultMoveSpeed        = float32(8.0)
	DefaultSprintSpeed      = float32(16.0)
	DefaultSpeedChangeRate  = float32(10.0)
	DefaultJumpHeight       = float32(1.2)
	DefaultGravity          = float32(-15.0)
	DefaultTerminalVelocity = float32(53.0)
	DefaultJumpTimeout      = float32(0.1)
	DefaultFallTimeout      = float32(0.15)
	DefaultGroundedOffset   = float32(-0.14)
	DefaultGroundedRadius   = float32(0.5)
	DefaultFallThreshold    = float32(-20.0)
	DefaultExtraJumpCount   = 1
	DefaultClimbSpeed       = float32(4.0)
	// DefaultLadderPushback is how far the body is pushed away from a ladder when jumping off it.
	DefaultLadderPushback = float32(0.05)
)
