package game

const (
	ErrorMissingTransform      = "motor: a body transform is required"
	ErrorMissingBackend        = "motor: a movement backend is required"
	ErrorMissingWorld          = "motor: a world query is required for ground checks"
	ErrorMissingCameraTarget   = "camera: a rotation target is required"
	ErrorMissingMotor          = "controller: a motor is required"
	ErrorMissingCamera         = "controller: a camera is required"
	ErrorMissingZoneTarget     = "zone %q: a motor to act on is required"
	ErrorInvalidConfigValue    = "invalid %s: %v (%s)"
	ErrorInvalidClampRange     = "invalid clamp range: bottom %v is above top %v"
	ErrorJumpCountOutOfBounds  = "jump count %d is out of bounds [0, %d]"
	ErrorInternalNegativeDelta = "frame delta must not be negative, got %v"
)
