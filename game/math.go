package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision. Ties are rounded to the even neighbour, so that a
// value sitting exactly between two steps does not drift in one direction over many frames.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return float32(math.RoundToEven(float64(val*pwr))) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Lerp32 linearly interpolates between a and b. t is clamped to [0, 1].
func Lerp32(a, b, t float32) float32 {
	return a + (b-a)*ClampFloat(t, 0, 1)
}

// ClampAngle brings an angle that overshot a full turn back by 360 degrees once, then clamps it to
// the range passed.
func ClampAngle(angle, min, max float32) float32 {
	if angle < -360 {
		angle += 360
	}
	if angle > 360 {
		angle -= 360
	}
	return ClampFloat(angle, min, max)
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec3HzLen returns the length of the vector on the X/Z plane.
func Vec3HzLen(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec3))
}

// NormalizeOrZero returns the unit vector of v, or a zero vector if v is too short to have a
// meaningful direction.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= 1e-5 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
