package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRound32(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{in: 1.23456, want: 1.235},
		{in: 7.9994, want: 7.999},
		{in: -2.0004, want: -2},
		{in: 8, want: 8},
	}
	for _, tt := range tests {
		if got := Round32(tt.in, 3); !Float32ApproxEq(got, tt.want) {
			t.Errorf("Round32(%v, 3) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerp32ClampsFactor(t *testing.T) {
	if got := Lerp32(0, 8, 0.5); got != 4 {
		t.Fatalf("Lerp32(0, 8, 0.5) = %v, want 4", got)
	}
	if got := Lerp32(0, 8, 3); got != 8 {
		t.Fatalf("Lerp32 with t > 1 = %v, want 8", got)
	}
	if got := Lerp32(2, 8, -1); got != 2 {
		t.Fatalf("Lerp32 with t < 0 = %v, want 2", got)
	}
}

func TestClampAngle(t *testing.T) {
	tests := []struct {
		name          string
		angle, lo, hi float32
		want          float32
	}{
		{name: "inside", angle: 45, lo: -90, hi: 90, want: 45},
		{name: "above top", angle: 120, lo: -90, hi: 90, want: 90},
		{name: "below bottom", angle: -100, lo: -90, hi: 90, want: -90},
		{name: "wrapped overshoot", angle: 370, lo: -90, hi: 90, want: 10},
		{name: "wrapped undershoot", angle: -380, lo: -90, hi: 90, want: -20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampAngle(tt.angle, tt.lo, tt.hi); !Float32ApproxEq(got, tt.want) {
				t.Fatalf("ClampAngle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := NormalizeOrZero(mgl32.Vec3{}); got != (mgl32.Vec3{}) {
		t.Fatalf("expected zero vector, got %v", got)
	}
	got := NormalizeOrZero(mgl32.Vec3{3, 0, 4})
	if !Float32ApproxEq(got.Len(), 1) || !Float32ApproxEq(got.X(), 0.6) {
		t.Fatalf("unexpected normalised vector %v", got)
	}
}

func TestVec3HzLenIgnoresVertical(t *testing.T) {
	if got := Vec3HzLen(mgl32.Vec3{3, 100, 4}); !Float32ApproxEq(got, 5) {
		t.Fatalf("Vec3HzLen = %v, want 5", got)
	}
}
