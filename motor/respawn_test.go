package motor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFallRespawn(t *testing.T) {
	conf := DefaultConfig()
	conf.RespawnPosition = mgl32.Vec3{1, 5, 1}
	h := newHarness(t, conf, false)
	for range 10 {
		h.step(&InputState{}, testDelta)
	}

	h.body.pos = mgl32.Vec3{0, -20.5, 0}
	if !h.motor.CheckFallRespawn() {
		t.Fatal("expected the character to respawn")
	}
	if h.body.pos != conf.RespawnPosition {
		t.Fatalf("expected position %v, got %v", conf.RespawnPosition, h.body.pos)
	}
	if vy := h.motor.State().VerticalVelocity; vy != 0 {
		t.Fatalf("expected vertical velocity to be zeroed, got %v", vy)
	}
	if len(h.backend.enabledLog) != 2 || h.backend.enabledLog[0] || !h.backend.enabledLog[1] {
		t.Fatalf("expected collision to be suspended then restored, got %v", h.backend.enabledLog)
	}
}

func TestNoRespawnAboveThreshold(t *testing.T) {
	h := newHarness(t, DefaultConfig(), false)
	h.body.pos = mgl32.Vec3{0, -19.5, 0}
	if h.motor.CheckFallRespawn() {
		t.Fatal("expected no respawn above the fall threshold")
	}
	if len(h.backend.enabledLog) != 0 {
		t.Fatalf("expected collision to be left alone, got %v", h.backend.enabledLog)
	}
}
