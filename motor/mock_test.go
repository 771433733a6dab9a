package motor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type mockBody struct {
	pos mgl32.Vec3
}

func (b *mockBody) Position() mgl32.Vec3 {
	return b.pos
}

func (b *mockBody) SetPosition(pos mgl32.Vec3) {
	b.pos = pos
}

func (b *mockBody) Forward() mgl32.Vec3 {
	return mgl32.Vec3{0, 0, 1}
}

func (b *mockBody) Right() mgl32.Vec3 {
	return mgl32.Vec3{1, 0, 0}
}

// mockBackend applies every displacement to the body and reports the horizontal part of the last
// displacement divided by dt as its velocity.
type mockBackend struct {
	body    *mockBody
	dt      float32
	hzVel   mgl32.Vec3
	enabled bool

	moves      []mgl32.Vec3
	enabledLog []bool
	onMove     func(disp mgl32.Vec3)
}

func (b *mockBackend) Move(disp mgl32.Vec3) {
	b.moves = append(b.moves, disp)
	b.body.pos = b.body.pos.Add(disp)
	if b.dt > 0 {
		b.hzVel = mgl32.Vec3{disp.X() / b.dt, 0, disp.Z() / b.dt}
	}
	if b.onMove != nil {
		b.onMove(disp)
	}
}

func (b *mockBackend) HorizontalVelocity() mgl32.Vec3 {
	return b.hzVel
}

func (b *mockBackend) Enabled() bool {
	return b.enabled
}

func (b *mockBackend) SetEnabled(enabled bool) {
	b.enabled = enabled
	b.enabledLog = append(b.enabledLog, enabled)
}

type mockWorld struct {
	grounded bool

	lastCenter mgl32.Vec3
	lastRadius float32
	lastMask   LayerMask
	lastIgnore bool
}

func (w *mockWorld) SphereOverlap(center mgl32.Vec3, radius float32, mask LayerMask, ignoreTriggers bool) bool {
	w.lastCenter, w.lastRadius, w.lastMask, w.lastIgnore = center, radius, mask, ignoreTriggers
	return w.grounded
}

type harness struct {
	motor   *Motor
	body    *mockBody
	backend *mockBackend
	world   *mockWorld
}

func newHarness(t *testing.T, conf Config, grounded bool) *harness {
	t.Helper()
	body := &mockBody{}
	backend := &mockBackend{body: body, enabled: true}
	world := &mockWorld{grounded: grounded}

	m, err := New(conf, Providers{Body: body, Backend: backend, World: world}, nil)
	if err != nil {
		t.Fatalf("failed to create motor: %v", err)
	}
	return &harness{motor: m, body: body, backend: backend, world: world}
}

func (h *harness) step(in *InputState, dt float32) StepResult {
	h.backend.dt = dt
	return h.motor.Step(in, dt)
}
