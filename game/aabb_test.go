package game

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func TestBBClipCollideStopsOnFloor(t *testing.T) {
	floor := cube.Box(-5, -1, -5, 5, 0, 5)
	body := BodyBox(mgl32.Vec3{0, 0.5, 0}, 0.5, 2)

	vel := BBClipCollide(floor, body, mgl32.Vec3{0, -2, 0}, false, nil)
	if !Float32ApproxEq(vel.Y(), -0.5) {
		t.Fatalf("expected fall clipped to -0.5, got %v", vel.Y())
	}
}

func TestBBClipCollideIgnoresDistantBox(t *testing.T) {
	wall := cube.Box(10, 0, -1, 11, 3, 1)
	body := BodyBox(mgl32.Vec3{0, 0, 0}, 0.5, 2)

	vel := BBClipCollide(wall, body, mgl32.Vec3{0, -1, 0}, false, nil)
	if vel.Y() != -1 {
		t.Fatalf("expected unclipped velocity, got %v", vel)
	}
}

func TestBBClipCollideWallOnX(t *testing.T) {
	wall := cube.Box(1, 0, -1, 2, 3, 1)
	body := BodyBox(mgl32.Vec3{0, 0, 0}, 0.5, 2)

	vel := BBClipCollide(wall, body, mgl32.Vec3{1, 0, 0}, false, nil)
	if !Float32ApproxEq(vel.X(), 0.5) {
		t.Fatalf("expected x movement clipped to 0.5, got %v", vel.X())
	}
}

func TestAABBVectorDistance(t *testing.T) {
	box := cube.Box(0, 0, 0, 1, 1, 1)
	if d := AABBVectorDistance(box, mgl32.Vec3{0.5, 0.5, 0.5}); d != 0 {
		t.Fatalf("expected 0 inside box, got %v", d)
	}
	if d := AABBVectorDistance(box, mgl32.Vec3{0.5, 3, 0.5}); !Float32ApproxEq(d, 2) {
		t.Fatalf("expected 2 above box, got %v", d)
	}
}
