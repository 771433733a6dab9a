package settings

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a position or direction in the settings file.
type Vec3 struct {
	X, Y, Z float32
}

// Vec returns the vector as an mgl32.Vec3.
func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Box is a piece of solid geometry on the named layers.
type Box struct {
	Min, Max Vec3
	Layers   []string
}

// BBox returns the box as a cube.BBox.
func (b Box) BBox() cube.BBox {
	return cube.Box(b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

// LadderZone is a ladder that is climbed along Up.
type LadderZone struct {
	ID       string
	Min, Max Vec3
	Up       Vec3
}

// JumpBoardZone is a jump board that multiplies jumps made inside it.
type JumpBoardZone struct {
	ID         string
	Min, Max   Vec3
	Multiplier float32
}

// World describes the geometry and zones a character is simulated in.
type World struct {
	// Spawn is where the character starts. The motor's RespawnPosition is used after a fall.
	Spawn Vec3
	Body  struct {
		Radius float32
		Height float32
	}
	Ground     []Box
	Ladders    []LadderZone
	JumpBoards []JumpBoardZone
}
