package world

import (
	"log/slog"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/motor"
	"github.com/oomph-ac/strider/zone"
	"github.com/sasha-s/go-deadlock"
)

var (
	currentWorldId uint64
	worldIdMu      deadlock.Mutex
)

// Solid is a piece of static collision geometry on one or more layers.
type Solid struct {
	Box    cube.BBox
	Layers motor.LayerMask
}

// World is an in-memory collection of solids and trigger zones. It answers the physics queries of a
// motor and moves bodies through its geometry.
type World struct {
	id     uint64
	solids []Solid
	zones  *orderedmap.OrderedMap[string, zone.Zone]

	logger *slog.Logger

	deadlock.RWMutex
}

// New creates an empty world. A nil logger disables logging.
func New(logger *slog.Logger) *World {
	worldIdMu.Lock()
	currentWorldId++
	id := currentWorldId
	worldIdMu.Unlock()

	return &World{
		id:     id,
		zones:  orderedmap.NewOrderedMap[string, zone.Zone](),
		logger: logger,
	}
}

// ID returns the unique id of the world.
func (w *World) ID() uint64 {
	return w.id
}

// AddSolid adds collision geometry to the world.
func (w *World) AddSolid(box cube.BBox, layers motor.LayerMask) {
	w.Lock()
	defer w.Unlock()
	w.solids = append(w.solids, Solid{Box: box, Layers: layers})
}

// Solids returns a copy of all solids in the world.
func (w *World) Solids() []Solid {
	w.RLock()
	defer w.RUnlock()
	return append([]Solid(nil), w.solids...)
}

// AddZone adds a trigger zone to the world, replacing any zone with the same id.
func (w *World) AddZone(z zone.Zone) {
	w.Lock()
	_, replaced := w.zones.Get(z.ID())
	w.zones.Set(z.ID(), z)
	w.Unlock()

	if replaced && w.logger != nil {
		w.logger.Warn("replaced zone with duplicate id", "world", w.id, "zone", z.ID())
	}
}

// RemoveZone removes the zone with the id passed. Bodies that were inside it do not receive an exit.
func (w *World) RemoveZone(id string) bool {
	w.Lock()
	defer w.Unlock()
	return w.zones.Delete(id)
}

// Zones returns all zones in the order they were added.
func (w *World) Zones() []zone.Zone {
	w.RLock()
	defer w.RUnlock()

	zones := make([]zone.Zone, 0, w.zones.Len())
	for _, id := range w.zones.Keys() {
		z, _ := w.zones.Get(id)
		zones = append(zones, z)
	}
	return zones
}

// SphereOverlap returns true if a sphere overlaps any solid on the layers of mask. Unless
// ignoreTriggers is set, zones are tested as well when mask includes motor.LayerTrigger.
func (w *World) SphereOverlap(center mgl32.Vec3, radius float32, mask motor.LayerMask, ignoreTriggers bool) bool {
	w.RLock()
	defer w.RUnlock()

	for _, s := range w.solids {
		if s.Layers.Has(mask) && game.AABBVectorDistance(s.Box, center) <= radius {
			return true
		}
	}
	if ignoreTriggers || !mask.Has(motor.LayerTrigger) {
		return false
	}
	for _, id := range w.zones.Keys() {
		z, _ := w.zones.Get(id)
		if game.AABBVectorDistance(z.Bounds(), center) <= radius {
			return true
		}
	}
	return false
}

// NearbyBBoxes returns the boxes of all solids intersecting bb.
func (w *World) NearbyBBoxes(bb cube.BBox) []cube.BBox {
	w.RLock()
	defer w.RUnlock()

	var list []cube.BBox
	for _, s := range w.solids {
		if s.Box.IntersectsWith(bb) {
			list = append(list, s.Box)
		}
	}
	return list
}

// zonesIntersecting returns the ids and zones that intersect bb.
func (w *World) zonesIntersecting(bb cube.BBox) *orderedmap.OrderedMap[string, zone.Zone] {
	w.RLock()
	defer w.RUnlock()

	found := orderedmap.NewOrderedMap[string, zone.Zone]()
	for _, id := range w.zones.Keys() {
		z, _ := w.zones.Get(id)
		if z.Bounds().IntersectsWith(bb) {
			found.Set(id, z)
		}
	}
	return found
}
