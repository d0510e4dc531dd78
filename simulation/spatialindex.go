package simulation

import (
	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"

	"github.com/basselfa/pedsim-ros/common/utils/vector"
)

type spatialEntry struct {
	entityID ecs.EntityID
	position vector.Vector2
	rect     rtreego.Rect
}

func (entry *spatialEntry) Bounds() rtreego.Rect {
	return entry.rect
}

// spatialIndex answers "who is near this point" for the social force.
// It is rebuilt from scratch after each physics pass.
type spatialIndex struct {
	tree *rtreego.Rtree
}

func newSpatialIndex() *spatialIndex {
	return &spatialIndex{
		tree: rtreego.NewTree(2, 25, 50),
	}
}

func (index *spatialIndex) rebuild(sim *Simulation) {
	spatials := make([]rtreego.Spatial, 0)

	for _, entityresult := range sim.physicalView.Get() {
		physicalAspect := sim.CastPhysicalBody(entityresult.Components[sim.physicalBodyComponent])
		position := physicalAspect.GetPosition()
		radius := physicalAspect.GetRadius()

		x, y := position.Get()
		rect, err := rtreego.NewRect([]float64{x - radius, y - radius}, []float64{2 * radius, 2 * radius})
		if err != nil {
			continue
		}

		spatials = append(spatials, &spatialEntry{
			entityID: entityresult.Entity.GetID(),
			position: position,
			rect:     rect,
		})
	}

	index.tree = rtreego.NewTree(2, 25, 50, spatials...)
}

func (index *spatialIndex) neighbors(position vector.Vector2, radius float64) []*spatialEntry {
	x, y := position.Get()
	rect, err := rtreego.NewRect([]float64{x - radius, y - radius}, []float64{2 * radius, 2 * radius})
	if err != nil {
		return nil
	}

	matches := index.tree.SearchIntersect(rect)

	entries := make([]*spatialEntry, 0, len(matches))
	for _, match := range matches {
		entries = append(entries, match.(*spatialEntry))
	}
	return entries
}
