package navigation

import (
	"github.com/basselfa/pedsim-ros/common/utils/vector"
)

// Waypoint is a named destination consumed by the movement integrator.
type Waypoint interface {
	Name() string
	Position() vector.Vector2
}

// QueueWaypoint is implemented by waypoints backed by a waiting queue.
// A planner resolves the capability once, when the destination is assigned.
type QueueWaypoint interface {
	Waypoint
	AsQueue() Queue
}

// AreaWaypoint is a static destination considered reached when the agent
// comes within its radius.
type AreaWaypoint struct {
	name     string
	position vector.Vector2
	radius   float64
}

func NewAreaWaypoint(name string, position vector.Vector2, radius float64) *AreaWaypoint {
	return &AreaWaypoint{
		name:     name,
		position: position,
		radius:   radius,
	}
}

func (waypoint *AreaWaypoint) Name() string {
	return waypoint.name
}

func (waypoint *AreaWaypoint) Position() vector.Vector2 {
	return waypoint.position
}

func (waypoint *AreaWaypoint) Radius() float64 {
	return waypoint.radius
}

func (waypoint *AreaWaypoint) String() string {
	return "AreaWaypoint " + waypoint.name + " @" + waypoint.position.String()
}

// QueueingWaypoint is a destination whose position is driven entirely by a
// queueing planner, one exclusively owned instance per planner.
type QueueingWaypoint struct {
	name     string
	position vector.Vector2
}

func NewQueueingWaypoint(name string, position vector.Vector2) *QueueingWaypoint {
	return &QueueingWaypoint{
		name:     name,
		position: position,
	}
}

func (waypoint *QueueingWaypoint) Name() string {
	return waypoint.name
}

func (waypoint *QueueingWaypoint) Position() vector.Vector2 {
	return waypoint.position
}

func (waypoint *QueueingWaypoint) SetPosition(position vector.Vector2) {
	waypoint.position = position
}

func (waypoint *QueueingWaypoint) String() string {
	return "QueueingWaypoint " + waypoint.name + " @" + waypoint.position.String()
}
