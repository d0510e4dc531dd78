package simulation

import (
	"math/rand"

	"github.com/basselfa/pedsim-ros/common/utils/vector"
	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

// AgentCluster is a bulk spawn point: a center, a spawn distribution and a
// headcount. Dissolving it creates the actual agents, all sharing the
// cluster's waypoint cycle.
type AgentCluster struct {
	id       int
	position vector.Vector2
	count    int

	// distribution is the width/height of the uniform spawn box centered
	// on the cluster position.
	distribution vector.Vector2

	waypoints    []navigation.Waypoint
	createGroups bool
}

func NewAgentCluster(idService *IDService, position vector.Vector2, count int, distribution vector.Vector2) *AgentCluster {
	return &AgentCluster{
		id:           idService.NextID(),
		position:     position,
		count:        count,
		distribution: distribution,
		waypoints:    make([]navigation.Waypoint, 0),
	}
}

func (cluster *AgentCluster) ID() int {
	return cluster.id
}

func (cluster *AgentCluster) Count() int {
	return cluster.count
}

func (cluster *AgentCluster) AddWaypoint(waypoint navigation.Waypoint) {
	cluster.waypoints = append(cluster.waypoints, waypoint)
}

func (cluster *AgentCluster) Waypoints() []navigation.Waypoint {
	return cluster.waypoints
}

func (cluster *AgentCluster) SetCreateGroups(createGroups bool) {
	cluster.createGroups = createGroups
}

// Dissolve spawns the cluster's agents into the simulation, each at a
// position drawn uniformly from the spawn box, and returns their handles.
// With group creation enabled the agents share a group and are subject to
// the group forces.
func (cluster *AgentCluster) Dissolve(sim *Simulation) []*AgentHandle {
	groupID := 0
	if cluster.createGroups {
		groupID = cluster.id
	}

	width, height := cluster.distribution.Get()

	handles := make([]*AgentHandle, 0, cluster.count)
	for i := 0; i < cluster.count; i++ {
		x, y := cluster.position.Get()
		if width != 0 {
			x += (rand.Float64() - 0.5) * width
		}
		if height != 0 {
			y += (rand.Float64() - 0.5) * height
		}

		handle := sim.NewEntityAgent(vector.MakeVector2(x, y), cluster.waypoints, groupID)
		handles = append(handles, handle)
	}

	return handles
}
