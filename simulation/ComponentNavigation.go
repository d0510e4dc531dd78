package simulation

import (
	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

func (sim Simulation) CastNavigation(data interface{}) *Navigation {
	return data.(*Navigation)
}

// Navigation cycles an agent over its ordered waypoint list. Each waypoint
// gets a fresh planner; queue-backed waypoints get the queueing planner,
// anything else the individual one.
type Navigation struct {
	handle *AgentHandle

	waypoints    []navigation.Waypoint
	currentIndex int

	planner navigation.WaypointPlanner
}

func NewNavigation(handle *AgentHandle, waypoints []navigation.Waypoint) *Navigation {
	return &Navigation{
		handle:    handle,
		waypoints: waypoints,
	}
}

func (nav *Navigation) Handle() *AgentHandle {
	return nav.handle
}

func (nav *Navigation) Planner() navigation.WaypointPlanner {
	return nav.planner
}
