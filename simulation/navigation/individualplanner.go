package navigation

import (
	"github.com/basselfa/pedsim-ros/common/utils"
)

const defaultArrivalRadius = 2.0

// IndividualWaypointPlanner walks an agent straight to a fixed waypoint.
// The destination is completed once the agent is within the waypoint's
// radius.
type IndividualWaypointPlanner struct {
	agent       Agent
	destination Waypoint
}

func NewIndividualWaypointPlanner() *IndividualWaypointPlanner {
	return &IndividualWaypointPlanner{}
}

func (planner *IndividualWaypointPlanner) SetAgent(agent Agent) {
	planner.agent = agent
}

func (planner *IndividualWaypointPlanner) Agent() Agent {
	return planner.agent
}

func (planner *IndividualWaypointPlanner) SetDestination(waypoint Waypoint) {
	planner.destination = waypoint
}

func (planner *IndividualWaypointPlanner) CurrentWaypoint() Waypoint {
	return planner.destination
}

func (planner *IndividualWaypointPlanner) HasCompletedWaypoint() bool {
	return planner.HasCompletedDestination()
}

func (planner *IndividualWaypointPlanner) HasCompletedDestination() bool {
	if planner.destination == nil {
		utils.Warn("navigation", "IndividualWaypointPlanner: no destination set")
		return true
	}
	if planner.agent == nil {
		utils.Error("navigation", "IndividualWaypointPlanner: no agent set")
		return true
	}

	radius := defaultArrivalRadius
	if area, ok := planner.destination.(*AreaWaypoint); ok {
		radius = area.Radius()
	}

	diff := planner.destination.Position().Sub(planner.agent.Position())
	return diff.Mag() <= radius
}

func (planner *IndividualWaypointPlanner) Teardown() {
	// holds no subscriptions
}

func (planner *IndividualWaypointPlanner) Name() string {
	return "IndividualWaypointPlanner"
}
