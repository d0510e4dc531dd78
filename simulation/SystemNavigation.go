package simulation

import (
	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

// systemNavigation polls each agent's planner for its current waypoint and
// hands the position to the steering layer. Completed destinations advance
// the agent along its waypoint cycle.
func systemNavigation(sim *Simulation) {
	for _, entityresult := range sim.navigationView.Get() {
		navAspect := sim.CastNavigation(entityresult.Components[sim.navigationComponent])
		steeringAspect := sim.CastSteering(entityresult.Components[sim.steeringComponent])

		if len(navAspect.waypoints) == 0 {
			steeringAspect.ClearNavigationTarget()
			continue
		}

		if navAspect.planner == nil {
			navAspect.planner = makePlanner(navAspect.handle, navAspect.waypoints[navAspect.currentIndex])
		}

		if navAspect.planner.HasCompletedDestination() {
			navAspect.planner.Teardown()

			// the queueing planner switches these off while in line;
			// restore them once the agent is through
			steeringAspect.EnableForce(navigation.ForceSocial)
			steeringAspect.EnableForce(navigation.ForceRandom)
			steeringAspect.EnableForce(navigation.ForceGroupCoherence)
			steeringAspect.EnableForce(navigation.ForceGroupGaze)

			navAspect.currentIndex = (navAspect.currentIndex + 1) % len(navAspect.waypoints)
			navAspect.planner = makePlanner(navAspect.handle, navAspect.waypoints[navAspect.currentIndex])
		}

		waypoint := navAspect.planner.CurrentWaypoint()
		if waypoint == nil {
			steeringAspect.ClearNavigationTarget()
			continue
		}

		steeringAspect.SetNavigationTarget(waypoint.Position())
	}
}

func makePlanner(handle *AgentHandle, waypoint navigation.Waypoint) navigation.WaypointPlanner {
	var planner navigation.WaypointPlanner

	if queueWaypoint, ok := waypoint.(navigation.QueueWaypoint); ok && queueWaypoint.AsQueue() != nil {
		planner = navigation.NewQueueingWaypointPlanner()
	} else {
		planner = navigation.NewIndividualWaypointPlanner()
	}

	planner.SetAgent(handle)
	planner.SetDestination(waypoint)
	return planner
}
