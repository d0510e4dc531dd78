package navigation

// WaypointPlanner decides, step by step, where an agent should walk to
// reach its current destination. The movement integrator polls
// CurrentWaypoint every simulation step.
type WaypointPlanner interface {
	SetAgent(agent Agent)
	Agent() Agent

	// SetDestination assigns the destination the planner navigates to.
	// Planners reject destination kinds they cannot handle.
	SetDestination(waypoint Waypoint)

	// CurrentWaypoint returns the position the agent should currently walk
	// to, advancing to the next waypoint if the current one is completed.
	// Returns nil when the planner has nothing to offer.
	CurrentWaypoint() Waypoint

	HasCompletedWaypoint() bool
	HasCompletedDestination() bool

	// Teardown releases every live subscription held by the planner.
	// Must be called by the owning agent context before discarding it.
	Teardown()

	Name() string
}
