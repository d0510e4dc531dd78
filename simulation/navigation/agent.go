package navigation

import (
	"github.com/basselfa/pedsim-ros/common/utils/vector"
)

// Steering force names a planner may switch off on an agent.
const (
	ForceSocial         = "Social"
	ForceRandom         = "Random"
	ForceGroupCoherence = "GroupCoherence"
	ForceGroupGaze      = "GroupGaze"
)

// Agent is the view a waypoint planner has on a simulated pedestrian.
// The planner never owns the agent; the scene does.
type Agent interface {
	ID() int
	Position() vector.Vector2
	DisableForce(name string)

	SubscribePositionChanged(cbk func(x float64, y float64)) Subscription
	UnsubscribePositionChanged(sub Subscription)
}
