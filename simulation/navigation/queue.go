package navigation

import (
	"github.com/basselfa/pedsim-ros/common/utils/vector"
)

// Queue is the planner's view on an ordered line of agents. The planner
// reads its geometry, enqueues exactly once, and observes two event
// streams; the queue's lifetime is managed by the scene.
type Queue interface {
	Name() string

	// Position returns the anchor, where the head of the line stands.
	Position() vector.Vector2

	// EndPosition returns where a newcomer should line up.
	EndPosition() vector.Vector2

	// Direction points the way queued agents travel, towards the anchor.
	Direction() vector.Vector2

	IsEmpty() bool

	// Enqueue appends the agent to the line and returns the agent
	// immediately ahead of it, or nil if the newcomer becomes the head.
	Enqueue(agent Agent) Agent

	SubscribeAgentMayPass(cbk func(agentID int)) Subscription
	UnsubscribeAgentMayPass(sub Subscription)
	SubscribeEndPositionChanged(cbk func(x float64, y float64)) Subscription
	UnsubscribeEndPositionChanged(sub Subscription)
}
