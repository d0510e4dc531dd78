package navigation

import (
	"strconv"

	"github.com/basselfa/pedsim-ros/common/utils"
	"github.com/basselfa/pedsim-ros/common/utils/vector"
)

// QueueingStatus is the stage a queueing planner is in for its current
// queue assignment.
type QueueingStatus int

const (
	StatusUnknown QueueingStatus = iota
	StatusApproaching
	StatusQueued
	StatusMayPass
)

func (status QueueingStatus) String() string {
	switch status {
	case StatusApproaching:
		return "Approaching"
	case StatusQueued:
		return "Queued"
	case StatusMayPass:
		return "MayPass"
	default:
		return "Unknown"
	}
}

const (
	// distance to the queue end below which the agent lines up
	endPositionRadius = 2.0

	// displacement keeping queued agents from converging onto one point
	privateSpaceDistance = 0.7

	// followed-agent moves smaller than this don't update the waypoint,
	// preventing over-correction on small forward drift
	minUpdateDistance = 0.4
)

// QueueingWaypointPlanner steers one agent towards, into and out of a
// waiting queue. It reacts to position and pass-permission events pushed by
// the queue and by the agent directly ahead in line, and answers the
// movement integrator's per-step waypoint queries.
//
// All interaction is single-threaded: event handlers run synchronously as
// the underlying changes are produced during a tick.
type QueueingWaypointPlanner struct {
	agent           Agent
	waitingQueue    Queue
	currentWaypoint *QueueingWaypoint
	followedAgent   Agent
	status          QueueingStatus

	mayPassSub     Subscription
	endPositionSub Subscription
	followedSub    Subscription
}

func NewQueueingWaypointPlanner() *QueueingWaypointPlanner {
	return &QueueingWaypointPlanner{
		status: StatusUnknown,
	}
}

func (planner *QueueingWaypointPlanner) SetAgent(agent Agent) {
	planner.agent = agent
}

func (planner *QueueingWaypointPlanner) Agent() Agent {
	return planner.agent
}

// SetDestination accepts queue-backed waypoints only. Anything else is
// rejected with a diagnostic, leaving the planner untouched.
func (planner *QueueingWaypointPlanner) SetDestination(waypoint Waypoint) {
	queueWaypoint, ok := waypoint.(QueueWaypoint)
	if !ok || queueWaypoint.AsQueue() == nil {
		name := "null"
		if waypoint != nil {
			name = waypoint.Name()
		}
		utils.Error("navigation", "Waypoint provided to QueueingWaypointPlanner isn't a waiting queue! ("+name+")")
		return
	}

	planner.SetWaitingQueue(queueWaypoint.AsQueue())
}

// SetWaitingQueue rebinds the planner to a queue, fully tearing down any
// previous queue's subscriptions and waypoint first. A nil queue clears the
// assignment.
func (planner *QueueingWaypointPlanner) SetWaitingQueue(queue Queue) {
	if queue != nil && planner.agent == nil {
		utils.Error("navigation", "Cannot assign a waiting queue without an agent!")
		return
	}

	planner.reset()

	planner.waitingQueue = queue
	if planner.waitingQueue == nil {
		return
	}

	planner.mayPassSub = queue.SubscribeAgentMayPass(planner.onAgentMayPassQueue)
	planner.endPositionSub = queue.SubscribeEndPositionChanged(planner.onQueueEndPositionChanged)

	planner.activateApproachingMode()
}

func (planner *QueueingWaypointPlanner) WaitingQueue() Queue {
	return planner.waitingQueue
}

func (planner *QueueingWaypointPlanner) Status() QueueingStatus {
	return planner.status
}

func (planner *QueueingWaypointPlanner) FollowedAgent() Agent {
	return planner.followedAgent
}

// Teardown releases every live subscription and clears the assignment.
func (planner *QueueingWaypointPlanner) Teardown() {
	planner.reset()
	planner.waitingQueue = nil
}

// reset disconnects all subscriptions and discards the current waypoint.
// The queue reference itself is left to the caller.
func (planner *QueueingWaypointPlanner) reset() {
	planner.unsubscribeFollowedAgent()
	planner.unsubscribeQueue()

	planner.status = StatusUnknown
	planner.currentWaypoint = nil
	planner.followedAgent = nil
}

func (planner *QueueingWaypointPlanner) unsubscribeQueue() {
	if planner.waitingQueue == nil {
		return
	}
	if planner.mayPassSub != 0 {
		planner.waitingQueue.UnsubscribeAgentMayPass(planner.mayPassSub)
		planner.mayPassSub = 0
	}
	if planner.endPositionSub != 0 {
		planner.waitingQueue.UnsubscribeEndPositionChanged(planner.endPositionSub)
		planner.endPositionSub = 0
	}
}

func (planner *QueueingWaypointPlanner) unsubscribeFollowedAgent() {
	if planner.followedAgent != nil && planner.followedSub != 0 {
		planner.followedAgent.UnsubscribePositionChanged(planner.followedSub)
		planner.followedSub = 0
	}
}

// onQueueEndPositionChanged tracks the tail of the line while approaching.
// Once enqueued, the queue end is someone else's problem.
func (planner *QueueingWaypointPlanner) onQueueEndPositionChanged(x float64, y float64) {
	if planner.status != StatusApproaching {
		return
	}

	if planner.hasReachedQueueEnd() {
		planner.activateQueueingMode()
		return
	}

	if planner.currentWaypoint == nil {
		return
	}

	newDestination := vector.MakeVector2(x, y)
	if !planner.waitingQueue.IsEmpty() {
		newDestination = planner.addPrivateSpace(newDestination)
	}
	planner.currentWaypoint.SetPosition(newDestination)
}

// onFollowedAgentPositionChanged keeps the waypoint just behind the agent
// ahead in line.
func (planner *QueueingWaypointPlanner) onFollowedAgentPositionChanged(x float64, y float64) {
	if planner.currentWaypoint == nil {
		utils.Error("navigation", "Queued agent cannot update queueing position, because there's no waypoint set!")
		return
	}

	followedPosition := planner.addPrivateSpace(vector.MakeVector2(x, y))

	diff := followedPosition.Sub(planner.currentWaypoint.Position())
	if diff.Mag() < minUpdateDistance {
		return
	}

	planner.currentWaypoint.SetPosition(followedPosition)
}

// onAgentMayPassQueue handles a pass permission granted by the queue,
// either to the controlled agent or to the agent it follows.
func (planner *QueueingWaypointPlanner) onAgentMayPassQueue(agentID int) {
	if planner.agent != nil && agentID == planner.agent.ID() {
		planner.status = StatusMayPass

		// the personal queue interaction ends here; the waypoint, if
		// any, stays where it is and the planner goes inert
		planner.unsubscribeFollowedAgent()
		planner.followedAgent = nil
		planner.unsubscribeQueue()
	} else if planner.followedAgent != nil && agentID == planner.followedAgent.ID() {
		planner.onFollowedAgentLeftQueue()
	}
}

func (planner *QueueingWaypointPlanner) onFollowedAgentLeftQueue() {
	planner.unsubscribeFollowedAgent()

	// move up to the queue's front
	//HACK: we should check our position and eventually bind to the agent
	// now ahead of us instead
	if planner.currentWaypoint != nil {
		planner.currentWaypoint.SetPosition(planner.waitingQueue.Position())
	}
}

func (planner *QueueingWaypointPlanner) hasReachedQueueEnd() bool {
	if planner.waitingQueue == nil || planner.agent == nil {
		return false
	}

	diff := planner.waitingQueue.EndPosition().Sub(planner.agent.Position())
	return diff.Mag() <= endPositionRadius
}

func (planner *QueueingWaypointPlanner) activateApproachingMode() {
	utils.Debug("navigation", "Agent "+strconv.Itoa(planner.agent.ID())+" enters Approaching Mode")

	planner.status = StatusApproaching

	destination := planner.waitingQueue.EndPosition()
	if !planner.waitingQueue.IsEmpty() {
		destination = planner.addPrivateSpace(destination)
	}

	planner.currentWaypoint = NewQueueingWaypoint(planner.waypointName(), destination)
}

func (planner *QueueingWaypointPlanner) activateQueueingMode() {
	utils.Debug("navigation", "Agent "+strconv.Itoa(planner.agent.ID())+" enters Queueing Mode")

	planner.status = StatusQueued

	var queueingPosition vector.Vector2
	planner.followedAgent = planner.waitingQueue.Enqueue(planner.agent)
	if planner.followedAgent != nil {
		queueingPosition = planner.addPrivateSpace(planner.followedAgent.Position())

		// keep updating the waypoint as the line moves
		planner.followedSub = planner.followedAgent.SubscribePositionChanged(planner.onFollowedAgentPositionChanged)
	} else {
		queueingPosition = planner.waitingQueue.Position()
	}

	// these would fight the queue-following motion
	planner.agent.DisableForce(ForceSocial)
	planner.agent.DisableForce(ForceRandom)
	planner.agent.DisableForce(ForceGroupCoherence)
	planner.agent.DisableForce(ForceGroupGaze)

	planner.currentWaypoint = NewQueueingWaypoint(planner.waypointName(), queueingPosition)
}

// addPrivateSpace moves a candidate position one personal-space step back
// along the queue direction.
func (planner *QueueingWaypointPlanner) addPrivateSpace(position vector.Vector2) vector.Vector2 {
	offset := vector.MakeVector2FromPolar(planner.waitingQueue.Direction(), privateSpaceDistance)
	return position.Sub(offset)
}

func (planner *QueueingWaypointPlanner) waypointName() string {
	return "QueueHelper_A" + strconv.Itoa(planner.agent.ID()) + "_Q" + planner.waitingQueue.Name()
}

// CurrentWaypoint returns the waypoint the agent should walk to, advancing
// the planner first if the current one is completed.
func (planner *QueueingWaypointPlanner) CurrentWaypoint() Waypoint {
	if planner.HasCompletedWaypoint() {
		planner.currentWaypoint = planner.nextWaypoint()
	}

	if planner.currentWaypoint == nil {
		return nil
	}
	return planner.currentWaypoint
}

func (planner *QueueingWaypointPlanner) nextWaypoint() *QueueingWaypoint {
	if planner.agent == nil {
		utils.Error("navigation", "Cannot determine queueing waypoint without agent!")
		return nil
	}
	if planner.waitingQueue == nil {
		utils.Warn("navigation", "Cannot determine queueing waypoint without waiting queue!")
		return nil
	}

	switch planner.status {
	case StatusQueued, StatusMayPass:
		// already enqueued; the waypoint reflects the queueing position

	default:
		if planner.hasReachedQueueEnd() {
			planner.activateQueueingMode()
		} else {
			planner.activateApproachingMode()
		}
	}

	return planner.currentWaypoint
}

// HasCompletedWaypoint reports whether the current waypoint is done with.
// Reaching the queue end while approaching is itself the transition into
// the line, so querying completes it.
func (planner *QueueingWaypointPlanner) HasCompletedWaypoint() bool {
	if planner.currentWaypoint == nil {
		return true
	}

	if planner.status == StatusApproaching && planner.hasReachedQueueEnd() {
		planner.activateQueueingMode()
		return true
	}

	return planner.status == StatusMayPass
}

// HasCompletedDestination reports whether the queue assignment as a whole
// is finished and the agent may resume its normal waypoint sequence.
func (planner *QueueingWaypointPlanner) HasCompletedDestination() bool {
	if planner.waitingQueue == nil {
		utils.Warn("navigation", "QueueingWaypointPlanner: No waiting queue set!")
		return true
	}

	return planner.status == StatusMayPass
}

func (planner *QueueingWaypointPlanner) Name() string {
	return "QueueingWaypointPlanner"
}

func (planner *QueueingWaypointPlanner) String() string {
	queue := "null"
	if planner.waitingQueue != nil {
		queue = planner.waitingQueue.Name()
	}
	return planner.Name() + " (" + queue + ")"
}
