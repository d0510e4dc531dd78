package navigation

import (
	"strconv"

	"github.com/basselfa/pedsim-ros/common/utils"
	"github.com/basselfa/pedsim-ros/common/utils/vector"
)

// WaitingQueue is an ordered line of agents anchored at a service point.
// The direction vector points the way queued agents travel, towards the
// anchor; the line grows in the opposite direction.
//
// The queue outlives the planners observing it; it is created and destroyed
// by scene configuration.
type WaitingQueue struct {
	name        string
	position    vector.Vector2 // anchor; where the head of the line stands
	direction   vector.Vector2
	waitingTime float64 // seconds before the head is granted pass
	waitedTime  float64

	agents []Agent

	agentMayPass       AgentSignal
	endPositionChanged PositionSignal

	lastEmittedEnd vector.Vector2
}

func NewWaitingQueue(name string, position vector.Vector2, direction vector.Vector2, waitingTime float64) *WaitingQueue {
	return &WaitingQueue{
		name:           name,
		position:       position,
		direction:      direction.Normalize(),
		waitingTime:    waitingTime,
		agents:         make([]Agent, 0),
		lastEmittedEnd: position,
	}
}

func (queue *WaitingQueue) Name() string {
	return queue.name
}

// Position returns the queue's anchor.
func (queue *WaitingQueue) Position() vector.Vector2 {
	return queue.position
}

func (queue *WaitingQueue) AsQueue() Queue {
	return queue
}

func (queue *WaitingQueue) Direction() vector.Vector2 {
	return queue.direction
}

func (queue *WaitingQueue) IsEmpty() bool {
	return len(queue.agents) == 0
}

func (queue *WaitingQueue) Len() int {
	return len(queue.agents)
}

// EndPosition returns where a newcomer should line up: behind the last
// queued agent, or at the anchor when the line is empty.
func (queue *WaitingQueue) EndPosition() vector.Vector2 {
	if len(queue.agents) == 0 {
		return queue.position
	}

	return queue.agents[len(queue.agents)-1].Position()
}

// Enqueue appends the agent to the line and returns the agent immediately
// ahead of it, or nil if the newcomer becomes the head.
func (queue *WaitingQueue) Enqueue(agent Agent) Agent {
	var ahead Agent
	if len(queue.agents) > 0 {
		ahead = queue.agents[len(queue.agents)-1]
	}

	queue.agents = append(queue.agents, agent)
	queue.emitEndPositionChanged()

	return ahead
}

// Update advances the head-of-line timer. Once the waiting time has elapsed
// the head is dequeued and granted pass.
func (queue *WaitingQueue) Update(dt float64) {
	if len(queue.agents) == 0 {
		queue.waitedTime = 0
		return
	}

	queue.waitedTime += dt
	if queue.waitedTime < queue.waitingTime {
		return
	}

	queue.waitedTime = 0
	head := queue.agents[0]
	queue.agents = queue.agents[1:]

	utils.Debug("waitingqueue", "Queue "+queue.name+" grants pass to agent "+strconv.Itoa(head.ID()))
	queue.agentMayPass.Emit(head.ID())
	queue.emitEndPositionChanged()
}

// RefreshEndPosition re-emits the end position if it has drifted since the
// last emission, which happens as the last agent in line walks forward.
func (queue *WaitingQueue) RefreshEndPosition() {
	end := queue.EndPosition()
	if end.Equals(queue.lastEmittedEnd) {
		return
	}

	queue.lastEmittedEnd = end
	queue.endPositionChanged.Emit(end.Get())
}

func (queue *WaitingQueue) emitEndPositionChanged() {
	end := queue.EndPosition()
	queue.lastEmittedEnd = end
	queue.endPositionChanged.Emit(end.Get())
}

func (queue *WaitingQueue) SubscribeAgentMayPass(cbk func(agentID int)) Subscription {
	return queue.agentMayPass.Subscribe(cbk)
}

func (queue *WaitingQueue) UnsubscribeAgentMayPass(sub Subscription) {
	queue.agentMayPass.Unsubscribe(sub)
}

func (queue *WaitingQueue) SubscribeEndPositionChanged(cbk func(x float64, y float64)) Subscription {
	return queue.endPositionChanged.Subscribe(cbk)
}

func (queue *WaitingQueue) UnsubscribeEndPositionChanged(sub Subscription) {
	queue.endPositionChanged.Unsubscribe(sub)
}

func (queue *WaitingQueue) String() string {
	return "WaitingQueue " + queue.name + " @" + queue.position.String()
}
