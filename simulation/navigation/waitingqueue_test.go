package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basselfa/pedsim-ros/common/utils/vector"
	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

func TestEnqueueReturnsAgentAhead(t *testing.T) {
	queue := navigation.NewWaitingQueue("checkout", vector.MakeVector2(0, 0), vector.MakeVector2(0, -1), 10)

	first := newFakeAgent(1, vector.MakeVector2(0, 1))
	second := newFakeAgent(2, vector.MakeVector2(0, 2))

	assert.Nil(t, queue.Enqueue(first))
	ahead := queue.Enqueue(second)
	assert.Equal(t, first, ahead)
	assert.Equal(t, 2, queue.Len())
}

func TestEndPositionFollowsLastAgent(t *testing.T) {
	queue := navigation.NewWaitingQueue("checkout", vector.MakeVector2(0, 0), vector.MakeVector2(0, -1), 10)

	// empty line: newcomers head straight for the anchor
	assert.True(t, queue.EndPosition().Equals(vector.MakeVector2(0, 0)))

	occupant := newFakeAgent(1, vector.MakeVector2(0, 3))
	queue.Enqueue(occupant)
	assert.True(t, queue.EndPosition().Equals(vector.MakeVector2(0, 3)))
}

func TestUpdateReleasesHeadAfterWaitingTime(t *testing.T) {
	queue := navigation.NewWaitingQueue("checkout", vector.MakeVector2(0, 0), vector.MakeVector2(0, -1), 2)

	head := newFakeAgent(1, vector.MakeVector2(0, 0))
	follower := newFakeAgent(2, vector.MakeVector2(0, 1))
	queue.Enqueue(head)
	queue.Enqueue(follower)

	granted := make([]int, 0)
	queue.SubscribeAgentMayPass(func(agentID int) {
		granted = append(granted, agentID)
	})

	queue.Update(1)
	assert.Empty(t, granted)

	queue.Update(1)
	assert.Equal(t, []int{1}, granted)
	assert.Equal(t, 1, queue.Len())

	// the timer restarts for the next head
	queue.Update(1)
	assert.Len(t, granted, 1)
	queue.Update(1)
	assert.Equal(t, []int{1, 2}, granted)
	assert.True(t, queue.IsEmpty())
}

func TestUpdateIdlesOnEmptyQueue(t *testing.T) {
	queue := navigation.NewWaitingQueue("checkout", vector.MakeVector2(0, 0), vector.MakeVector2(0, -1), 1)

	// must not accumulate waited time while nobody is in line
	queue.Update(10)
	agent := newFakeAgent(1, vector.MakeVector2(0, 0))
	queue.Enqueue(agent)

	granted := make([]int, 0)
	queue.SubscribeAgentMayPass(func(agentID int) {
		granted = append(granted, agentID)
	})

	queue.Update(0.5)
	assert.Empty(t, granted)
	queue.Update(0.5)
	assert.Equal(t, []int{1}, granted)
}

func TestRefreshEndPositionEmitsOnlyOnDrift(t *testing.T) {
	queue := navigation.NewWaitingQueue("checkout", vector.MakeVector2(0, 0), vector.MakeVector2(0, -1), 10)

	occupant := newFakeAgent(1, vector.MakeVector2(0, 3))
	queue.Enqueue(occupant)

	emissions := 0
	queue.SubscribeEndPositionChanged(func(x float64, y float64) {
		emissions++
	})

	queue.RefreshEndPosition()
	assert.Equal(t, 0, emissions)

	occupant.MoveTo(vector.MakeVector2(0, 2))
	queue.RefreshEndPosition()
	queue.RefreshEndPosition()
	assert.Equal(t, 1, emissions)
}

func TestUnsubscribedObserverIsNotNotified(t *testing.T) {
	queue := navigation.NewWaitingQueue("checkout", vector.MakeVector2(0, 0), vector.MakeVector2(0, -1), 1)
	agent := newFakeAgent(1, vector.MakeVector2(0, 0))
	queue.Enqueue(agent)

	notified := 0
	sub := queue.SubscribeAgentMayPass(func(agentID int) {
		notified++
	})
	queue.UnsubscribeAgentMayPass(sub)

	queue.Update(1)
	assert.Equal(t, 0, notified)
}
