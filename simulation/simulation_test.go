package simulation

import (
	"testing"

	"github.com/bytearena/ecs"
	"github.com/stretchr/testify/assert"

	"github.com/basselfa/pedsim-ros/common/types/scenariocontainer"
	"github.com/basselfa/pedsim-ros/common/utils/vector"
	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

func makeTestConfig() Config {
	cfg := DefaultConfig()
	// deterministic runs
	cfg.RandomForceFactor = 0
	return cfg
}

func TestAgentWalksToWaypoint(t *testing.T) {
	sim := NewSimulation(makeTestConfig())

	exit := navigation.NewAreaWaypoint("exit", vector.MakeVector2(5, 0), 2)
	sim.AddWaypoint(exit)
	handle := sim.NewEntityAgent(vector.MakeVector2(0, 0), []navigation.Waypoint{exit}, 0)

	for i := 0; i < 100; i++ {
		sim.Step(0.1)
	}

	distance := handle.Position().Sub(vector.MakeVector2(5, 0)).Mag()
	assert.Less(t, distance, 2.5)
}

func TestAgentQueuesUpAndGetsThrough(t *testing.T) {
	sim := NewSimulation(makeTestConfig())

	queue := navigation.NewWaitingQueue("gate", vector.MakeVector2(0, 0), vector.MakeVector2(0, -1), 1)
	sim.AddQueue(queue)
	handle := sim.NewEntityAgent(vector.MakeVector2(0, 8), []navigation.Waypoint{queue}, 0)

	granted := make([]int, 0)
	queue.SubscribeAgentMayPass(func(agentID int) {
		granted = append(granted, agentID)
	})

	wasEnqueued := false
	for i := 0; i < 300; i++ {
		sim.Step(0.1)
		if queue.Len() > 0 {
			wasEnqueued = true
		}
	}

	assert.True(t, wasEnqueued)
	assert.Contains(t, granted, handle.ID())

	// the agent made it to the front of the line
	distance := handle.Position().Sub(queue.Position()).Mag()
	assert.Less(t, distance, 3.0)
}

func TestQueueServesAgentsInArrivalOrder(t *testing.T) {
	sim := NewSimulation(makeTestConfig())

	queue := navigation.NewWaitingQueue("gate", vector.MakeVector2(0, 0), vector.MakeVector2(0, -1), 1)
	sim.AddQueue(queue)

	// a distant exit keeps served agents from looping back into the line
	exit := navigation.NewAreaWaypoint("exit", vector.MakeVector2(100, 0), 2)
	sim.AddWaypoint(exit)

	near := sim.NewEntityAgent(vector.MakeVector2(0, 4), []navigation.Waypoint{queue, exit}, 0)
	far := sim.NewEntityAgent(vector.MakeVector2(0, 14), []navigation.Waypoint{queue, exit}, 0)

	granted := make([]int, 0)
	queue.SubscribeAgentMayPass(func(agentID int) {
		granted = append(granted, agentID)
	})

	for i := 0; i < 500; i++ {
		sim.Step(0.1)
		if len(granted) >= 2 {
			break
		}
	}

	assert.GreaterOrEqual(t, len(granted), 2)
	assert.Equal(t, near.ID(), granted[0])
	assert.Equal(t, far.ID(), granted[1])
}

func TestQueueingDisablesAndRestoresForces(t *testing.T) {
	sim := NewSimulation(makeTestConfig())

	queue := navigation.NewWaitingQueue("gate", vector.MakeVector2(0, 0), vector.MakeVector2(0, -1), 2)
	sim.AddQueue(queue)
	exit := navigation.NewAreaWaypoint("exit", vector.MakeVector2(0, 30), 2)
	sim.AddWaypoint(exit)

	handle := sim.NewEntityAgent(vector.MakeVector2(0, 1), []navigation.Waypoint{queue, exit}, 0)
	steeringAspect := handle.steeringAspect()

	// first step lines the agent up right away and switches the
	// interfering behaviors off
	sim.Step(0.1)
	assert.False(t, steeringAspect.ForceEnabled(navigation.ForceSocial))
	assert.False(t, steeringAspect.ForceEnabled(navigation.ForceRandom))
	assert.False(t, steeringAspect.ForceEnabled(navigation.ForceGroupCoherence))
	assert.False(t, steeringAspect.ForceEnabled(navigation.ForceGroupGaze))

	// run until the queue lets the agent through and it heads for the exit
	for i := 0; i < 100; i++ {
		sim.Step(0.1)
	}

	assert.True(t, steeringAspect.ForceEnabled(navigation.ForceSocial))
	assert.True(t, steeringAspect.ForceEnabled(navigation.ForceRandom))
}

func TestClusterDissolveSpawnsWithinDistribution(t *testing.T) {
	sim := NewSimulation(makeTestConfig())

	cluster := NewAgentCluster(sim.IDService(), vector.MakeVector2(10, 10), 20, vector.MakeVector2(4, 2))
	handles := cluster.Dissolve(sim)

	assert.Len(t, handles, 20)
	for _, handle := range handles {
		x, y := handle.Position().Get()
		assert.InDelta(t, 10, x, 2.0000001)
		assert.InDelta(t, 10, y, 1.0000001)
		assert.Equal(t, 0, handle.steeringAspect().GroupID())
	}
}

func TestClusterGroups(t *testing.T) {
	sim := NewSimulation(makeTestConfig())

	cluster := NewAgentCluster(sim.IDService(), vector.MakeVector2(0, 0), 3, vector.MakeVector2(2, 2))
	cluster.SetCreateGroups(true)
	handles := cluster.Dissolve(sim)

	for _, handle := range handles {
		assert.Equal(t, cluster.ID(), handle.steeringAspect().GroupID())
	}
}

func TestSpatialIndexFindsNeighborsWithinRadius(t *testing.T) {
	sim := NewSimulation(makeTestConfig())

	center := sim.NewEntityAgent(vector.MakeVector2(0, 0), nil, 0)
	near := sim.NewEntityAgent(vector.MakeVector2(1, 0), nil, 0)
	far := sim.NewEntityAgent(vector.MakeVector2(50, 50), nil, 0)

	sim.index.rebuild(sim)

	found := make([]ecs.EntityID, 0)
	for _, entry := range sim.index.neighbors(center.Position(), 3) {
		found = append(found, entry.entityID)
	}

	assert.Contains(t, found, near.EntityID())
	assert.NotContains(t, found, far.EntityID())
}

func TestGroupCoherencePullsStrayedMemberBack(t *testing.T) {
	cfg := makeTestConfig()
	cfg.SocialForceFactor = 0
	sim := NewSimulation(cfg)

	anchor := sim.NewEntityAgent(vector.MakeVector2(0, 0), nil, 7)
	strayed := sim.NewEntityAgent(vector.MakeVector2(10, 0), nil, 7)

	gapBefore := strayed.Position().Sub(anchor.Position()).Mag()

	// the member beyond the group radius gets pushed back towards the
	// centroid right away
	sim.Step(0.1)
	forceX, _ := strayed.steeringAspect().pendingForce.Get()
	assert.Negative(t, forceX)

	for i := 0; i < 30; i++ {
		sim.Step(0.1)
	}

	gapAfter := strayed.Position().Sub(anchor.Position()).Mag()
	assert.Less(t, gapAfter, gapBefore)

	x, _ := strayed.Position().Get()
	assert.Less(t, x, 10.0)
}

func TestGroupGazeAlignsMemberVelocity(t *testing.T) {
	cfg := makeTestConfig()
	cfg.SocialForceFactor = 0
	cfg.GroupCoherenceForceFactor = 0
	sim := NewSimulation(cfg)

	mover := sim.NewEntityAgent(vector.MakeVector2(0, 0), nil, 7)
	idler := sim.NewEntityAgent(vector.MakeVector2(1, 0), nil, 7)
	mover.physicalAspect().SetVelocity(vector.MakeVector2(1, 0))

	sim.Step(0.1)

	idlerVx, _ := idler.physicalAspect().GetVelocity().Get()
	assert.Positive(t, idlerVx)

	moverVx, _ := mover.physicalAspect().GetVelocity().Get()
	assert.Less(t, moverVx, 1.0)
}

func TestIDServiceIssuesSequentialIDs(t *testing.T) {
	service := NewIDService()

	assert.Equal(t, 1, service.NextID())
	assert.Equal(t, 2, service.NextID())
	assert.Equal(t, 3, service.NextID())
}

const sampleScenario = `{
	"name": "station",
	"waypoints": [
		{"name": "hall", "point": {"x": -10, "y": 0}, "radius": 2}
	],
	"queues": [
		{"name": "ticketcounter", "point": {"x": 10, "y": 0}, "direction": {"x": 1, "y": 0}, "waitingTime": 5}
	],
	"clusters": [
		{"point": {"x": -10, "y": 0}, "count": 8, "distribution": {"width": 4, "height": 4}, "waypoints": ["hall", "ticketcounter"], "createGroups": true}
	]
}`

func TestNewSimulationFromScenario(t *testing.T) {
	scenario, err := scenariocontainer.ParseScenario([]byte(sampleScenario))
	assert.NoError(t, err)

	sim, err := NewSimulationFromScenario(scenario, makeTestConfig())
	assert.NoError(t, err)

	snapshot := sim.Snapshot()
	assert.Len(t, snapshot.Agents, 8)
	assert.Len(t, snapshot.Queues, 1)
	assert.Equal(t, "ticketcounter", snapshot.Queues[0].Name)
}

func TestNewSimulationFromScenarioRejectsUnknownDestination(t *testing.T) {
	scenario := &scenariocontainer.ScenarioContainer{
		Clusters: []scenariocontainer.ScenarioCluster{
			{Count: 1, Waypoints: []string{"nowhere"}},
		},
	}

	_, err := NewSimulationFromScenario(scenario, makeTestConfig())
	assert.Error(t, err)
}
