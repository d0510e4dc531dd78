package scenariocontainer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basselfa/pedsim-ros/common/types/scenariocontainer"
)

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

func TestParseScenario(t *testing.T) {
	scenario, err := scenariocontainer.ParseScenario([]byte(sampleScenario))

	assert.NoError(t, err)
	assert.Equal(t, "station", scenario.Name)
	assert.Len(t, scenario.Waypoints, 1)
	assert.Len(t, scenario.Queues, 1)
	assert.Len(t, scenario.Clusters, 1)
	assert.Equal(t, 5.0, scenario.Queues[0].WaitingTime)
	assert.True(t, scenario.Clusters[0].CreateGroups)
}

func TestParseScenarioRejectsInvalidJSON(t *testing.T) {
	_, err := scenariocontainer.ParseScenario([]byte("{"))
	assert.Error(t, err)
}

func TestValidateRejectsUnknownDestination(t *testing.T) {
	scenario := &scenariocontainer.ScenarioContainer{
		Clusters: []scenariocontainer.ScenarioCluster{
			{Count: 1, Waypoints: []string{"nowhere"}},
		},
	}

	assert.Error(t, scenario.Validate())
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	scenario := &scenariocontainer.ScenarioContainer{
		Waypoints: []scenariocontainer.ScenarioWaypoint{
			{Name: "a"},
			{Name: "a"},
		},
	}

	assert.Error(t, scenario.Validate())
}

func TestValidateRejectsQueueWithoutDirection(t *testing.T) {
	scenario := &scenariocontainer.ScenarioContainer{
		Queues: []scenariocontainer.ScenarioQueue{
			{Name: "q", WaitingTime: 5},
		},
	}

	assert.Error(t, scenario.Validate())
}
