package scenariocontainer

import (
	"encoding/json"
	"os"

	bettererrors "github.com/xtuc/better-errors"
)

type ScenarioPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ScenarioSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ScenarioWaypoint struct {
	Name   string        `json:"name"`
	Point  ScenarioPoint `json:"point"`
	Radius float64       `json:"radius"`
}

type ScenarioQueue struct {
	Name        string        `json:"name"`
	Point       ScenarioPoint `json:"point"`
	Direction   ScenarioPoint `json:"direction"`
	WaitingTime float64       `json:"waitingTime"`
}

type ScenarioCluster struct {
	Point        ScenarioPoint `json:"point"`
	Count        int           `json:"count"`
	Distribution ScenarioSize  `json:"distribution"`
	Waypoints    []string      `json:"waypoints"`
	CreateGroups bool          `json:"createGroups"`
}

type ScenarioContainer struct {
	Name      string             `json:"name"`
	Waypoints []ScenarioWaypoint `json:"waypoints"`
	Queues    []ScenarioQueue    `json:"queues"`
	Clusters  []ScenarioCluster  `json:"clusters"`
}

func ParseScenario(data []byte) (*ScenarioContainer, error) {
	var scenario ScenarioContainer
	if err := json.Unmarshal(data, &scenario); err != nil {
		return nil, bettererrors.
			New("Invalid scenario JSON").
			With(bettererrors.NewFromErr(err))
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	return &scenario, nil
}

func LoadScenario(path string) (*ScenarioContainer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bettererrors.
			New("Could not read scenario file").
			SetContext("file", path).
			With(bettererrors.NewFromErr(err))
	}

	return ParseScenario(data)
}

func (scenario *ScenarioContainer) Validate() error {
	destinations := make(map[string]bool)

	for _, waypoint := range scenario.Waypoints {
		if waypoint.Name == "" {
			return bettererrors.New("Scenario waypoint without a name")
		}
		if destinations[waypoint.Name] {
			return bettererrors.
				New("Duplicate destination name in scenario").
				SetContext("name", waypoint.Name)
		}
		destinations[waypoint.Name] = true
	}

	for _, queue := range scenario.Queues {
		if queue.Name == "" {
			return bettererrors.New("Scenario queue without a name")
		}
		if destinations[queue.Name] {
			return bettererrors.
				New("Duplicate destination name in scenario").
				SetContext("name", queue.Name)
		}
		if queue.Direction.X == 0 && queue.Direction.Y == 0 {
			return bettererrors.
				New("Scenario queue without a direction").
				SetContext("name", queue.Name)
		}
		if queue.WaitingTime <= 0 {
			return bettererrors.
				New("Scenario queue needs a positive waiting time").
				SetContext("name", queue.Name)
		}
		destinations[queue.Name] = true
	}

	for _, cluster := range scenario.Clusters {
		if cluster.Count <= 0 {
			return bettererrors.New("Scenario cluster needs a positive agent count")
		}
		for _, name := range cluster.Waypoints {
			if !destinations[name] {
				return bettererrors.
					New("Scenario cluster references an unknown destination").
					SetContext("destination", name)
			}
		}
	}

	return nil
}
