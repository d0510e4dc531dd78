package simulation

import (
	bettererrors "github.com/xtuc/better-errors"

	"github.com/basselfa/pedsim-ros/common/types/scenariocontainer"
	"github.com/basselfa/pedsim-ros/common/utils/vector"
	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

// NewSimulationFromScenario builds a populated world out of a scenario
// container: waypoints and queues first, then the agent clusters dissolved
// onto them.
func NewSimulationFromScenario(scenario *scenariocontainer.ScenarioContainer, cfg Config) (*Simulation, error) {
	sim := NewSimulation(cfg)

	for _, waypoint := range scenario.Waypoints {
		sim.AddWaypoint(navigation.NewAreaWaypoint(
			waypoint.Name,
			vector.MakeVector2(waypoint.Point.X, waypoint.Point.Y),
			waypoint.Radius,
		))
	}

	for _, queue := range scenario.Queues {
		sim.AddQueue(navigation.NewWaitingQueue(
			queue.Name,
			vector.MakeVector2(queue.Point.X, queue.Point.Y),
			vector.MakeVector2(queue.Direction.X, queue.Direction.Y),
			queue.WaitingTime,
		))
	}

	for _, scenarioCluster := range scenario.Clusters {
		cluster := NewAgentCluster(
			sim.idService,
			vector.MakeVector2(scenarioCluster.Point.X, scenarioCluster.Point.Y),
			scenarioCluster.Count,
			vector.MakeVector2(scenarioCluster.Distribution.Width, scenarioCluster.Distribution.Height),
		)
		cluster.SetCreateGroups(scenarioCluster.CreateGroups)

		for _, name := range scenarioCluster.Waypoints {
			waypoint := sim.WaypointByName(name)
			if waypoint == nil {
				return nil, bettererrors.
					New("Scenario cluster references an unknown destination").
					SetContext("destination", name)
			}
			cluster.AddWaypoint(waypoint)
		}

		cluster.Dissolve(sim)
	}

	return sim, nil
}
