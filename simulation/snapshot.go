package simulation

import (
	"github.com/basselfa/pedsim-ros/common/utils/vector"
)

type AgentSnapshot struct {
	ID       int            `json:"id"`
	Position vector.Vector2 `json:"position"`
	Velocity vector.Vector2 `json:"velocity"`
}

type QueueSnapshot struct {
	Name        string         `json:"name"`
	Position    vector.Vector2 `json:"position"`
	EndPosition vector.Vector2 `json:"endPosition"`
	Size        int            `json:"size"`
}

type Snapshot struct {
	Tick   int             `json:"tick"`
	Agents []AgentSnapshot `json:"agents"`
	Queues []QueueSnapshot `json:"queues"`
}

// Snapshot captures the observable world state of the current tick, for
// state streaming and tests.
func (sim *Simulation) Snapshot() Snapshot {
	snapshot := Snapshot{
		Tick:   sim.ticknum,
		Agents: make([]AgentSnapshot, 0),
		Queues: make([]QueueSnapshot, 0, len(sim.queues)),
	}

	for _, entityresult := range sim.navigationView.Get() {
		navAspect := sim.CastNavigation(entityresult.Components[sim.navigationComponent])
		physicalAspect := sim.CastPhysicalBody(entityresult.Components[sim.physicalBodyComponent])

		snapshot.Agents = append(snapshot.Agents, AgentSnapshot{
			ID:       navAspect.handle.ID(),
			Position: physicalAspect.GetPosition(),
			Velocity: physicalAspect.GetVelocity(),
		})
	}

	for _, queue := range sim.queues {
		snapshot.Queues = append(snapshot.Queues, QueueSnapshot{
			Name:        queue.Name(),
			Position:    queue.Position(),
			EndPosition: queue.EndPosition(),
			Size:        queue.Len(),
		})
	}

	return snapshot
}
