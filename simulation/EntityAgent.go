package simulation

import (
	"github.com/bytearena/ecs"

	"github.com/basselfa/pedsim-ros/common/utils/vector"
	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

// AgentHandle is the stable, planner-facing identity of an agent entity.
// It implements navigation.Agent on top of the entity's components.
type AgentHandle struct {
	id       int
	sim      *Simulation
	entityID ecs.EntityID
}

func (handle *AgentHandle) ID() int {
	return handle.id
}

func (handle *AgentHandle) EntityID() ecs.EntityID {
	return handle.entityID
}

func (handle *AgentHandle) physicalAspect() *PhysicalBody {
	entityResult := handle.sim.getEntity(handle.entityID, handle.sim.physicalBodyComponent)
	if entityResult == nil {
		return nil
	}
	return handle.sim.CastPhysicalBody(entityResult.Components[handle.sim.physicalBodyComponent])
}

func (handle *AgentHandle) steeringAspect() *Steering {
	entityResult := handle.sim.getEntity(handle.entityID, handle.sim.steeringComponent)
	if entityResult == nil {
		return nil
	}
	return handle.sim.CastSteering(entityResult.Components[handle.sim.steeringComponent])
}

func (handle *AgentHandle) Position() vector.Vector2 {
	physicalAspect := handle.physicalAspect()
	if physicalAspect == nil {
		return vector.MakeNullVector2()
	}
	return physicalAspect.GetPosition()
}

func (handle *AgentHandle) DisableForce(name string) {
	steeringAspect := handle.steeringAspect()
	if steeringAspect == nil {
		return
	}
	steeringAspect.DisableForce(name)
}

func (handle *AgentHandle) SubscribePositionChanged(cbk func(x float64, y float64)) navigation.Subscription {
	physicalAspect := handle.physicalAspect()
	if physicalAspect == nil {
		return 0
	}
	return physicalAspect.positionChanged.Subscribe(cbk)
}

func (handle *AgentHandle) UnsubscribePositionChanged(sub navigation.Subscription) {
	physicalAspect := handle.physicalAspect()
	if physicalAspect == nil {
		return
	}
	physicalAspect.positionChanged.Unsubscribe(sub)
}

// NewEntityAgent spawns a pedestrian at the given position, walking the
// given waypoint cycle. groupID 0 means the agent walks alone.
func (sim *Simulation) NewEntityAgent(position vector.Vector2, waypoints []navigation.Waypoint, groupID int) *AgentHandle {
	agent := sim.manager.NewEntity()

	handle := &AgentHandle{
		id:       sim.idService.NextID(),
		sim:      sim,
		entityID: agent.GetID(),
	}

	agent.
		AddComponent(sim.physicalBodyComponent, &PhysicalBody{
			position:         position,
			radius:           sim.cfg.AgentRadius,
			maxSpeed:         sim.cfg.MaxSpeed,
			maxSteeringForce: sim.cfg.MaxSteeringForce,
		}).
		AddComponent(sim.steeringComponent, NewSteering(groupID)).
		AddComponent(sim.navigationComponent, NewNavigation(handle, waypoints))

	return handle
}
