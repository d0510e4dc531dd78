package simulation

import (
	"github.com/basselfa/pedsim-ros/common/utils/vector"
	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

func (sim Simulation) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

type PhysicalBody struct {
	position vector.Vector2
	velocity vector.Vector2

	radius           float64 // m
	maxSpeed         float64 // m/s
	maxSteeringForce float64 // m/s²

	positionChanged navigation.PositionSignal
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	return p.position
}

// SetPosition moves the body and notifies position observers.
func (p *PhysicalBody) SetPosition(position vector.Vector2) *PhysicalBody {
	p.position = position
	p.positionChanged.Emit(position.Get())
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector2 {
	return p.velocity
}

func (p *PhysicalBody) SetVelocity(velocity vector.Vector2) *PhysicalBody {
	p.velocity = velocity
	return p
}

func (p PhysicalBody) GetRadius() float64 {
	return p.radius
}

func (p PhysicalBody) GetMaxSpeed() float64 {
	return p.maxSpeed
}

func (p PhysicalBody) GetMaxSteeringForce() float64 {
	return p.maxSteeringForce
}
