package simulation

// systemPhysics integrates the pending steering forces: forward Euler on a
// point mass, velocity truncated by the agent's maximum speed. Position
// changes are published to whoever subscribed (queueing planners, queues).
func systemPhysics(sim *Simulation, dt float64) {
	for _, entityresult := range sim.steeringView.Get() {
		steeringAspect := sim.CastSteering(entityresult.Components[sim.steeringComponent])
		physicalAspect := sim.CastPhysicalBody(entityresult.Components[sim.physicalBodyComponent])

		velocity := physicalAspect.GetVelocity().Add(steeringAspect.pendingForce.MultScalar(dt))
		velocity = velocity.Limit(physicalAspect.GetMaxSpeed())
		physicalAspect.SetVelocity(velocity)

		if velocity.IsNull() {
			continue
		}

		position := physicalAspect.GetPosition().Add(velocity.MultScalar(dt))
		physicalAspect.SetPosition(position)
	}

	sim.index.rebuild(sim)
}
