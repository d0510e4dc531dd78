package simulation

import (
	"github.com/bytearena/ecs"

	"github.com/basselfa/pedsim-ros/common/utils/vector"
	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

type groupAggregate struct {
	positionSum vector.Vector2
	velocitySum vector.Vector2
	count       int
}

// systemSteering computes each agent's steering force for this tick: the
// desired force towards the navigation target plus the social-force model's
// behavioral forces, each of which can be switched off per agent.
func systemSteering(sim *Simulation) {
	groups := collectGroups(sim)

	for _, entityresult := range sim.steeringView.Get() {
		steeringAspect := sim.CastSteering(entityresult.Components[sim.steeringComponent])
		physicalAspect := sim.CastPhysicalBody(entityresult.Components[sim.physicalBodyComponent])

		position := physicalAspect.GetPosition()
		velocity := physicalAspect.GetVelocity()

		force := vector.MakeNullVector2()

		if target, ok := steeringAspect.NavigationTarget(); ok {
			desired := target.Sub(position)
			if !desired.IsNull() {
				steer := desired.SetMag(physicalAspect.GetMaxSpeed()).Sub(velocity)
				force = force.Add(steer.MultScalar(sim.cfg.DesiredForceFactor))
			}
		}

		if steeringAspect.ForceEnabled(navigation.ForceSocial) {
			social := socialForce(sim, entityresult.Entity.GetID(), position)
			force = force.Add(social.MultScalar(sim.cfg.SocialForceFactor))
		}

		if steeringAspect.ForceEnabled(navigation.ForceRandom) {
			random := vector.MakeRandomVector2()
			force = force.Add(random.MultScalar(sim.cfg.RandomForceFactor))
		}

		if group, ok := groups[steeringAspect.GroupID()]; ok && group.count > 1 {
			if steeringAspect.ForceEnabled(navigation.ForceGroupCoherence) {
				coherence := groupCoherenceForce(sim, position, group)
				force = force.Add(coherence.MultScalar(sim.cfg.GroupCoherenceForceFactor))
			}

			if steeringAspect.ForceEnabled(navigation.ForceGroupGaze) {
				gaze := groupGazeForce(velocity, group)
				force = force.Add(gaze.MultScalar(sim.cfg.GroupGazeForceFactor))
			}
		}

		steeringAspect.pendingForce = force.Limit(physicalAspect.GetMaxSteeringForce())
	}
}

func collectGroups(sim *Simulation) map[int]groupAggregate {
	groups := make(map[int]groupAggregate)

	for _, entityresult := range sim.steeringView.Get() {
		steeringAspect := sim.CastSteering(entityresult.Components[sim.steeringComponent])
		if steeringAspect.GroupID() == 0 {
			continue
		}

		physicalAspect := sim.CastPhysicalBody(entityresult.Components[sim.physicalBodyComponent])

		group := groups[steeringAspect.GroupID()]
		group.positionSum = group.positionSum.Add(physicalAspect.GetPosition())
		group.velocitySum = group.velocitySum.Add(physicalAspect.GetVelocity())
		group.count++
		groups[steeringAspect.GroupID()] = group
	}

	return groups
}

// socialForce repels the agent from every neighbor within the social
// radius, harder the closer they stand.
func socialForce(sim *Simulation, selfID ecs.EntityID, position vector.Vector2) vector.Vector2 {
	force := vector.MakeNullVector2()

	for _, neighbor := range sim.index.neighbors(position, sim.cfg.SocialRadius) {
		if neighbor.entityID == selfID {
			continue
		}

		away := position.Sub(neighbor.position)
		distance := away.Mag()
		if distance <= 0 || distance >= sim.cfg.SocialRadius {
			continue
		}

		strength := (sim.cfg.SocialRadius - distance) / sim.cfg.SocialRadius
		force = force.Add(away.Normalize().MultScalar(strength))
	}

	return force
}

// groupCoherenceForce pulls a member back towards its group's centroid once
// it strays beyond the group radius.
func groupCoherenceForce(sim *Simulation, position vector.Vector2, group groupAggregate) vector.Vector2 {
	centroid := group.positionSum.DivScalar(float64(group.count))

	towards := centroid.Sub(position)
	if towards.Mag() <= sim.cfg.GroupRadius {
		return vector.MakeNullVector2()
	}

	return towards.Normalize()
}

// groupGazeForce aligns a member's walking direction with its group's.
func groupGazeForce(velocity vector.Vector2, group groupAggregate) vector.Vector2 {
	average := group.velocitySum.DivScalar(float64(group.count))
	return average.Sub(velocity)
}
