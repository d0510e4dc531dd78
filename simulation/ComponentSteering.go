package simulation

import (
	"github.com/basselfa/pedsim-ros/common/utils/vector"
)

func (sim Simulation) CastSteering(data interface{}) *Steering {
	return data.(*Steering)
}

// Steering holds the behavioral state feeding the force model: which
// forces are active, which navigation target the planners produced for this
// tick, and the resulting pending force to integrate.
type Steering struct {
	disabledForces map[string]bool

	navigationTarget    vector.Vector2
	hasNavigationTarget bool

	pendingForce vector.Vector2

	// groupID is 0 for agents walking alone; agents dissolved out of the
	// same cluster share an id and are subject to group forces.
	groupID int
}

func NewSteering(groupID int) *Steering {
	return &Steering{
		disabledForces: make(map[string]bool),
		groupID:        groupID,
	}
}

func (steering *Steering) DisableForce(name string) {
	steering.disabledForces[name] = true
}

func (steering *Steering) EnableForce(name string) {
	delete(steering.disabledForces, name)
}

func (steering *Steering) ForceEnabled(name string) bool {
	return !steering.disabledForces[name]
}

func (steering *Steering) SetNavigationTarget(target vector.Vector2) {
	steering.navigationTarget = target
	steering.hasNavigationTarget = true
}

func (steering *Steering) ClearNavigationTarget() {
	steering.hasNavigationTarget = false
}

func (steering *Steering) NavigationTarget() (vector.Vector2, bool) {
	return steering.navigationTarget, steering.hasNavigationTarget
}

func (steering *Steering) GroupID() int {
	return steering.groupID
}
