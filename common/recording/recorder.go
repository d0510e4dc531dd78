package recording

import (
	"github.com/basselfa/pedsim-ros/common/types/scenariocontainer"
)

// Recorder persists the frame stream of a simulation run so that it can be
// replayed later without re-running the simulation.
type Recorder interface {
	Record(UUID string, msg string) error
	RecordMetadata(UUID string, scenario *scenariocontainer.ScenarioContainer) error
	Close(UUID string)
	Stop()
}
