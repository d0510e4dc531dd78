package recording

import (
	"github.com/basselfa/pedsim-ros/common/types/scenariocontainer"
)

type EmptyRecorder struct{}

func MakeEmptyRecorder() EmptyRecorder {
	return EmptyRecorder{}
}

func (r EmptyRecorder) Record(UUID string, msg string) error {
	return nil
}

func (r EmptyRecorder) RecordMetadata(UUID string, scenario *scenariocontainer.ScenarioContainer) error {
	return nil
}

func (r EmptyRecorder) Close(UUID string) {}
func (r EmptyRecorder) Stop()             {}
