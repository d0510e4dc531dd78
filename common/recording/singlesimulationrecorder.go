package recording

import (
	"encoding/json"
	"time"

	"github.com/basselfa/pedsim-ros/common/types/scenariocontainer"
	"github.com/basselfa/pedsim-ros/common/utils"
)

type RecordMetadata struct {
	Scenario *scenariocontainer.ScenarioContainer `json:"scenario"`
	Date     string                               `json:"date"`
}

type SingleSimulationRecorder struct {
	buffer         string
	filename       string
	recordMetadata *RecordMetadata
}

func MakeSingleSimulationRecorder(filename string) Recorder {

	return &SingleSimulationRecorder{
		buffer:         "",
		filename:       filename,
		recordMetadata: nil,
	}
}

func (r *SingleSimulationRecorder) Stop() {}

func (r *SingleSimulationRecorder) Close(UUID string) {
	if r.recordMetadata == nil {
		panic("Missing RecordMetadata")
	}

	metadata, err := json.Marshal(*r.recordMetadata)
	utils.Check(err, "Could not serialize RecordMetadata")

	files := []ArchiveFile{
		{
			Name: "RecordMetadata",
			Body: string(metadata),
		},
		{
			Name: "Record",
			Body: r.buffer,
		},
	}

	err = MakeArchive(r.filename, files)
	utils.CheckWithFunc(err, func() string {
		return "could not create record archive: " + err.Error()
	})

	utils.Debug("SingleSimulationRecorder", "wrote record archive "+r.filename)
}

func (r *SingleSimulationRecorder) RecordMetadata(UUID string, scenario *scenariocontainer.ScenarioContainer) error {
	r.recordMetadata = &RecordMetadata{
		Scenario: scenario,
		Date:     time.Now().Format(time.RFC3339),
	}

	utils.Debug("SingleSimulationRecorder", "created RecordMetadata")

	return nil
}

func (r *SingleSimulationRecorder) Record(UUID string, msg string) error {
	r.buffer += msg + "\n"

	return nil
}
