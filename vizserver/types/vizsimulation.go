package types

import (
	"github.com/basselfa/pedsim-ros/common/types/scenariocontainer"
	"github.com/basselfa/pedsim-ros/common/utils"
)

// SimulationDescription is what the viz layer needs to know about a running
// simulation; implemented by simserver.Server.
type SimulationDescription interface {
	GetId() string
	GetName() string
	GetTps() int
	GetScenario() *scenariocontainer.ScenarioContainer
}

type VizSimulation struct {
	description SimulationDescription
	pool        *WatcherMap
}

func NewVizSimulation(description SimulationDescription) *VizSimulation {
	return &VizSimulation{
		description: description,
		pool:        NewWatcherMap(),
	}
}

func (vizsim *VizSimulation) GetId() string {
	return vizsim.description.GetId()
}

func (vizsim *VizSimulation) GetName() string {
	return vizsim.description.GetName()
}

func (vizsim *VizSimulation) GetTps() int {
	return vizsim.description.GetTps()
}

type VizInitMessageData struct {
	Tps      int                                  `json:"tps"`
	Scenario *scenariocontainer.ScenarioContainer `json:"scenario"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

// SetWatcher registers the watcher and sends it the scenario layout so the
// client can draw the static scene before frames arrive.
func (vizsim *VizSimulation) SetWatcher(watcher *Watcher) {
	vizsim.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			Tps:      vizsim.description.GetTps(),
			Scenario: vizsim.description.GetScenario(),
		},
	}

	err := watcher.conn.WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON; "+err.Error())
	}
}

func (vizsim *VizSimulation) RemoveWatcher(watcherid string) {
	vizsim.pool.Remove(watcherid)
}

func (vizsim *VizSimulation) GetNumberWatchers() int {
	return vizsim.pool.Size()
}
