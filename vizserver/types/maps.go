package types

import (
	commontypes "github.com/basselfa/pedsim-ros/common/types"
)

type WatcherMap struct {
	*commontypes.SyncMap
}

func NewWatcherMap() *WatcherMap {
	return &WatcherMap{
		commontypes.NewSyncMap(),
	}
}

func (wmap *WatcherMap) Get(id string) *Watcher {
	if res, ok := (wmap.GetGeneric(id)).(*Watcher); ok {
		return res
	}

	return nil
}

type VizSimulationMap struct {
	*commontypes.SyncMap
}

func NewVizSimulationMap() *VizSimulationMap {
	return &VizSimulationMap{
		commontypes.NewSyncMap(),
	}
}

func (smap *VizSimulationMap) Get(id string) *VizSimulation {
	if res, ok := (smap.GetGeneric(id)).(*VizSimulation); ok {
		return res
	}

	return nil
}
