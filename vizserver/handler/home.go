package handler

import (
	"net/http"
	"strconv"

	"github.com/basselfa/pedsim-ros/vizserver/types"
)

func Home(sims *types.VizSimulationMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h2>Crowd simulation viz</h2>"))

		for _, item := range sims.ToArrayGeneric() {
			if vizsim, ok := item.(*types.VizSimulation); ok {
				w.Write([]byte("<a href='/simulation/" + vizsim.GetId() + "/ws'>" + vizsim.GetName() + " (" + strconv.Itoa(vizsim.GetNumberWatchers()) + " watchers right now)</a><br />"))
			}
		}
	}
}
