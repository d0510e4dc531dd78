package vizserver

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apphandler "github.com/basselfa/pedsim-ros/vizserver/handler"
	"github.com/basselfa/pedsim-ros/vizserver/types"
)

type FetchSimulationsCbk func() ([]types.SimulationDescription, error)

// VizService exposes running simulations over HTTP: an index page and one
// websocket endpoint per simulation streaming tick frames.
type VizService struct {
	addr             string
	fetchSimulations FetchSimulationsCbk
	server           *http.Server
}

func NewVizService(addr string, fetchSimulations FetchSimulationsCbk) *VizService {
	return &VizService{
		addr:             addr,
		fetchSimulations: fetchSimulations,
	}
}

func (viz *VizService) ListenAndServe() error {
	descriptions, err := viz.fetchSimulations()
	if err != nil {
		return err
	}

	vizsims := types.NewVizSimulationMap()
	for _, description := range descriptions {
		vizsims.Set(
			description.GetId(),
			types.NewVizSimulation(description),
		)
	}

	logger := os.Stdout
	router := mux.NewRouter()
	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(vizsims)),
	)).Methods("GET")

	router.Handle("/simulation/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(vizsims)),
	)).Methods("GET")

	log.Println("VIZ Listening on " + viz.addr)

	viz.server = &http.Server{
		Addr:    viz.addr,
		Handler: router,
	}

	return viz.server.ListenAndServe()
}

func (viz *VizService) Close() {
	if viz.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	viz.server.Shutdown(ctx)
}
