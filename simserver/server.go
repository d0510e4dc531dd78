package simserver

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	notify "github.com/bitly/go-notify"
	uuid "github.com/satori/go.uuid"
	"github.com/ttacon/chalk"

	"github.com/basselfa/pedsim-ros/common/recording"
	"github.com/basselfa/pedsim-ros/common/types/scenariocontainer"
	"github.com/basselfa/pedsim-ros/common/utils"
	"github.com/basselfa/pedsim-ros/simulation"
)

type TearDownCallback func()

// Server drives a simulation at a fixed tick rate and publishes a JSON
// snapshot of every tick on the "viz:message:<id>" notification channel.
type Server struct {
	id          string
	scenario    *scenariocontainer.ScenarioContainer
	tickspersec int
	stopticking chan struct{}

	sim      *simulation.Simulation
	recorder recording.Recorder

	tearDownCallbacks []TearDownCallback
}

func NewServer(scenario *scenariocontainer.ScenarioContainer, sim *simulation.Simulation, tickspersec int) *Server {
	return &Server{
		id:          uuid.NewV4().String(),
		scenario:    scenario,
		tickspersec: tickspersec,
		stopticking: make(chan struct{}),

		sim:      sim,
		recorder: recording.MakeEmptyRecorder(),

		tearDownCallbacks: make([]TearDownCallback, 0),
	}
}

func (server *Server) SetRecorder(recorder recording.Recorder) {
	server.recorder = recorder
}

func (server *Server) GetId() string {
	return server.id
}

func (server *Server) GetName() string {
	return server.scenario.Name
}

func (server *Server) GetScenario() *scenariocontainer.ScenarioContainer {
	return server.scenario
}

func (server *Server) GetTps() int {
	return server.tickspersec
}

func (server *Server) GetSimulation() *simulation.Simulation {
	return server.sim
}

// Start launches the tick loop and returns a channel that is closed over
// when the loop stops.
func (server *Server) Start() chan interface{} {
	log.Println("Simulation " + server.GetName() + " (" + server.id + ") starting at " + strconv.Itoa(server.tickspersec) + " tps")

	server.recorder.RecordMetadata(server.id, server.scenario)
	server.startTicking()

	block := make(chan interface{})
	notify.Start("sim:stopticking", block)

	return block
}

func (server *Server) Stop() {
	close(server.stopticking)
}

func (server *Server) startTicking() {
	go func() {
		tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
		ticker := time.Tick(tickduration)

		for {
			select {
			case <-server.stopticking:
				{
					log.Println("Received stop ticking signal")
					notify.Post("sim:stopticking", nil)
					return
				}
			case <-ticker:
				{
					server.DoTick()
				}
			}
		}
	}()
}

func (server *Server) DoTick() {
	dt := 1.0 / float64(server.tickspersec)
	server.sim.Step(dt)

	ticknum := server.sim.Ticknum()
	if ticknum%server.tickspersec == 0 {
		fmt.Print(chalk.Yellow)
		log.Println("######## Tick #####", ticknum, chalk.Reset)
	}

	snapshot := server.sim.Snapshot()
	data, err := json.Marshal(snapshot)
	if err != nil {
		utils.Error("simserver", "Could not marshal snapshot; "+err.Error())
		return
	}

	server.recorder.Record(server.id, string(data))
	notify.PostTimeout("viz:message:"+server.id, string(data), time.Millisecond)
}

func (server *Server) AddTearDownCall(cbk TearDownCallback) {
	server.tearDownCallbacks = append(server.tearDownCallbacks, cbk)
}

func (server *Server) TearDown() {
	log.Println("simserver::TearDown()")

	server.recorder.Close(server.id)
	server.recorder.Stop()

	for _, cbk := range server.tearDownCallbacks {
		cbk()
	}
}
