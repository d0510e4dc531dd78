package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	notify "github.com/bitly/go-notify"
	uuid "github.com/satori/go.uuid"
	"github.com/urfave/cli"

	"github.com/basselfa/pedsim-ros/common"
	"github.com/basselfa/pedsim-ros/common/assert"
	"github.com/basselfa/pedsim-ros/common/healthcheck"
	"github.com/basselfa/pedsim-ros/common/recording"
	"github.com/basselfa/pedsim-ros/common/replay"
	"github.com/basselfa/pedsim-ros/common/types/scenariocontainer"
	"github.com/basselfa/pedsim-ros/common/utils"
	"github.com/basselfa/pedsim-ros/simserver"
	"github.com/basselfa/pedsim-ros/simulation"
	"github.com/basselfa/pedsim-ros/vizserver"
	"github.com/basselfa/pedsim-ros/vizserver/types"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	app := makeapp()
	app.Run(os.Args)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "crowd-server"
	app.Description = "Pedestrian crowd simulation server"

	app.Commands = []cli.Command{
		{
			Name:    "run",
			Aliases: []string{"r"},
			Usage:   "Run a scenario",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scenario", Value: "", Usage: "Path to the scenario JSON file; required"},
				cli.IntFlag{Name: "tps", Value: 20, Usage: "Number of ticks per second"},
				cli.IntFlag{Name: "port", Value: 8080, Usage: "Port serving the viz"},
				cli.StringFlag{Name: "record-file", Value: "", Usage: "Destination file for recording the run"},
				cli.StringFlag{Name: "health-port", Value: "", Usage: "Port serving the healthcheck endpoint; disabled when empty"},
			},
			Action: func(c *cli.Context) error {
				runAction(c.String("scenario"), c.Int("tps"), c.Int("port"), c.String("record-file"), c.String("health-port"))
				return nil
			},
		},
		{
			Name:  "replay",
			Usage: "Replay a recorded run",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "file", Value: "", Usage: "Path to the record archive; required"},
				cli.IntFlag{Name: "tps", Value: 20, Usage: "Playback ticks per second"},
				cli.IntFlag{Name: "port", Value: 8080, Usage: "Port serving the viz"},
			},
			Action: func(c *cli.Context) error {
				replayAction(c.String("file"), c.Int("tps"), c.Int("port"))
				return nil
			},
		},
	}

	return app
}

func runAction(scenariopath string, tps int, port int, recordFile string, healthport string) {
	if scenariopath == "" {
		log.Fatalln("Please specify a scenario file using --scenario")
	}

	assert.Assert(tps > 0, "tps must be positive")

	scenario, err := scenariocontainer.LoadScenario(scenariopath)
	if err != nil {
		utils.FailWith(err)
	}

	if err := scenario.Validate(); err != nil {
		utils.FailWith(err)
	}

	sim, err := simulation.NewSimulationFromScenario(scenario, simulation.DefaultConfig())
	if err != nil {
		utils.FailWith(err)
	}

	srv := simserver.NewServer(scenario, sim, tps)

	if recordFile != "" {
		srv.SetRecorder(recording.MakeSingleSimulationRecorder(recordFile))
	}

	go func() {
		<-common.SignalHandler()
		utils.Debug("sighandler", "RECEIVED SHUTDOWN SIGNAL; closing.")
		srv.Stop()
	}()

	vizservice := vizserver.NewVizService(
		"0.0.0.0:"+strconv.Itoa(port),
		func() ([]types.SimulationDescription, error) {
			return []types.SimulationDescription{srv}, nil
		},
	)

	go func() {
		err := vizservice.ListenAndServe()
		if err != nil {
			utils.Warn("viz-server", err.Error())
		}
	}()

	srv.AddTearDownCall(func() {
		vizservice.Close()
	})

	if healthport != "" {
		healthserver := healthcheck.NewHealthCheckServer(healthport)
		healthserver.Register("simulation", func() (error, bool) {
			return nil, sim.Ticknum() > 0
		})
		go healthserver.Listen()
	}

	<-srv.Start()
	srv.TearDown()
}

// replayDescription stands in for a live simulation when serving a record.
type replayDescription struct {
	id       string
	tps      int
	scenario *scenariocontainer.ScenarioContainer
}

func (desc *replayDescription) GetId() string   { return desc.id }
func (desc *replayDescription) GetName() string { return desc.scenario.Name + " (replay)" }
func (desc *replayDescription) GetTps() int     { return desc.tps }
func (desc *replayDescription) GetScenario() *scenariocontainer.ScenarioContainer {
	return desc.scenario
}

func replayAction(filename string, tps int, port int) {
	if filename == "" {
		log.Fatalln("Please specify a record archive using --file")
	}

	assert.Assert(tps > 0, "tps must be positive")

	replayer, err := replay.NewReplayer(filename, uuid.NewV4().String())
	if err != nil {
		utils.FailWith(err)
	}

	rawMetadata, err := replayer.ReadMetadata()
	if err != nil {
		utils.FailWith(err)
	}

	var metadata recording.RecordMetadata
	if err := json.Unmarshal([]byte(rawMetadata), &metadata); err != nil {
		utils.FailWith(err)
	}

	desc := &replayDescription{
		id:       replayer.UUID,
		tps:      tps,
		scenario: metadata.Scenario,
	}

	vizservice := vizserver.NewVizService(
		"0.0.0.0:"+strconv.Itoa(port),
		func() ([]types.SimulationDescription, error) {
			return []types.SimulationDescription{desc}, nil
		},
	)

	go func() {
		err := vizservice.ListenAndServe()
		if err != nil {
			utils.Warn("viz-server", err.Error())
		}
	}()

	stop := make(chan struct{})
	go func() {
		tickduration := time.Duration((1000000 / time.Duration(tps)) * time.Microsecond)
		frames := replayer.Read()

		for {
			select {
			case <-stop:
				return
			case frame := <-frames:
				{
					if frame == nil {
						utils.Debug("replay", "end of record")
						return
					}

					notify.PostTimeout("viz:message:"+frame.UUID, frame.Line, time.Millisecond)
					<-time.NewTimer(tickduration).C
				}
			}
		}
	}()

	<-common.SignalHandler()
	utils.Debug("sighandler", "RECEIVED SHUTDOWN SIGNAL; closing.")
	close(stop)
	replayer.Stop()
	vizservice.Close()
}
