package simulation

import (
	"github.com/bytearena/ecs"

	"github.com/basselfa/pedsim-ros/simulation/navigation"
)

// Config carries the tuning of the social-force model. Force factors scale
// the individual steering behaviors before they are summed.
type Config struct {
	DesiredForceFactor        float64
	SocialForceFactor         float64
	RandomForceFactor         float64
	GroupCoherenceForceFactor float64
	GroupGazeForceFactor      float64

	// SocialRadius is the neighborhood distance within which agents repel
	// each other.
	SocialRadius float64

	// GroupRadius is the distance beyond which group coherence pulls a
	// member back towards its group.
	GroupRadius float64

	AgentRadius      float64
	MaxSpeed         float64
	MaxSteeringForce float64
}

func DefaultConfig() Config {
	return Config{
		DesiredForceFactor:        1.0,
		SocialForceFactor:         2.0,
		RandomForceFactor:         0.1,
		GroupCoherenceForceFactor: 0.3,
		GroupGazeForceFactor:      0.1,
		SocialRadius:              3.0,
		GroupRadius:               2.0,
		AgentRadius:               0.35,
		MaxSpeed:                  1.34,
		MaxSteeringForce:          2.0,
	}
}

// Simulation is the pedestrian world: an entity manager holding the agents,
// the waiting queues and waypoints they navigate, and the spatial index
// serving neighbor queries. Step advances everything by one tick.
type Simulation struct {
	ticknum int
	cfg     Config

	manager *ecs.Manager

	physicalBodyComponent *ecs.Component
	steeringComponent     *ecs.Component
	navigationComponent   *ecs.Component

	physicalView   *ecs.View
	steeringView   *ecs.View
	navigationView *ecs.View

	index     *spatialIndex
	idService *IDService

	queues          []*navigation.WaitingQueue
	waypointsByName map[string]navigation.Waypoint
}

func NewSimulation(cfg Config) *Simulation {
	manager := ecs.NewManager()

	sim := &Simulation{
		cfg:     cfg,
		manager: manager,

		physicalBodyComponent: manager.NewComponent(),
		steeringComponent:     manager.NewComponent(),
		navigationComponent:   manager.NewComponent(),

		index:     newSpatialIndex(),
		idService: NewIDService(),

		queues:          make([]*navigation.WaitingQueue, 0),
		waypointsByName: make(map[string]navigation.Waypoint),
	}

	sim.physicalView = manager.CreateView(sim.physicalBodyComponent)

	sim.steeringView = manager.CreateView(
		sim.steeringComponent,
		sim.physicalBodyComponent,
	)

	sim.navigationView = manager.CreateView(
		sim.navigationComponent,
		sim.steeringComponent,
		sim.physicalBodyComponent,
	)

	return sim
}

func (sim Simulation) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return sim.manager.GetEntityByID(id, tagelements...)
}

func (sim *Simulation) Ticknum() int {
	return sim.ticknum
}

func (sim *Simulation) Config() Config {
	return sim.cfg
}

func (sim *Simulation) IDService() *IDService {
	return sim.idService
}

// AddQueue registers a waiting queue, making it addressable as a waypoint.
func (sim *Simulation) AddQueue(queue *navigation.WaitingQueue) {
	sim.queues = append(sim.queues, queue)
	sim.waypointsByName[queue.Name()] = queue
}

// AddWaypoint registers a named destination agents can be routed over.
func (sim *Simulation) AddWaypoint(waypoint navigation.Waypoint) {
	sim.waypointsByName[waypoint.Name()] = waypoint
}

func (sim *Simulation) WaypointByName(name string) navigation.Waypoint {
	return sim.waypointsByName[name]
}

func (sim *Simulation) Queues() []*navigation.WaitingQueue {
	return sim.queues
}

// Step advances the world by dt seconds.
//
// Queues run first so that pass permissions and line movements of this tick
// are known before the planners are polled; physics integrates last and
// publishes the position changes the planners react to.
func (sim *Simulation) Step(dt float64) {
	sim.ticknum++

	systemQueues(sim, dt)
	systemNavigation(sim)
	systemSteering(sim)
	systemPhysics(sim, dt)
}
