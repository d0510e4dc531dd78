package simulation

// systemQueues advances the head-of-line timers and republishes queue end
// positions that drifted as the last agent in line walked forward.
func systemQueues(sim *Simulation, dt float64) {
	for _, queue := range sim.queues {
		queue.Update(dt)
		queue.RefreshEndPosition()
	}
}
