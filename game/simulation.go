package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mailride/telemetry"
)

// Update runs input and one simulation tick (windowed mode). The perf tick
// stays open across Draw, which times the draw phase and closes it.
func (g *Game) Update() {
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	if g.paused {
		return
	}

	g.step(rl.GetFrameTime())
}

// UpdateHeadless runs fixed-dt simulation ticks without graphics.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.perfCollector.StartTick()
		g.step(g.dt)
		g.perfCollector.EndTick()
	}
}

// step advances the world by dt seconds: flying items integrate, the rider
// advances around the ring, the mailbox window follows, and telemetry
// flushes on window boundaries.
func (g *Game) step(dt float32) {
	g.perfCollector.StartPhase(telemetry.PhaseItems)
	g.sim.Step(dt)

	g.perfCollector.StartPhase(telemetry.PhaseMailboxes)
	g.latitude += g.rideSpeed * dt
	spawned, dropped := g.stream.Tick(g.latitude)
	g.collector.RecordBoxes(spawned, dropped)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.tick++
}
