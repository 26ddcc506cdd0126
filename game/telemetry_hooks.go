package game

import "log/slog"

// flushTelemetry flushes the stats window when due and routes the stats to
// the callback, the console, and the CSV sinks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	// Airtimes of flights that ended this window, plus a height snapshot of
	// everything still in the air.
	airtimes := g.flights.Drain()
	heights := make([]float64, 0, len(g.sim.Flying))
	for i := range g.sim.Flying {
		heights = append(heights, float64(g.sim.Flying[i].Y))
	}

	stats := g.collector.Flush(
		g.tick,
		float64(g.latitude),
		g.stream.Count(),
		len(g.sim.Flying),
		g.sim.Holding(),
		airtimes,
		heights,
	)
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
