package telemetry

// Collector accumulates ride events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	throws       int
	pickups      int
	bagDraws     int
	missedGrabs  int
	boxesSpawned int
	boxesDropped int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		windowStartTick:     0,
	}
}

// RecordThrow records a released throw.
func (c *Collector) RecordThrow() {
	c.throws++
}

// RecordPickup records a flying item picked back up.
func (c *Collector) RecordPickup() {
	c.pickups++
}

// RecordBagDraw records a fresh envelope drawn from the bag.
func (c *Collector) RecordBagDraw() {
	c.bagDraws++
}

// RecordMissedGrab records a press that grabbed nothing.
func (c *Collector) RecordMissedGrab() {
	c.missedGrabs++
}

// RecordBoxes records mailbox churn for one tick.
func (c *Collector) RecordBoxes(spawned, dropped int) {
	c.boxesSpawned += spawned
	c.boxesDropped += dropped
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller provides the rider latitude, current mailbox and item counts,
// whether an item is held, completed flight airtimes from this window, and
// the heights of currently flying items.
func (c *Collector) Flush(
	currentTick int32,
	latitude float64,
	mailboxCount, flyingCount int,
	holding bool,
	airtimes, heights []float64,
) WindowStats {
	airMean, _, airP50, airP90 := ComputeFlightStats(airtimes)
	hMean, hP10, hP50, hP90 := ComputeFlightStats(heights)

	holdingInt := 0
	if holding {
		holdingInt = 1
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Latitude: latitude,

		MailboxCount: mailboxCount,
		BoxesSpawned: c.boxesSpawned,
		BoxesDropped: c.boxesDropped,

		FlyingCount: flyingCount,
		Holding:     holdingInt,

		Throws:      c.throws,
		Pickups:     c.pickups,
		BagDraws:    c.bagDraws,
		MissedGrabs: c.missedGrabs,

		FlightsEnded: len(airtimes),
		AirtimeMean:  airMean,
		AirtimeP50:   airP50,
		AirtimeP90:   airP90,

		HeightMean: hMean,
		HeightP10:  hP10,
		HeightP50:  hP50,
		HeightP90:  hP90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.throws = 0
	c.pickups = 0
	c.bagDraws = 0
	c.missedGrabs = 0
	c.boxesSpawned = 0
	c.boxesDropped = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
