package telemetry

// FlightTracker measures how long thrown items stay out before being picked
// back up. Launch ticks are kept in throw order, mirroring the flying pile,
// so a pickup is identified by the index it occupied there.
type FlightTracker struct {
	launchTicks []int32
	airtimes    []float64 // completed flights, drained once per window
	dt          float32
}

// NewFlightTracker creates a tracker. dt is seconds per tick.
func NewFlightTracker(dt float32) *FlightTracker {
	return &FlightTracker{dt: dt}
}

// RecordThrow registers a throw at the given tick. Must be called once per
// throw, in the same order the items enter the flying pile.
func (ft *FlightTracker) RecordThrow(tick int32) {
	ft.launchTicks = append(ft.launchTicks, tick)
}

// RecordPickup completes the flight of the item at the given flying-pile
// index and records its airtime. Out-of-range indexes are ignored.
func (ft *FlightTracker) RecordPickup(index int, tick int32) {
	if index < 0 || index >= len(ft.launchTicks) {
		return
	}
	airtime := float64(tick-ft.launchTicks[index]) * float64(ft.dt)
	ft.launchTicks = append(ft.launchTicks[:index], ft.launchTicks[index+1:]...)
	ft.airtimes = append(ft.airtimes, airtime)
}

// InFlight returns the number of flights still open.
func (ft *FlightTracker) InFlight() int {
	return len(ft.launchTicks)
}

// Drain returns the airtimes completed since the last call and clears them.
func (ft *FlightTracker) Drain() []float64 {
	out := ft.airtimes
	ft.airtimes = nil
	return out
}
