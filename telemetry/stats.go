package telemetry

import (
	"log/slog"
	"sort"
)

// WindowStats holds aggregated ride statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Rider progress at window end
	Latitude float64 `csv:"latitude"`

	// Mailbox window
	MailboxCount int `csv:"mailboxes"`
	BoxesSpawned int `csv:"boxes_spawned"`
	BoxesDropped int `csv:"boxes_dropped"`

	// Item state at window end
	FlyingCount int `csv:"flying"`
	Holding     int `csv:"holding"`

	// Events during window
	Throws      int `csv:"throws"`
	Pickups     int `csv:"pickups"`
	BagDraws    int `csv:"bag_draws"`
	MissedGrabs int `csv:"missed_grabs"`

	// Completed flights (thrown then picked back up) during window
	FlightsEnded int     `csv:"flights_ended"`
	AirtimeMean  float64 `csv:"airtime_mean"`
	AirtimeP50   float64 `csv:"airtime_p50"`
	AirtimeP90   float64 `csv:"airtime_p90"`

	// Flying item heights sampled at window end
	HeightMean float64 `csv:"height_mean"`
	HeightP10  float64 `csv:"height_p10"`
	HeightP50  float64 `csv:"height_p50"`
	HeightP90  float64 `csv:"height_p90"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeFlightStats calculates mean and percentiles from sampled values.
func ComputeFlightStats(values []float64) (mean, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(n)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("latitude", s.Latitude),
		slog.Int("mailboxes", s.MailboxCount),
		slog.Int("boxes_spawned", s.BoxesSpawned),
		slog.Int("boxes_dropped", s.BoxesDropped),
		slog.Int("flying", s.FlyingCount),
		slog.Int("holding", s.Holding),
		slog.Int("throws", s.Throws),
		slog.Int("pickups", s.Pickups),
		slog.Int("bag_draws", s.BagDraws),
		slog.Int("missed_grabs", s.MissedGrabs),
		slog.Int("flights_ended", s.FlightsEnded),
		slog.Float64("airtime_mean", s.AirtimeMean),
		slog.Float64("airtime_p50", s.AirtimeP50),
		slog.Float64("airtime_p90", s.AirtimeP90),
		slog.Float64("height_mean", s.HeightMean),
		slog.Float64("height_p10", s.HeightP10),
		slog.Float64("height_p50", s.HeightP50),
		slog.Float64("height_p90", s.HeightP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"latitude", s.Latitude,
		"mailboxes", s.MailboxCount,
		"boxes_spawned", s.BoxesSpawned,
		"boxes_dropped", s.BoxesDropped,
		"flying", s.FlyingCount,
		"holding", s.Holding,
		"throws", s.Throws,
		"pickups", s.Pickups,
		"bag_draws", s.BagDraws,
		"missed_grabs", s.MissedGrabs,
		"flights_ended", s.FlightsEnded,
		"airtime_mean", s.AirtimeMean,
		"airtime_p50", s.AirtimeP50,
		"airtime_p90", s.AirtimeP90,
		"height_mean", s.HeightMean,
		"height_p10", s.HeightP10,
		"height_p50", s.HeightP50,
		"height_p90", s.HeightP90,
	)
}
