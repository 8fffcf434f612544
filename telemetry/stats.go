package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated simulation statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int64 `csv:"-"`
	WindowEndTick   int64 `csv:"window_end"`

	// Population at window end
	Alive int `csv:"alive"`

	// Deaths during the window
	Deaths int64 `csv:"deaths"`

	// Organic matter over the whole grid at window end
	TotalOrganic int64 `csv:"total_organic"`

	// Energy distribution over live bots at window end
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`
}

// ComputeEnergyStats aggregates the energy distribution. The input slice is
// sorted in place.
func ComputeEnergyStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	sort.Float64s(values)
	p10 = stat.Quantile(0.10, stat.Empirical, values, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, values, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("alive", s.Alive),
		slog.Int64("deaths", s.Deaths),
		slog.Int64("total_organic", s.TotalOrganic),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_std", s.EnergyStd),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"alive", s.Alive,
		"deaths", s.Deaths,
		"total_organic", s.TotalOrganic,
		"energy_mean", s.EnergyMean,
		"energy_std", s.EnergyStd,
		"energy_p10", s.EnergyP10,
		"energy_p50", s.EnergyP50,
		"energy_p90", s.EnergyP90,
	)
}
