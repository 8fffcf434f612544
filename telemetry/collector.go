package telemetry

// Sampler is the view of the engine the collector needs at window end.
type Sampler interface {
	Stats() (alive int, tick int64)
	Deaths() int64
	TotalOrganic() int64
	EnergyValues(dst []float64) []float64
}

// Collector produces WindowStats every windowTicks ticks.
type Collector struct {
	windowTicks     int64
	windowStartTick int64

	// Deaths are cumulative in the engine; track the last seen total so a
	// window reports its own delta.
	lastDeaths int64

	// Reusable sample buffer
	energyBuf []float64
}

// NewCollector creates a stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: int64(windowTicks),
		energyBuf:   make([]float64, 0, 1024),
	}
}

// ShouldFlush returns true once the current window is complete.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush samples the engine, produces the window's stats and starts the next
// window. Call only when ShouldFlush reports true.
func (c *Collector) Flush(s Sampler) WindowStats {
	alive, tick := s.Stats()

	deaths := s.Deaths()
	windowDeaths := deaths - c.lastDeaths
	c.lastDeaths = deaths

	c.energyBuf = s.EnergyValues(c.energyBuf[:0])
	mean, std, p10, p50, p90 := ComputeEnergyStats(c.energyBuf)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		Alive:           alive,
		Deaths:          windowDeaths,
		TotalOrganic:    s.TotalOrganic(),
		EnergyMean:      mean,
		EnergyStd:       std,
		EnergyP10:       p10,
		EnergyP50:       p50,
		EnergyP90:       p90,
	}

	c.windowStartTick = tick
	return stats
}
