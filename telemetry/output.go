package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/petri/config"
)

// OutputManager handles structured experiment output with CSV logging. A nil
// OutputManager is valid and discards everything.
type OutputManager struct {
	dir       string
	statsFile *os.File
	perfFile  *os.File

	statsHeaderWritten bool
	perfHeaderWritten  bool
}

// NewOutputManager creates an output manager rooted at dir. Returns nil if
// dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.statsFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML next to the CSVs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends a window stats record to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}
	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}
	return nil
}

// WritePerf appends a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int64) error {
	if om == nil {
		return nil
	}

	records := []PerfStatsCSV{stats.ToCSV(windowEnd)}
	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.statsFile != nil {
		if err := om.statsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
