package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// perfHeader is written once, when the log file is created or empty.
var perfHeader = []string{"timestamp", "algorithm", "path_length", "computation_time", "energy_used", "success"}

// PerfEntry is one line of the performance log.
type PerfEntry struct {
	Time       time.Time
	Algorithm  string
	PathLength int
	Elapsed    time.Duration
	EnergyUsed float64
	Success    bool
}

func (e PerfEntry) record() []string {
	return []string{
		strconv.FormatInt(e.Time.Unix(), 10),
		e.Algorithm,
		strconv.Itoa(e.PathLength),
		formatFloat(e.Elapsed.Seconds()),
		formatFloat(e.EnergyUsed),
		strconv.FormatBool(e.Success),
	}
}

// AppendPerfLog appends e to the CSV log at path, creating the file with a
// header row if needed. Timestamps are Unix seconds and computation_time is
// in seconds.
func AppendPerfLog(path string, e PerfEntry) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("export: open perf log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("export: stat perf log: %w", err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err = cw.Write(perfHeader); err != nil {
			return err
		}
	}
	if err = cw.Write(e.record()); err != nil {
		return err
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("export: write perf log: %w", err)
	}
	return f.Close()
}
