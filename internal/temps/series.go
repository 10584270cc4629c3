// Package temps holds the hourly outdoor-temperature trace a scenario
// runs against.
package temps

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultTemp is substituted for hours missing from the trace. A gap in
// the temperature file must never abort a run.
const DefaultTemp = 72.0

const timestampLayout = "2006-01-02 15:04:05"

// Series maps exact hour timestamps (UTC) to temperature in °F.
type Series struct {
	byHour map[time.Time]float64
}

func FromMap(m map[time.Time]float64) *Series {
	s := &Series{byHour: make(map[time.Time]float64, len(m))}
	for t, v := range m {
		s.byHour[t] = v
	}
	return s
}

// Load reads a temperature CSV with columns date,time,temp. Unparsable
// rows are fatal; leniency is reserved for lookup, not ingestion.
func Load(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open temps: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read temps header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"date", "time", "temp"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("temps file missing column %q", name)
		}
	}

	s := &Series{byHour: make(map[time.Time]float64)}
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read temps: %w", err)
		}

		ts, err := time.ParseInLocation(timestampLayout,
			strings.TrimSpace(rec[col["date"]])+" "+strings.TrimSpace(rec[col["time"]]), time.UTC)
		if err != nil {
			return nil, fmt.Errorf("temps line %d: %w", line, err)
		}
		temp, err := strconv.ParseFloat(strings.TrimSpace(rec[col["temp"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("temps line %d: temp: %w", line, err)
		}
		s.byHour[ts] = temp
	}
	return s, nil
}

// At returns the temperature for an exact hour, or DefaultTemp when the
// trace has no entry for it.
func (s *Series) At(t time.Time) float64 {
	if v, ok := s.byHour[t]; ok {
		return v
	}
	return DefaultTemp
}

func (s *Series) Len() int {
	return len(s.byHour)
}
