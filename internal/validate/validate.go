// Package validate checks generated output tables against the format and
// ordering guarantees the generator makes.
package validate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Agrid-Dev/thermsynth/internal/synth"
)

// Report summarizes one generated table. Problems is empty for a
// well-formed file.
type Report struct {
	Path string
	Rows int

	// ZeroHourPct is the share of hours with exactly zero usage; sparse
	// tables are the expected shape for summer scenarios.
	ZeroHourPct float64
	// MeanDailyTotal is the mean of per-date usage sums in therms.
	MeanDailyTotal float64

	Problems []string
}

func (r Report) OK() bool { return len(r.Problems) == 0 }

// Check reads a full output table and verifies: header shape, ascending
// gap-free hour sequence, usage >= 0 with exactly 3 decimal digits,
// constant avg_usage with exactly 6, and integer-formatted temperatures.
// File-level read failures are returned as errors; content findings land
// in Report.Problems.
func Check(path string) (Report, error) {
	rep := Report{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return rep, fmt.Errorf("open output: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return rep, fmt.Errorf("read output header: %w", err)
	}
	if !equalFields(header, synth.Header) {
		rep.Problems = append(rep.Problems, fmt.Sprintf("header %v, want %v", header, synth.Header))
		return rep, nil
	}

	var (
		prev       time.Time
		firstAvg   string
		zeroHours  int
		dailyTotal = map[string]float64{}
	)

	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rep, fmt.Errorf("read output: %w", err)
		}
		rep.Rows++

		ts, err := time.ParseInLocation("2006-01-02 15:04:05", rec[0]+" "+rec[1], time.UTC)
		if err != nil {
			rep.Problems = append(rep.Problems, fmt.Sprintf("line %d: bad timestamp %q %q", line, rec[0], rec[1]))
			continue
		}
		if rep.Rows > 1 && !ts.Equal(prev.Add(time.Hour)) {
			rep.Problems = append(rep.Problems, fmt.Sprintf("line %d: hour sequence broken: %s after %s", line, ts, prev))
		}
		prev = ts

		if _, err := strconv.Atoi(rec[2]); err != nil {
			rep.Problems = append(rep.Problems, fmt.Sprintf("line %d: temp %q is not an integer", line, rec[2]))
		}

		usage, ok := parseFixed(rec[3], 3)
		if !ok {
			rep.Problems = append(rep.Problems, fmt.Sprintf("line %d: usage_therms %q is not a 3-decimal value", line, rec[3]))
		} else {
			if usage < 0 {
				rep.Problems = append(rep.Problems, fmt.Sprintf("line %d: negative usage %q", line, rec[3]))
			}
			if usage == 0 {
				zeroHours++
			}
			dailyTotal[rec[0]] += usage
		}

		if _, ok := parseFixed(rec[4], 6); !ok {
			rep.Problems = append(rep.Problems, fmt.Sprintf("line %d: avg_usage %q is not a 6-decimal value", line, rec[4]))
		}
		if firstAvg == "" {
			firstAvg = rec[4]
		} else if rec[4] != firstAvg {
			rep.Problems = append(rep.Problems, fmt.Sprintf("line %d: avg_usage %q differs from %q", line, rec[4], firstAvg))
		}
	}

	if rep.Rows > 0 {
		rep.ZeroHourPct = float64(zeroHours) / float64(rep.Rows) * 100
	}
	if len(dailyTotal) > 0 {
		var sum float64
		for _, v := range dailyTotal {
			sum += v
		}
		rep.MeanDailyTotal = sum / float64(len(dailyTotal))
	}
	return rep, nil
}

// parseFixed parses a non-negative-width fixed decimal with exactly
// `places` fraction digits.
func parseFixed(s string, places int) (float64, bool) {
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || len(frac) != places || whole == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.TrimSpace(a[i]) != b[i] {
			return false
		}
	}
	return true
}
