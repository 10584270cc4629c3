package testutil

import (
	"time"

	"github.com/Agrid-Dev/thermsynth/internal/scenario"
	"github.com/Agrid-Dev/thermsynth/internal/synth"
)

// FixedTemperatureSource returns the same temperature for every hour.
// Put ONLY what multiple test packages need here.
type FixedTemperatureSource struct {
	Temp float64
}

func (f FixedTemperatureSource) At(time.Time) float64 { return f.Temp }

// MapTemperatureSource serves per-hour temperatures with a default for
// gaps, mirroring the production series behavior.
type MapTemperatureSource struct {
	Temps   map[time.Time]float64
	Default float64
}

func (m MapTemperatureSource) At(t time.Time) float64 {
	if v, ok := m.Temps[t]; ok {
		return v
	}
	return m.Default
}

// MemorySink is a reusable fake implementing ports.RecordSink.
type MemorySink struct {
	WriteCalled int
	Scenarios   []scenario.Scenario
	Tables      [][]synth.Record
	Err         error
}

func (s *MemorySink) Write(sc scenario.Scenario, records []synth.Record) error {
	s.WriteCalled++
	if s.Err != nil {
		return s.Err
	}
	s.Scenarios = append(s.Scenarios, sc)
	s.Tables = append(s.Tables, records)
	return nil
}
