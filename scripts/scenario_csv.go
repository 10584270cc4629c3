package main

import (
	"fmt"
	"math"
	"time"

	"github.com/Agrid-Dev/thermsynth/internal/scenario"
	"github.com/Agrid-Dev/thermsynth/internal/sink"
	"github.com/Agrid-Dev/thermsynth/internal/synth"
)

// Generates one demo winter scenario against a synthetic cold snap and
// writes it to thermsynth_demo.csv. Handy for eyeballing the hourly
// pattern without a scenario table.

type sineTemps struct{}

// Daily swing around 38°F so every heating band below 70°F gets hit.
func (sineTemps) At(t time.Time) float64 {
	return 38 + 12*math.Sin(2*math.Pi*float64(t.Hour())/24)
}

func GenerateDemoScenario(filename string) error {
	start := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	sc := scenario.Scenario{
		ID:         "demo_winter_1800",
		Season:     scenario.SeasonWinter,
		Start:      start,
		End:        start.AddDate(0, 0, 6).Add(23 * time.Hour),
		HomeSqft:   1800,
		Occupancy:  3,
		Appliances: scenario.ParseAppliances("furnace+stove+water_heater+dryer"),
		OutCSV:     filename,
	}

	gen := synth.New(synth.DefaultSeed, nil)
	records, err := gen.Generate(sc, sineTemps{})
	if err != nil {
		return fmt.Errorf("failed to generate scenario: %v", err)
	}

	if err := (sink.CSV{}).Write(sc, records); err != nil {
		return fmt.Errorf("failed to write CSV file: %v", err)
	}

	var total float64
	for _, r := range records {
		total += r.Usage
	}
	fmt.Printf("wrote %d rows to %s (%.3f therms total)\n", len(records), filename, total)
	return nil
}

func main() {
	if err := GenerateDemoScenario("thermsynth_demo.csv"); err != nil {
		fmt.Println(err)
	}
}
