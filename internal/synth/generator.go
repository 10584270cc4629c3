// Package synth is the hourly synthesis engine: it composes a seasonal
// heating model with independent appliance-event models and a jitter
// layer into a deterministic-yet-randomized per-hour usage table.
package synth

import (
	"log/slog"
	"math"
	"time"

	"github.com/Agrid-Dev/thermsynth/internal/scenario"
)

// TemperatureSource resolves the ambient temperature for an exact hour.
// temps.Series is the production implementation.
type TemperatureSource interface {
	At(t time.Time) float64
}

// RecordSink consumes a completed hourly table. The sink implementations
// live in internal/sink; ports re-exports this interface.
type RecordSink interface {
	Write(sc scenario.Scenario, records []Record) error
}

// Generator synthesizes hourly usage tables. One Generator serves any
// number of scenarios: each Generate call derives its own randomness
// streams from Seed and the scenario id, so results do not depend on
// call order.
type Generator struct {
	Seed int64
	Log  *slog.Logger
}

func New(seed int64, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{Seed: seed, Log: log}
}

// Generate materializes the scenario's full hourly table in memory: one
// record per hour in [Start, End], ascending, no gaps. The run either
// completes fully or returns an error before any record exists.
func (g *Generator) Generate(sc scenario.Scenario, src TemperatureSource) ([]Record, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilTemperatureSource
	}

	rnd := scenarioRand(g.Seed, sc.ID)

	var dryer map[time.Time]struct{}
	if sc.Appliances.Dryer {
		dryer = dryerSchedule(sc, rnd)
		g.Log.Debug("dryer schedule computed",
			"scenario", sc.ID, "loads_per_week", loadsPerWeek(sc.Occupancy), "hours", len(dryer))
	}

	heatInWinter := sc.Season == scenario.SeasonWinter && sc.Appliances.Furnace
	baseHeat := 0.0
	if heatInWinter {
		baseHeat = BaseHeatingRate(sc.HomeSqft)
	}

	avgUsage := round6(TargetDailyAvg(sc.Season, sc.Occupancy, sc.HomeSqft) / 24.0)
	seasonStr := sc.Season.String()
	appliancesStr := sc.Appliances.String()

	hours := int(sc.End.Sub(sc.Start)/time.Hour) + 1
	records := make([]Record, 0, hours)

	var plan dayPlan
	var planDay time.Time

	for cur := sc.Start; !cur.After(sc.End); cur = cur.Add(time.Hour) {
		day := time.Date(cur.Year(), cur.Month(), cur.Day(), 0, 0, 0, 0, time.UTC)
		if !day.Equal(planDay) {
			plan = buildDayPlan(sc, day, rnd)
			planDay = day
		}

		temp := src.At(cur)

		usage := 0.0
		if heatInWinter {
			usage += HeatingUsage(temp, baseHeat)
		}
		// Appliance events run in both seasons and stack additively.
		usage += plan.cooking[cur.Hour()]
		if plan.showers[cur.Hour()] {
			usage += showerTherms
		}
		if _, ok := dryer[cur]; ok {
			usage += dryerThermsPerLoad
		}

		if usage > 0 {
			usage = withVariation(rnd, usage)
		}
		usage = round3(usage)
		if usage < 0 {
			usage = 0
		}

		records = append(records, Record{
			Date:       cur.Format("2006-01-02"),
			Time:       cur.Format("15:04:05"),
			Temp:       int(math.Round(temp)),
			Usage:      usage,
			AvgUsage:   avgUsage,
			Season:     seasonStr,
			HomeSqft:   sc.HomeSqft,
			Occupancy:  sc.Occupancy,
			Appliances: appliancesStr,
		})
	}

	return records, nil
}

// Run generates the scenario's table and hands it to sink. Callers that
// fan out to several sinks call Generate once and write each themselves.
func (g *Generator) Run(sc scenario.Scenario, src TemperatureSource, sink RecordSink) error {
	records, err := g.Generate(sc, src)
	if err != nil {
		return err
	}
	return sink.Write(sc, records)
}
