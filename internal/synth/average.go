package synth

import "github.com/Agrid-Dev/thermsynth/internal/scenario"

// Daily therm targets backing the avg_usage column. They label the
// output for downstream consumers and never feed back into the hourly
// synthesis.
var (
	summerDailyByOccupancy = map[int]float64{
		1: 0.20,
		2: 0.35,
		3: 0.50,
		4: 0.60,
		5: 0.70,
	}

	winterDailyBySqft = map[int]float64{
		1000: 2.0,
		1200: 2.25,
		1400: 2.5,
		1600: 2.7,
		1800: 3.0,
		2000: 3.0,
		2200: 3.5,
		2400: 3.8,
		2600: 4.1,
		2800: 4.4,
		3000: 4.75,
	}
)

// TargetDailyAvg returns the expected daily total in therms: summer keyed
// by occupancy, winter by floor area, with fixed fallbacks for unlisted
// households.
func TargetDailyAvg(season scenario.Season, occupancy, homeSqft int) float64 {
	if season == scenario.SeasonSummer {
		if v, ok := summerDailyByOccupancy[occupancy]; ok {
			return v
		}
		return 0.50
	}
	if v, ok := winterDailyBySqft[homeSqft]; ok {
		return v
	}
	return 3.0
}
