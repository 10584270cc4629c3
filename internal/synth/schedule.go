package synth

import (
	"math/rand"
	"time"

	"github.com/Agrid-Dev/thermsynth/internal/scenario"
)

const (
	breakfastHour = 7
	lunchHour     = 11
	// Dinner lands on one hour in 18..20, chosen per day.
	dinnerBaseHour = 18

	// Probability that a day has a lunch slot at all, drawn from the
	// scenario-level stream.
	lunchSlotProb = 0.4

	showerHourEarly = 7
	showerHourLate  = 20

	showerTherms       = 0.10
	dryerThermsPerLoad = 0.30
)

// Meal event sizes in therms, before the occupancy factor.
var (
	breakfastSize = [2]float64{0.02, 0.025}
	lunchSize     = [2]float64{0.012, 0.018}
	dinnerSize    = [2]float64{0.025, 0.035}
)

var occupancyFactor = map[int]float64{
	1: 0.6,
	2: 0.8,
	3: 1.0,
	4: 1.2,
	5: 1.3,
}

func factorFor(occupancy int) float64 {
	if f, ok := occupancyFactor[occupancy]; ok {
		return f
	}
	return 1.0
}

// mealProbs are the per-slot firing probabilities evaluated against the
// day stream.
type mealProbs struct {
	breakfast float64
	lunch     float64
	dinner    float64
}

func probsFor(season scenario.Season, occupancy int) mealProbs {
	if season == scenario.SeasonWinter {
		// Winter raises meal presence uniformly, regardless of occupancy.
		return mealProbs{breakfast: 0.75, lunch: 0.4, dinner: 0.9}
	}
	p := mealProbs{breakfast: 0.6, lunch: 0.25, dinner: 0.9}
	if occupancy == 1 {
		p.breakfast = 0.30
		p.dinner = 0.80
	}
	return p
}

// dayPlan holds every event decision for one calendar day. It is built
// once per day; hour lookups during iteration never consume randomness.
type dayPlan struct {
	// cooking maps hour-of-day to the fired meal contribution in therms.
	cooking map[int]float64
	// showers records hour membership, not occupant counts: several
	// occupants landing on the same hour still contribute one shower's
	// worth. Preserved from the reference datasets.
	showers map[int]bool
}

// buildDayPlan consumes the scenario stream in a fixed order (lunch-slot
// toggle, dinner hour, one shower draw per occupant) and rolls meal
// presence and sizes on a fresh day stream in breakfast, lunch, dinner
// order.
func buildDayPlan(sc scenario.Scenario, day time.Time, scRand *rand.Rand) dayPlan {
	plan := dayPlan{
		cooking: make(map[int]float64),
		showers: make(map[int]bool),
	}

	if sc.Appliances.Stove {
		hasLunchSlot := scRand.Float64() < lunchSlotProb
		dinnerHour := dinnerBaseHour + scRand.Intn(3)

		probs := probsFor(sc.Season, sc.Occupancy)
		factor := factorFor(sc.Occupancy)
		rnd := dayRand(sc.ID, day, sc.Season == scenario.SeasonWinter)

		if rnd.Float64() < probs.breakfast {
			plan.cooking[breakfastHour] += uniform(rnd, breakfastSize[0], breakfastSize[1]) * factor
		}
		if hasLunchSlot && rnd.Float64() < probs.lunch {
			plan.cooking[lunchHour] += uniform(rnd, lunchSize[0], lunchSize[1]) * factor
		}
		if rnd.Float64() < probs.dinner {
			plan.cooking[dinnerHour] += uniform(rnd, dinnerSize[0], dinnerSize[1]) * factor
		}
	}

	if sc.Appliances.WaterHeater {
		for i := 0; i < sc.Occupancy; i++ {
			hour := showerHourEarly
			if scRand.Intn(2) == 1 {
				hour = showerHourLate
			}
			plan.showers[hour] = true
		}
	}

	return plan
}
