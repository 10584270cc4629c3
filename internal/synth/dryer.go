package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/Agrid-Dev/thermsynth/internal/scenario"
)

// Dryer candidate windows: weekday evenings and weekend middays.
const (
	weekdayWindowStart = 19 // 19:00-21:59
	weekdayWindowEnd   = 22
	weekendWindowStart = 10 // 10:00-13:59
	weekendWindowEnd   = 14
)

// loadsPerWeek is round(occupancy/2) with ties to even, so one occupant
// runs no weekly load and five occupants run two. Floored at zero.
func loadsPerWeek(occupancy int) int {
	n := int(math.RoundToEven(float64(occupancy) / 2.0))
	if n < 0 {
		return 0
	}
	return n
}

type hourSlot struct {
	day  time.Time
	hour int
}

// dryerSchedule picks the load hours for the whole range before hourly
// iteration starts. Each 7-day block from the start date enumerates its
// candidate hours, shuffles them on the scenario stream and keeps the
// first loadsPerWeek. Blocks may extend past the end date; selections
// beyond it are simply never reached.
func dryerSchedule(sc scenario.Scenario, rnd *rand.Rand) map[time.Time]struct{} {
	loads := loadsPerWeek(sc.Occupancy)
	sched := make(map[time.Time]struct{})

	for week := sc.Start; !week.After(sc.End); week = week.AddDate(0, 0, 7) {
		var candidates []hourSlot
		for i := 0; i < 7; i++ {
			d := week.AddDate(0, 0, i)
			start, end := weekdayWindowStart, weekdayWindowEnd
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				start, end = weekendWindowStart, weekendWindowEnd
			}
			for h := start; h < end; h++ {
				candidates = append(candidates, hourSlot{day: d, hour: h})
			}
		}

		rnd.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for j := 0; j < loads && j < len(candidates); j++ {
			c := candidates[j]
			ts := time.Date(c.day.Year(), c.day.Month(), c.day.Day(), c.hour, 0, 0, 0, time.UTC)
			sched[ts] = struct{}{}
		}
	}
	return sched
}
