package synth

import "strconv"

// Header is the output column order shared by every scenario table.
var Header = []string{
	"date", "time", "temp", "usage_therms", "avg_usage",
	"season", "home_sqft", "occupancy", "appliances",
}

// Record is one output hour. Append-only: records are never mutated
// after assembly. Numeric values stay numeric here; Fields applies the
// fixed text formatting the downstream consumers parse against.
type Record struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM:SS

	Temp     int
	Usage    float64
	AvgUsage float64

	Season     string
	HomeSqft   int
	Occupancy  int
	Appliances string
}

// Fields renders the row in Header order: usage to exactly 3 decimals,
// avg_usage to exactly 6, temp as an integer string.
func (r Record) Fields() []string {
	return []string{
		r.Date,
		r.Time,
		strconv.Itoa(r.Temp),
		strconv.FormatFloat(r.Usage, 'f', 3, 64),
		strconv.FormatFloat(r.AvgUsage, 'f', 6, 64),
		r.Season,
		strconv.Itoa(r.HomeSqft),
		strconv.Itoa(r.Occupancy),
		r.Appliances,
	}
}
