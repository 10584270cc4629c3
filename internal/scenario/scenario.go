package scenario

import (
	"fmt"
	"strings"
	"time"
)

// Season is an integer enum.
type Season int

const (
	SeasonUnknown Season = iota
	SeasonSummer
	SeasonWinter
)

func (s Season) Valid() bool {
	return s == SeasonSummer || s == SeasonWinter
}

func (s Season) String() string {
	switch s {
	case SeasonSummer:
		return "summer"
	case SeasonWinter:
		return "winter"
	default:
		return "unknown"
	}
}

// ParseSeason normalizes case, so "Winter" from a hand-edited table works.
func ParseSeason(s string) (Season, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "summer":
		return SeasonSummer, nil
	case "winter":
		return SeasonWinter, nil
	default:
		return SeasonUnknown, fmt.Errorf("invalid season: %q", s)
	}
}

// Appliances is the explicit flag set the engine sees. The free-text
// appliance field from scenario tables only exists at the ingestion
// boundary; ParseAppliances is the one place that interprets it.
type Appliances struct {
	Furnace     bool
	Stove       bool
	WaterHeater bool
	Dryer       bool
}

// ParseAppliances matches the four known tokens by substring containment
// on the lowercased input ("furnace+stove", "stove, dryer", ...).
// Unrecognized text is ignored.
func ParseAppliances(s string) Appliances {
	s = strings.ToLower(s)
	return Appliances{
		Furnace:     strings.Contains(s, "furnace"),
		Stove:       strings.Contains(s, "stove"),
		WaterHeater: strings.Contains(s, "water_heater"),
		Dryer:       strings.Contains(s, "dryer"),
	}
}

// String renders the installed tokens "+"-joined in a fixed order, which
// is the form echoed into every output row.
func (a Appliances) String() string {
	var tokens []string
	if a.Furnace {
		tokens = append(tokens, "furnace")
	}
	if a.Stove {
		tokens = append(tokens, "stove")
	}
	if a.WaterHeater {
		tokens = append(tokens, "water_heater")
	}
	if a.Dryer {
		tokens = append(tokens, "dryer")
	}
	return strings.Join(tokens, "+")
}

// Scenario is one fully specified simulated household and date range.
// Immutable once constructed; one Scenario produces one output table.
type Scenario struct {
	ID     string
	Season Season

	// Start is the first output hour (start date at 00:00) and End the
	// last (end date at 23:00), both inclusive. All timestamps are UTC.
	Start time.Time
	End   time.Time

	HomeSqft   int
	Occupancy  int
	Appliances Appliances

	// Collaborator references, resolved by the driver.
	TempsCSV string
	OutCSV   string
}

func (sc Scenario) Validate() error {
	if sc.ID == "" {
		return ErrEmptyID
	}
	if !sc.Season.Valid() {
		return ErrInvalidSeason
	}
	if sc.End.Before(sc.Start) {
		return ErrInvalidDateRange
	}
	if sc.HomeSqft <= 0 {
		return ErrInvalidHomeSqft
	}
	if sc.Occupancy <= 0 {
		return ErrInvalidOccupancy
	}
	return nil
}
