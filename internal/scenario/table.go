package scenario

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// tableRow is the wire shape of one scenario in a table file. CSV columns
// and YAML keys share these names.
type tableRow struct {
	ScenarioID string `yaml:"scenario_id"`
	Season     string `yaml:"season"`
	StartDate  string `yaml:"start_date"`
	EndDate    string `yaml:"end_date"`
	HomeSqft   int    `yaml:"home_sqft"`
	Occupancy  int    `yaml:"occupancy"`
	Appliances string `yaml:"appliances"`
	TempsCSV   string `yaml:"temps_csv"`
	OutCSV     string `yaml:"out_csv"`
}

// LoadTable reads a scenario table (.csv, .yaml or .yml). Any malformed
// row fails the whole load: scenarios are validated before anything runs.
func LoadTable(path string) ([]Scenario, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return loadCSVTable(path)
	case ".yaml", ".yml":
		return loadYAMLTable(path)
	default:
		return nil, fmt.Errorf("unsupported scenario table extension %q", ext)
	}
}

func loadCSVTable(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read scenario table header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{
		"scenario_id", "season", "start_date", "end_date",
		"home_sqft", "occupancy", "appliances", "temps_csv", "out_csv",
	} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("scenario table missing column %q", name)
		}
	}

	var scenarios []Scenario
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read scenario table: %w", err)
		}

		sqft, err := strconv.Atoi(strings.TrimSpace(rec[col["home_sqft"]]))
		if err != nil {
			return nil, fmt.Errorf("scenario table line %d: home_sqft: %w", line, err)
		}
		occ, err := strconv.Atoi(strings.TrimSpace(rec[col["occupancy"]]))
		if err != nil {
			return nil, fmt.Errorf("scenario table line %d: occupancy: %w", line, err)
		}

		sc, err := fromRow(tableRow{
			ScenarioID: rec[col["scenario_id"]],
			Season:     rec[col["season"]],
			StartDate:  rec[col["start_date"]],
			EndDate:    rec[col["end_date"]],
			HomeSqft:   sqft,
			Occupancy:  occ,
			Appliances: rec[col["appliances"]],
			TempsCSV:   rec[col["temps_csv"]],
			OutCSV:     rec[col["out_csv"]],
		})
		if err != nil {
			return nil, fmt.Errorf("scenario table line %d: %w", line, err)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

func loadYAMLTable(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario table: %w", err)
	}
	var rows []tableRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse scenario table: %w", err)
	}

	scenarios := make([]Scenario, 0, len(rows))
	for i, row := range rows {
		sc, err := fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("scenario table entry %d: %w", i, err)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// fromRow normalizes one table row into a validated Scenario. The date
// range is aligned to whole output hours here: start 00:00, end 23:00.
func fromRow(row tableRow) (Scenario, error) {
	season, err := ParseSeason(row.Season)
	if err != nil {
		return Scenario{}, err
	}

	start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(row.StartDate), time.UTC)
	if err != nil {
		return Scenario{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(row.EndDate), time.UTC)
	if err != nil {
		return Scenario{}, fmt.Errorf("end_date: %w", err)
	}

	sc := Scenario{
		ID:         strings.TrimSpace(row.ScenarioID),
		Season:     season,
		Start:      start,
		End:        end.Add(23 * time.Hour),
		HomeSqft:   row.HomeSqft,
		Occupancy:  row.Occupancy,
		Appliances: ParseAppliances(row.Appliances),
		TempsCSV:   strings.TrimSpace(row.TempsCSV),
		OutCSV:     strings.TrimSpace(row.OutCSV),
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}
