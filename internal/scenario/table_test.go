package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const csvTable = `scenario_id,season,start_date,end_date,home_sqft,occupancy,appliances,temps_csv,out_csv
summer_p1,Summer,2025-08-01,2025-08-31,1000,1,STOVE,temps_aug.csv,out_summer_p1.csv
winter_1800,winter,2025-01-01,2025-01-31,1800,4,furnace+stove+water_heater+dryer,temps_jan.csv,out_winter_1800.csv
`

func TestLoadTableCSV(t *testing.T) {
	path := writeFile(t, "scenarios.csv", csvTable)

	scenarios, err := LoadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(scenarios))
	}

	sc := scenarios[0]
	if sc.ID != "summer_p1" {
		t.Errorf("id = %q", sc.ID)
	}
	if sc.Season != SeasonSummer {
		t.Errorf("season = %v, want summer (case-normalized)", sc.Season)
	}
	if !sc.Appliances.Stove || sc.Appliances.Furnace {
		t.Errorf("appliances = %+v, want stove only (case-normalized)", sc.Appliances)
	}
	wantStart := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.August, 31, 23, 0, 0, 0, time.UTC)
	if !sc.Start.Equal(wantStart) || !sc.End.Equal(wantEnd) {
		t.Errorf("range = [%v, %v], want [%v, %v]", sc.Start, sc.End, wantStart, wantEnd)
	}

	sc = scenarios[1]
	if sc.HomeSqft != 1800 || sc.Occupancy != 4 {
		t.Errorf("sqft/occupancy = %d/%d", sc.HomeSqft, sc.Occupancy)
	}
	if sc.TempsCSV != "temps_jan.csv" || sc.OutCSV != "out_winter_1800.csv" {
		t.Errorf("paths = %q, %q", sc.TempsCSV, sc.OutCSV)
	}
}

func TestLoadTableYAML(t *testing.T) {
	path := writeFile(t, "scenarios.yaml", `
- scenario_id: winter_1000
  season: winter
  start_date: "2025-01-01"
  end_date: "2025-01-07"
  home_sqft: 1000
  occupancy: 2
  appliances: furnace+stove
  temps_csv: temps_jan.csv
  out_csv: out_winter_1000.csv
`)

	scenarios, err := LoadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(scenarios))
	}
	if scenarios[0].Season != SeasonWinter || !scenarios[0].Appliances.Furnace {
		t.Fatalf("scenario = %+v", scenarios[0])
	}
}

func TestLoadTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errPart string
	}{
		{
			name:    "unsupported extension",
			file:    "scenarios.toml",
			content: "",
			errPart: "unsupported scenario table extension",
		},
		{
			name:    "missing column",
			file:    "scenarios.csv",
			content: "scenario_id,season\ns1,summer\n",
			errPart: "missing column",
		},
		{
			name: "bad date",
			file: "scenarios.csv",
			content: "scenario_id,season,start_date,end_date,home_sqft,occupancy,appliances,temps_csv,out_csv\n" +
				"s1,summer,08/01/2025,2025-08-31,1000,1,stove,t.csv,o.csv\n",
			errPart: "start_date",
		},
		{
			name: "bad occupancy",
			file: "scenarios.csv",
			content: "scenario_id,season,start_date,end_date,home_sqft,occupancy,appliances,temps_csv,out_csv\n" +
				"s1,summer,2025-08-01,2025-08-31,1000,two,stove,t.csv,o.csv\n",
			errPart: "occupancy",
		},
		{
			name: "bad season",
			file: "scenarios.csv",
			content: "scenario_id,season,start_date,end_date,home_sqft,occupancy,appliances,temps_csv,out_csv\n" +
				"s1,autumn,2025-08-01,2025-08-31,1000,1,stove,t.csv,o.csv\n",
			errPart: "invalid season",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadTable(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Fatalf("error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing table")
	}
}
