// Package sink holds the output adapters scenario tables are handed to.
package sink

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Agrid-Dev/thermsynth/internal/scenario"
	"github.com/Agrid-Dev/thermsynth/internal/synth"
)

// CSV writes each scenario's table to its configured out_csv path,
// creating parent directories as needed.
type CSV struct{}

func (CSV) Write(sc scenario.Scenario, records []synth.Record) error {
	if sc.OutCSV == "" {
		return errors.New("csv sink: out_csv is required")
	}
	if dir := filepath.Dir(sc.OutCSV); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("csv sink: %w", err)
		}
	}

	f, err := os.Create(sc.OutCSV)
	if err != nil {
		return fmt.Errorf("csv sink: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(synth.Header); err != nil {
		f.Close()
		return fmt.Errorf("csv sink: write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.Fields()); err != nil {
			f.Close()
			return fmt.Errorf("csv sink: write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("csv sink: flush: %w", err)
	}
	return f.Close()
}
