// Package ports lists the interfaces the drivers wire implementations
// into. The definitions live next to their consumer in internal/synth;
// the aliases here keep the wiring surface in one place.
package ports

import (
	"github.com/Agrid-Dev/thermsynth/internal/synth"
)

// TemperatureSource resolves the ambient temperature for an exact hour.
type TemperatureSource = synth.TemperatureSource

// RecordSink is the output port the driver hands each scenario's fully
// materialized hourly table to (CSV file, MQTT publisher, test capture).
type RecordSink = synth.RecordSink
