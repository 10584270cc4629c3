package synth

import "errors"

var (
	ErrNilTemperatureSource = errors.New("temperature source is required")
)
