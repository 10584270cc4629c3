package synth

// BaseHeatingRate scales a 2000 sqft reference installation's 0.12
// therm/h draw linearly by floor area.
func BaseHeatingRate(homeSqft int) float64 {
	return 0.12 * (float64(homeSqft) / 2000.0)
}

// HeatingUsage bands the base rate by ambient temperature. Strict upper
// bounds in descending order, first match wins.
func HeatingUsage(tempF, baseRate float64) float64 {
	switch {
	case tempF > 70:
		return 0
	case tempF > 60:
		return baseRate * 0.3
	case tempF > 50:
		return baseRate * 0.6
	case tempF > 40:
		return baseRate * 0.9
	default:
		return baseRate * 1.2
	}
}
