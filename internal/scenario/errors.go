package scenario

import "errors"

var (
	ErrEmptyID          = errors.New("scenario id must not be empty")
	ErrInvalidSeason    = errors.New("invalid season")
	ErrInvalidDateRange = errors.New("end date before start date")
	ErrInvalidHomeSqft  = errors.New("home sqft must be positive")
	ErrInvalidOccupancy = errors.New("occupancy must be positive")
)
