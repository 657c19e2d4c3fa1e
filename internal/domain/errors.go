package domain

import "errors"

// Sentinel errors for the distinct failure kinds callers dispatch on with
// errors.Is. All are deterministic validation failures; none is retryable.
var (
	// ErrForecastHourRange reports a forecast hour outside 0-48.
	ErrForecastHourRange = errors.New("forecast hour out of range")

	// ErrCycleBound reports a forecast hour past the maximum for the run's
	// cycle type (18 for standard, 48 for extended).
	ErrCycleBound = errors.New("forecast hour exceeds cycle maximum")

	// ErrCycleRunHour reports a reference time whose hour is not a cycle run
	// hour for the region.
	ErrCycleRunHour = errors.New("not a cycle run hour")

	// ErrInvalidEnum reports a string that matches no member of a closed
	// enumeration (region, product, provider, forecast-hour set, cycle type).
	ErrInvalidEnum = errors.New("unknown enumeration value")

	// ErrTemplateParse reports a forecast-valid template that matches none of
	// the three recognized shapes.
	ErrTemplateParse = errors.New("unrecognized forecast valid template")
)
