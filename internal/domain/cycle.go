package domain

import (
	"fmt"
	"time"
)

// Maximum forecast hour produced by each cycle type.
const (
	MaxStandardForecastHour = 18
	MaxExtendedForecastHour = 48
)

// ForecastCycleType classifies a model run by its start hour. Standard
// cycles run hourly (every three hours in Alaska) and forecast out to 18
// hours; extended cycles run six-hourly and forecast out to 48 hours.
// Construct via ParseForecastCycleType or ForecastCycleTypeFromReferenceTime;
// the zero value is not valid.
type ForecastCycleType struct {
	name            string
	maxForecastHour int
}

// The two cycle classes. These are the only valid ForecastCycleType values.
var (
	CycleStandard = ForecastCycleType{name: "standard", maxForecastHour: MaxStandardForecastHour}
	CycleExtended = ForecastCycleType{name: "extended", maxForecastHour: MaxExtendedForecastHour}
)

// ParseForecastCycleType maps a wire token to a cycle type.
func ParseForecastCycleType(s string) (ForecastCycleType, error) {
	switch s {
	case CycleStandard.name:
		return CycleStandard, nil
	case CycleExtended.name:
		return CycleExtended, nil
	default:
		return ForecastCycleType{}, fmt.Errorf("%w: forecast cycle type %q", ErrInvalidEnum, s)
	}
}

// ForecastCycleTypeFromReferenceTime classifies the run that started at the
// given reference time. Extended cycles start every six hours from 00Z.
func ForecastCycleTypeFromReferenceTime(referenceTime time.Time) ForecastCycleType {
	if referenceTime.UTC().Hour()%6 == 0 {
		return CycleExtended
	}
	return CycleStandard
}

func (c ForecastCycleType) String() string { return c.name }

// MaxForecastHour returns the last forecast hour this cycle type produces.
func (c ForecastCycleType) MaxForecastHour() int { return c.maxForecastHour }

// Hours enumerates every forecast hour the cycle type produces, 0 through
// its maximum, in ascending order.
func (c ForecastCycleType) Hours() []int {
	hours := make([]int, 0, c.maxForecastHour+1)
	for h := 0; h <= c.maxForecastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// ValidateForecastHour rejects forecast hours the cycle type never produces.
// Hours outside 0-48 fail with ErrForecastHourRange; hours past the cycle's
// maximum fail with ErrCycleBound.
func (c ForecastCycleType) ValidateForecastHour(forecastHour int) error {
	if err := CheckForecastHour(forecastHour); err != nil {
		return err
	}
	if forecastHour > c.maxForecastHour {
		return fmt.Errorf("%w: forecast hour %d is not compatible with a %s cycle (max %d)",
			ErrCycleBound, forecastHour, c.name, c.maxForecastHour)
	}
	return nil
}
