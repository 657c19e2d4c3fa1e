package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ForecastHourSet names a partition of forecast hours whose archive files
// share one layer inventory shape. The token doubles as the compact range
// notation: "fh00" is the single hour 0, "fh02-48" the closed interval 2-48.
type ForecastHourSet string

const (
	// Sub-hourly partitions.
	SetFH00     ForecastHourSet = "fh00"
	SetFH01To18 ForecastHourSet = "fh01-18"

	// Partitions for every other product.
	SetFH00To01 ForecastHourSet = "fh00-01"
	SetFH02To48 ForecastHourSet = "fh02-48"
)

// ParseForecastHourSet maps a wire token to a ForecastHourSet.
func ParseForecastHourSet(s string) (ForecastHourSet, error) {
	switch ForecastHourSet(s) {
	case SetFH00, SetFH01To18, SetFH00To01, SetFH02To48:
		return ForecastHourSet(s), nil
	default:
		return "", fmt.Errorf("%w: forecast hour set %q", ErrInvalidEnum, s)
	}
}

func (s ForecastHourSet) String() string { return string(s) }

// Description returns the human title used in reports and catalog metadata.
func (s ForecastHourSet) Description() string {
	switch s {
	case SetFH00To01:
		return "forecast hours 00 and 01"
	case SetFH02To48:
		return "forecast hours 02 thru 48"
	case SetFH00:
		return "forecast hour 00"
	case SetFH01To18:
		return "forecast hours 01 thru 18"
	default:
		return ""
	}
}

// ForecastHourSetFor selects the partition a forecast hour belongs to for the
// given product. Sub-hourly products split at {0}/{1..18}; all others at
// {0,1}/{2..48}.
func ForecastHourSetFor(forecastHour int, product Product) (ForecastHourSet, error) {
	if err := CheckForecastHour(forecastHour); err != nil {
		return "", err
	}
	if product == ProductSubHourly {
		if forecastHour == 0 {
			return SetFH00, nil
		}
		return SetFH01To18, nil
	}
	if forecastHour < 2 {
		return SetFH00To01, nil
	}
	return SetFH02To48, nil
}

// Hours enumerates the set's member forecast hours in ascending order by
// decoding the range notation in the token. The slice is freshly allocated on
// every call.
func (s ForecastHourSet) Hours() []int {
	lo, hi, err := s.bounds()
	if err != nil {
		return nil
	}
	hours := make([]int, 0, hi-lo+1)
	for h := lo; h <= hi; h++ {
		hours = append(hours, h)
	}
	return hours
}

// bounds decodes "fh<lo>" or "fh<lo>-<hi>" into an inclusive interval.
func (s ForecastHourSet) bounds() (lo, hi int, err error) {
	parts := strings.SplitN(strings.TrimPrefix(string(s), "fh"), "-", 2)
	lo, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: forecast hour set %q", ErrInvalidEnum, s)
	}
	if len(parts) == 1 {
		return lo, lo, nil
	}
	hi, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: forecast hour set %q", ErrInvalidEnum, s)
	}
	return lo, hi, nil
}

// CheckForecastHour rejects forecast hours outside the archive's 0-48 span.
func CheckForecastHour(forecastHour int) error {
	if forecastHour < 0 || forecastHour > MaxExtendedForecastHour {
		return fmt.Errorf("%w: %d (must be within 0-%d)",
			ErrForecastHourRange, forecastHour, MaxExtendedForecastHour)
	}
	return nil
}
