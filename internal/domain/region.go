package domain

import (
	"fmt"
	"strings"
	"time"
)

// ModelID returns the model identifier used in archive paths and upstream
// tooling: "hrrr" for CONUS, "hrrrak" for Alaska.
func (r Region) ModelID() string {
	if r == RegionAlaska {
		return "hrrrak"
	}
	return "hrrr"
}

// CycleRunHours returns the UTC hours at which the model runs for this
// region: every hour for CONUS, every three hours for Alaska.
func (r Region) CycleRunHours() []int {
	step := 1
	if r == RegionAlaska {
		step = 3
	}
	hours := make([]int, 0, 24/step)
	for h := 0; h < 24; h += step {
		hours = append(hours, h)
	}
	return hours
}

// ValidateCycleRunHour rejects reference-time hours at which no model run
// starts for this region.
func (r Region) ValidateCycleRunHour(hour int) error {
	for _, h := range r.CycleRunHours() {
		if h == hour {
			return nil
		}
	}
	return fmt.Errorf("%w: %02d is not a cycle run hour for %s (valid: %s)",
		ErrCycleRunHour, hour, r, formatHours(r.CycleRunHours()))
}

// LatestReferenceTime returns the most recent UTC top-of-hour at which a
// model run started for the region, according to the package clock. The
// result is always a legal cycle run hour, so it can seed archive lookups
// directly.
func LatestReferenceTime(r Region) time.Time {
	t := clock.Now().UTC().Truncate(time.Hour)
	for r.ValidateCycleRunHour(t.Hour()) != nil {
		t = t.Add(-time.Hour)
	}
	return t
}

func formatHours(hours []int) string {
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%02d", h)
	}
	return strings.Join(parts, ",")
}
