package inventory

import (
	"fmt"

	"github.com/couchcryptid/hrrr-inventory/internal/domain"
)

// CycleRunConfig maps every forecast hour of one (region, product, set)
// combination to its fully expanded layer inventory. Construction is
// all-or-nothing: a single template that fails to expand fails the whole
// config. Immutable once built.
type CycleRunConfig struct {
	Region  domain.Region
	Product domain.Product
	Set     domain.ForecastHourSet

	byHour map[int][]domain.Variable
}

// NewCycleRunConfig looks up the combination's template table and expands
// every entry for every forecast hour the set yields, preserving entry order.
// Combinations outside the fixed mapping fail with ErrMissingTable.
func NewCycleRunConfig(reg *Registry, region domain.Region, product domain.Product, set domain.ForecastHourSet) (*CycleRunConfig, error) {
	entries, err := reg.Templates(region, product, set)
	if err != nil {
		return nil, err
	}

	hours := set.Hours()
	byHour := make(map[int][]domain.Variable, len(hours))
	for _, hour := range hours {
		variables := make([]domain.Variable, 0, len(entries))
		for _, entry := range entries {
			v, err := domain.ExpandTemplate(entry, hour)
			if err != nil {
				if reg.metrics != nil {
					reg.metrics.ExpansionErrors.Inc()
				}
				return nil, fmt.Errorf("expand %s/%s/%s row %d hour %d: %w",
					region, product, set, entry.RowNumber, hour, err)
			}
			variables = append(variables, v)
		}
		byHour[hour] = variables
	}

	if reg.metrics != nil {
		reg.metrics.ConfigsBuilt.WithLabelValues(region.String(), product.String()).Inc()
		reg.metrics.ExpansionsComputed.Add(float64(len(hours) * len(entries)))
	}

	return &CycleRunConfig{
		Region:  region,
		Product: product,
		Set:     set,
		byHour:  byHour,
	}, nil
}

// Hours returns the forecast hours this config covers, in ascending order.
func (c *CycleRunConfig) Hours() []int {
	return c.Set.Hours()
}

// Variables returns the ordered layer inventory for a forecast hour. The
// second return is false when the hour is not a member of the config's set.
func (c *CycleRunConfig) Variables(forecastHour int) ([]domain.Variable, bool) {
	variables, ok := c.byHour[forecastHour]
	return variables, ok
}
