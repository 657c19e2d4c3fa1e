package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	for _, r := range Regions() {
		parsed, err := ParseRegion(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRegion("hawaii")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnum)
	assert.Contains(t, err.Error(), "hawaii")
}

func TestParseProduct(t *testing.T) {
	for _, p := range Products() {
		parsed, err := ParseProduct(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	// Long-form names are not wire tokens.
	for _, s := range []string{"surface", "pressure", "native", "sub_hourly", ""} {
		_, err := ParseProduct(s)
		assert.ErrorIs(t, err, ErrInvalidEnum, "input %q", s)
	}
}

func TestParseCloudProvider(t *testing.T) {
	for _, p := range CloudProviders() {
		parsed, err := ParseCloudProvider(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParseCloudProvider("oracle")
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestProduct_ForecastHourSets(t *testing.T) {
	assert.Equal(t, []ForecastHourSet{SetFH00, SetFH01To18}, ProductSubHourly.ForecastHourSets())

	for _, p := range []Product{ProductSurface, ProductPressure, ProductNative} {
		assert.Equal(t, []ForecastHourSet{SetFH00To01, SetFH02To48}, p.ForecastHourSets(), "product %s", p)
	}
}

func TestProduct_Description(t *testing.T) {
	assert.Equal(t, "2D Surface Levels", ProductSurface.Description())
	assert.Equal(t, "3D Pressure Levels", ProductPressure.Description())
	assert.Equal(t, "Native Levels", ProductNative.Description())
	assert.Equal(t, "2D Surface Levels - Sub Hourly", ProductSubHourly.Description())
}
