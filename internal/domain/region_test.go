package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegion_CycleRunHours(t *testing.T) {
	conus := RegionCONUS.CycleRunHours()
	require.Len(t, conus, 24)

	alaska := RegionAlaska.CycleRunHours()
	assert.Equal(t, []int{0, 3, 6, 9, 12, 15, 18, 21}, alaska)
}

func TestRegion_ValidateCycleRunHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		assert.NoError(t, RegionCONUS.ValidateCycleRunHour(hour))
	}

	assert.NoError(t, RegionAlaska.ValidateCycleRunHour(6))
	err := RegionAlaska.ValidateCycleRunHour(7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCycleRunHour)
	assert.Contains(t, err.Error(), "alaska")
}

func TestRegion_ModelID(t *testing.T) {
	assert.Equal(t, "hrrr", RegionCONUS.ModelID())
	assert.Equal(t, "hrrrak", RegionAlaska.ModelID())
}

func TestLatestReferenceTime(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, 5, 1, 7, 42, 13, 0, time.UTC),
	))
	defer SetClock(nil)

	t.Run("conus uses the current hour", func(t *testing.T) {
		ref := LatestReferenceTime(RegionCONUS)
		assert.Equal(t, time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC), ref)
	})

	t.Run("alaska steps back to a run hour", func(t *testing.T) {
		ref := LatestReferenceTime(RegionAlaska)
		assert.Equal(t, time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC), ref)
		assert.NoError(t, RegionAlaska.ValidateCycleRunHour(ref.Hour()))
	})
}

func TestCloudProvider_ArchiveCoverage(t *testing.T) {
	early := time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, ProviderAWS.HasData(early))
	assert.True(t, ProviderGoogle.HasData(early))
	assert.False(t, ProviderAzure.HasData(early))

	assert.True(t, ProviderAzure.HasData(time.Date(2021, time.March, 21, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ProviderAWS.HasData(time.Date(2014, time.July, 29, 0, 0, 0, 0, time.UTC)))
}
