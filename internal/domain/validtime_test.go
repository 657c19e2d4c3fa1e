package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTemplate_ValidTime(t *testing.T) {
	tests := []struct {
		name     string
		template string
		hour     int
		expected string
	}{
		{"analysis at hour zero", "analysis", 0, "analysis"},
		{"analysis at later hour", "analysis", 7, "7 hour fcst"},
		{"hour instant ignores template count", "3 hour fcst", 5, "5 hour fcst"},
		{"hour instant at hour zero", "1 hour fcst", 0, "0 hour fcst"},
		{"minute instant advances by sixty", "30 min fcst", 2, "90 min fcst"},
		{"minute instant at anchor hour", "15 min fcst", 1, "15 min fcst"},
		{"minute window advances by sixty", "0-15 min acc", 3, "60-75 min acc"},
		{"minute window back to anchor", "60-75 min ave", 1, "0-15 min ave"},
		{"rolling one-hour window", "1-2 hour acc", 5, "4-5 hour acc"},
		{"run-total window", "0-2 hour acc", 5, "0-5 hour acc"},
		{"max window keeps statistic", "1-2 hour max", 7, "6-7 hour max"},
		{"day boundary override", "0-1 hour acc", 24, "0-1 day acc"},
		{"day boundary on rolling window", "1-2 hour acc", 48, "0-2 day acc"},
		{"day boundary at hour zero", "0-1 hour acc", 0, "0-0 day acc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := TemplateEntry{RowNumber: 1, Parameter: "APCP", ForecastValidTemplate: tc.template}
			v, err := ExpandTemplate(entry, tc.hour)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, v.ForecastValid)
		})
	}
}

func TestExpandTemplate_FieldsPassThrough(t *testing.T) {
	entry := TemplateEntry{
		RowNumber:             37,
		LevelLayer:            "surface",
		Parameter:             "TMP",
		ForecastValidTemplate: "analysis",
		Description:           "Temperature [K]",
	}

	v, err := ExpandTemplate(entry, 12)
	require.NoError(t, err)

	assert.Equal(t, 37, v.RowNumber)
	assert.Equal(t, "surface", v.LevelLayer)
	assert.Equal(t, "TMP", v.Parameter)
	assert.Equal(t, "Temperature [K]", v.Description)
	assert.Equal(t, "12 hour fcst", v.ForecastValid)
}

func TestExpandTemplate_UnrecognizedTemplate(t *testing.T) {
	for _, template := range []string{"", "whenever", "2 hours", "anl", "0-1 acc"} {
		t.Run("template "+template, func(t *testing.T) {
			_, err := ExpandTemplate(TemplateEntry{ForecastValidTemplate: template}, 3)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTemplateParse)
			assert.Contains(t, err.Error(), template)
		})
	}
}

func TestExpandTemplate_ForecastHourRange(t *testing.T) {
	entry := TemplateEntry{ForecastValidTemplate: "analysis"}

	for _, hour := range []int{-1, 49, 100} {
		_, err := ExpandTemplate(entry, hour)
		assert.ErrorIs(t, err, ErrForecastHourRange, "hour %d", hour)
	}

	// Every in-range hour expands cleanly.
	for hour := 0; hour <= 48; hour++ {
		_, err := ExpandTemplate(entry, hour)
		assert.NoError(t, err, "hour %d", hour)
	}
}
