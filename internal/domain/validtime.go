package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// TemplateEntry is one row of a packaged layer table: a layer's position in
// the GRIB file plus the valid-time template that gets resolved per forecast
// hour. Entries are hand-curated and immutable; their order within a table is
// the canonical layer order of the source file.
type TemplateEntry struct {
	RowNumber             int
	LevelLayer            string
	Parameter             string
	ForecastValidTemplate string
	Description           string
}

// Variable is a TemplateEntry resolved against one concrete forecast hour:
// the template is replaced by the literal valid-time text, every other field
// passes through unchanged. Downstream consumers index layers by RowNumber,
// so it must match the source file exactly.
type Variable struct {
	RowNumber     int
	LevelLayer    string
	Parameter     string
	ForecastValid string
	Description   string
}

var (
	// instantRe matches single-instant templates like "2 hour fcst" or
	// "15 min fcst" -> n=2, unit="hour".
	instantRe = regexp.MustCompile(`^(\d+) ([a-z]+) fcst$`)

	// intervalRe matches windowed templates like "1-2 hour acc" or
	// "60-75 min ave" -> a=1, b=2, unit="hour", stat="acc".
	intervalRe = regexp.MustCompile(`^(\d+)-(\d+) ([a-z]+) (.+)$`)
)

// validTimeRules are tried in order; the first rule whose match reports true
// wins. Each rule owns one template shape end to end: match, compute, format.
var validTimeRules = []func(template string, forecastHour int) (string, bool){
	resolveAnalysis,
	resolveInstant,
	resolveInterval,
}

// ExpandTemplate resolves a template entry against a concrete forecast hour,
// producing the Variable for that hour. A template matching none of the three
// recognized shapes fails with ErrTemplateParse naming the offending text.
func ExpandTemplate(entry TemplateEntry, forecastHour int) (Variable, error) {
	if err := CheckForecastHour(forecastHour); err != nil {
		return Variable{}, err
	}

	for _, resolve := range validTimeRules {
		forecastValid, ok := resolve(entry.ForecastValidTemplate, forecastHour)
		if !ok {
			continue
		}
		return Variable{
			RowNumber:     entry.RowNumber,
			LevelLayer:    entry.LevelLayer,
			Parameter:     entry.Parameter,
			ForecastValid: forecastValid,
			Description:   entry.Description,
		}, nil
	}

	return Variable{}, fmt.Errorf("%w: %q", ErrTemplateParse, entry.ForecastValidTemplate)
}

// resolveAnalysis handles the literal "analysis" marker: the layer is an
// analysis at hour 0 and a plain hourly forecast afterwards.
func resolveAnalysis(template string, forecastHour int) (string, bool) {
	if template != "analysis" {
		return "", false
	}
	if forecastHour == 0 {
		return "analysis", true
	}
	return fmt.Sprintf("%d hour fcst", forecastHour), true
}

// resolveInstant handles "<n> <unit> fcst". Minute instants are anchored at
// forecast hour 1 and advance by 60 per hour. For any other unit the
// template's count is a shape marker only; the live forecast hour is used.
func resolveInstant(template string, forecastHour int) (string, bool) {
	m := instantRe.FindStringSubmatch(template)
	if m == nil {
		return "", false
	}
	if m[2] == "min" {
		n, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d min fcst", n+(forecastHour-1)*60), true
	}
	return fmt.Sprintf("%d hour fcst", forecastHour), true
}

// resolveInterval handles "<a>-<b> <unit> <stat>". Minute windows are
// anchored at forecast hour 2 and advance by 60 per hour. Hour windows end at
// the forecast hour and start at hour-1 for rolling one-hour windows (a=1) or
// 0 for run-total windows; a window ending on an exact day boundary is
// re-expressed in whole days, as wgrib2 renders it.
func resolveInterval(template string, forecastHour int) (string, bool) {
	m := intervalRe.FindStringSubmatch(template)
	if m == nil {
		return "", false
	}
	unit, stat := m[3], m[4]

	if unit == "min" {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		offset := (forecastHour - 2) * 60
		return fmt.Sprintf("%d-%d min %s", a+offset, b+offset, stat), true
	}

	if forecastHour%24 == 0 {
		return fmt.Sprintf("0-%d day %s", forecastHour/24, stat), true
	}
	start := 0
	if m[1] == "1" {
		start = forecastHour - 1
	}
	return fmt.Sprintf("%d-%d hour %s", start, forecastHour, stat), true
}
