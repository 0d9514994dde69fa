//go:build !integration

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/addis-insights/inclusion-cli/internal/model"
)

func datePtr(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func floatPtr(v float64) *float64 { return &v }

func TestFormatTrends_Empty(t *testing.T) {
	var buf bytes.Buffer
	formatTrends(&buf, nil, nil)

	output := buf.String()
	// The header renders even with no rows.
	assert.Contains(t, output, "DATE")
	assert.Contains(t, output, "INDICATOR")
	assert.Contains(t, output, "VALUE")
	assert.Contains(t, output, "SOURCE")
}

func TestFormatTrends_LabelsAndValues(t *testing.T) {
	obs := []model.Observation{
		{
			IndicatorCode:   "ACC_OWNERSHIP",
			ValueNumeric:    floatPtr(46.5),
			ObservationDate: datePtr(2021, 6, 30),
			SourceName:      "Global Findex",
		},
		{
			IndicatorCode:   "UNLISTED",
			ValueNumeric:    nil,
			ObservationDate: datePtr(2022, 12, 31),
			SourceName:      "National Bank",
		},
	}
	ref := model.ReferenceTable{"ACC_OWNERSHIP": "Account ownership (% adults)"}

	var buf bytes.Buffer
	formatTrends(&buf, obs, ref)

	output := buf.String()
	assert.Contains(t, output, "2021-06-30")
	assert.Contains(t, output, "Account ownership (% adults)")
	assert.Contains(t, output, "46.5%")
	assert.Contains(t, output, "Global Findex")

	// Unknown codes render verbatim; a missing value renders as "-".
	assert.Contains(t, output, "UNLISTED")
	assert.Contains(t, output, "-")
}

func TestFormatTrends_NilReferenceTable(t *testing.T) {
	obs := []model.Observation{{
		IndicatorCode:   "ACC_OWNERSHIP",
		ValueNumeric:    floatPtr(35.0),
		ObservationDate: datePtr(2017, 6, 30),
		SourceName:      "Global Findex",
	}}

	var buf bytes.Buffer
	formatTrends(&buf, obs, nil)

	assert.Contains(t, buf.String(), "ACC_OWNERSHIP")
}

func TestFormatTrends_TruncatesLongSources(t *testing.T) {
	long := "National Financial Inclusion Strategy progress review, annex tables, 2023 edition"
	obs := []model.Observation{{
		IndicatorCode:   "ACC_OWNERSHIP",
		ValueNumeric:    floatPtr(40.0),
		ObservationDate: datePtr(2020, 1, 1),
		SourceName:      long,
	}}

	var buf bytes.Buffer
	formatTrends(&buf, obs, nil)

	output := buf.String()
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, long)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "exactly-ten", truncate("exactly-ten", 11))
	assert.Equal(t, "long st...", truncate("long string here", 10))
}
