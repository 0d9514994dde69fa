//go:build !integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/addis-insights/inclusion-cli/internal/config"
)

// testConfig returns a config rooted in a fresh temp directory with the
// default file names.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Data: config.DataConfig{
			Dir:           t.TempDir(),
			UnifiedFile:   "ethiopia_fi_unified.csv",
			ReferenceFile: "reference_codes.csv",
		},
		Report: config.ReportConfig{File: "enrichment_report.json"},
		Forecast: config.ForecastConfig{
			FilePattern:           "forecast_table_%s.csv",
			Indicators:            []string{"ACC_OWNERSHIP", "USG_DIGITAL_PAYMENT"},
			OptimisticMultiplier:  1.2,
			PessimisticMultiplier: 0.8,
			Targets:               map[string]float64{"ACC_OWNERSHIP": 60.0},
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
	}
}

const testUnifiedCSV = `record_id,record_type,pillar,indicator,indicator_code,value_numeric,observation_date,source_name,source_url
obs-001,observation,access,Account ownership,ACC_OWNERSHIP,35.0,2017-06-30,Global Findex,https://findex.example.org
obs-002,observation,access,Account ownership,ACC_OWNERSHIP,46.5,2021-06-30,Global Findex,https://findex.example.org
obs-003,observation,usage,Digital payments,USG_DIGITAL_PAYMENT,20.1,not-a-date,Global Findex,https://findex.example.org
ev-001,event,,,,,,National Bank,
`

const testReferenceCSV = `code,label
ACC_OWNERSHIP,Account ownership (% adults)
USG_DIGITAL_PAYMENT,Made or received a digital payment (% adults)
`

// writeRawInputs populates <data-dir>/raw with the unified and reference
// CSVs the commands load.
func writeRawInputs(t *testing.T, c *config.Config) {
	t.Helper()
	require.NoError(t, os.MkdirAll(c.RawDir(), 0o755))
	require.NoError(t, os.WriteFile(c.UnifiedPath(), []byte(testUnifiedCSV), 0o644))
	require.NoError(t, os.WriteFile(c.ReferencePath(), []byte(testReferenceCSV), 0o644))
}

const testForecastCSV = `Year,Base Forecast (%),80% CI Lower (%),80% CI Upper (%)
2025,52.5,50.1,54.9
2026,55.8,52.8,58.8
2027,58.2,54.9,61.5
`

// writeForecastInputs populates <data-dir>/processed with a forecast
// table for every configured indicator.
func writeForecastInputs(t *testing.T, c *config.Config) {
	t.Helper()
	require.NoError(t, os.MkdirAll(c.ProcessedDir(), 0o755))
	for _, indicator := range c.Forecast.Indicators {
		require.NoError(t, os.WriteFile(c.ForecastPath(indicator), []byte(testForecastCSV), 0o644))
	}
}

// writeTempFile writes content under a fresh temp dir and returns the
// path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
