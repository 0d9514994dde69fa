package main

import (
	"github.com/spf13/cobra"

	"github.com/addis-insights/inclusion-cli/internal/forecast"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast table utilities",
	Long:  "Loads the per-indicator forecast tables produced by the forecasting pipeline from <data-dir>/processed and renders, projects, or exports them.",
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

// loadForecast loads the configured forecast table for one indicator.
func loadForecast(indicator string) (*forecast.Table, error) {
	return forecast.Load(cfg.ForecastPath(indicator), indicator)
}
