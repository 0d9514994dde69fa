package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/addis-insights/inclusion-cli/internal/forecast"
)

var forecastExportOutput string

var forecastExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all configured forecast tables to one XLSX workbook",
	Long: `Loads the forecast table of every configured indicator and writes
them as one workbook, one sheet per indicator. A missing table aborts the
export; no sheet is fabricated.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("forecast"); err != nil {
			return err
		}

		tables := make([]*forecast.Table, 0, len(cfg.Forecast.Indicators))
		for _, indicator := range cfg.Forecast.Indicators {
			tbl, err := loadForecast(indicator)
			if err != nil {
				return err
			}
			tables = append(tables, tbl)
		}

		path := forecastExportOutput
		if path == "" {
			path = filepath.Join(cfg.ProcessedDir(), "forecast_tables.xlsx")
		}
		if err := forecast.ExportWorkbook(tables, path); err != nil {
			return err
		}

		zap.L().Info("forecast: workbook written",
			zap.String("path", path),
			zap.Int("sheets", len(tables)),
		)
		return nil
	},
}

func init() {
	forecastExportCmd.Flags().StringVar(&forecastExportOutput, "output", "", "workbook path (default: <data-dir>/processed/forecast_tables.xlsx)")
	forecastCmd.AddCommand(forecastExportCmd)
}
