package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/addis-insights/inclusion-cli/internal/analysis"
	"github.com/addis-insights/inclusion-cli/internal/dataset"
	"github.com/addis-insights/inclusion-cli/internal/forecast"
	"github.com/addis-insights/inclusion-cli/internal/model"
)

var (
	trendsIndicators []string
	trendsFromYear   int
	trendsToYear     int
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show indicator history from the unified dataset",
	Long: `Lists dated observations from the unified dataset, filtered by
indicator code and year range, labeled via the reference-code table.

Examples:
  inclusion-cli trends
  inclusion-cli trends --indicators ACC_OWNERSHIP --from 2014 --to 2021`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("trends"); err != nil {
			return err
		}

		opts := dataset.Options{Encoding: cfg.Data.Encoding}
		tbl, err := dataset.LoadUnified(cfg.UnifiedPath(), opts)
		if err != nil {
			return err
		}

		// Labels are display-only for trends; raw codes still render when
		// the reference table is unavailable.
		ref, err := dataset.LoadReferenceCodes(cfg.ReferencePath(), opts)
		if err != nil {
			zap.L().Warn("trends: reference codes unavailable, showing raw codes", zap.Error(err))
		}

		obs := analysis.History(tbl, trendsIndicators, trendsFromYear, trendsToYear)
		if len(obs) == 0 {
			zap.L().Info("trends: no dated observations match the filters")
			return nil
		}

		formatTrends(os.Stdout, obs, ref)
		return nil
	},
}

func init() {
	trendsCmd.Flags().StringSliceVar(&trendsIndicators, "indicators", nil, "indicator codes to include (default: all)")
	trendsCmd.Flags().IntVar(&trendsFromYear, "from", 0, "earliest year to include (0 = open)")
	trendsCmd.Flags().IntVar(&trendsToYear, "to", 0, "latest year to include (0 = open)")
	rootCmd.AddCommand(trendsCmd)
}

// formatTrends writes a tabular observation history to w.
func formatTrends(out io.Writer, obs []model.Observation, ref model.ReferenceTable) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tINDICATOR\tVALUE\tSOURCE")
	_, _ = fmt.Fprintln(w, "----\t---------\t-----\t------")

	for _, o := range obs {
		value := "-"
		if o.ValueNumeric != nil {
			value = forecast.FormatPercent(*o.ValueNumeric, 1)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			o.ObservationDate.Format("2006-01-02"),
			ref.Label(o.IndicatorCode),
			value,
			truncate(o.SourceName, 40),
		)
	}
	_ = w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
