package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/addis-insights/inclusion-cli/internal/forecast"
)

var (
	forecastShowIndicator string
	forecastShowScenario  string
)

var forecastShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a forecast table with growth metrics",
	Long: `Renders the forecast table for one indicator, growth metrics measured
from the earliest base value, and the gap to the configured policy target.

Examples:
  inclusion-cli forecast show --indicator ACC_OWNERSHIP
  inclusion-cli forecast show --indicator USG_DIGITAL_PAYMENT --scenario optimistic`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("forecast"); err != nil {
			return err
		}

		tbl, err := loadForecast(forecastShowIndicator)
		if err != nil {
			return err
		}

		switch forecastShowScenario {
		case "":
		case "optimistic":
			tbl = forecast.Scenario(tbl, cfg.Forecast.OptimisticMultiplier)
		case "pessimistic":
			tbl = forecast.Scenario(tbl, cfg.Forecast.PessimisticMultiplier)
		default:
			return eris.Errorf("forecast: unknown scenario %q (use optimistic or pessimistic)", forecastShowScenario)
		}

		formatForecastTable(os.Stdout, tbl)

		if len(tbl.Points) > 1 {
			metrics, err := forecast.Growth(tbl.Points[0].Base, tbl.Points[1:])
			if err != nil {
				return err
			}
			formatGrowthMetrics(os.Stdout, metrics)
		}

		if target, ok := cfg.Forecast.Targets[forecastShowIndicator]; ok {
			formatTargetGap(os.Stdout, target, tbl.Points[len(tbl.Points)-1].Base)
		}
		return nil
	},
}

func init() {
	forecastShowCmd.Flags().StringVar(&forecastShowIndicator, "indicator", "", "indicator code (required)")
	forecastShowCmd.Flags().StringVar(&forecastShowScenario, "scenario", "", "scale the base forecast: optimistic or pessimistic")
	_ = forecastShowCmd.MarkFlagRequired("indicator")
	forecastCmd.AddCommand(forecastShowCmd)
}

// formatForecastTable writes the forecast points as a table. Absent
// optional columns render as "-".
func formatForecastTable(out io.Writer, t *forecast.Table) {
	_, _ = fmt.Fprintf(out, "Forecast: %s\n\n", t.Indicator)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "YEAR\tBASE\tLOWER 80\tUPPER 80\tOPTIMISTIC\tPESSIMISTIC")
	_, _ = fmt.Fprintln(w, "----\t----\t--------\t--------\t----------\t-----------")

	pct := func(v *float64) string {
		if v == nil {
			return "-"
		}
		return forecast.FormatPercent(*v, 1)
	}
	for _, p := range t.Points {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.Year,
			forecast.FormatPercent(p.Base, 1),
			pct(p.Lower80),
			pct(p.Upper80),
			pct(p.Optimistic),
			pct(p.Pessimistic),
		)
	}
	_ = w.Flush()
}

// formatGrowthMetrics writes the growth summary lines.
func formatGrowthMetrics(out io.Writer, m forecast.GrowthMetrics) {
	_, _ = fmt.Fprintf(out, "\nTotal growth:\t%+.1f pp\n", m.TotalGrowthPP)
	_, _ = fmt.Fprintf(out, "Annual growth:\t%+.1f pp\n", m.AnnualGrowthPP)
	_, _ = fmt.Fprintf(out, "CAGR:\t%s\n", forecast.FormatPercent(m.CAGRPercent, 1))
	if m.DoublingTimeYears != nil {
		_, _ = fmt.Fprintf(out, "Doubling time:\t%.1f years\n", *m.DoublingTimeYears)
	}
}

// formatTargetGap writes the final forecast against the policy target.
func formatTargetGap(out io.Writer, target, final float64) {
	_, _ = fmt.Fprintf(out, "\nTarget:\t%s (final forecast %s, gap %+.1f pp)\n",
		forecast.FormatPercent(target, 1),
		forecast.FormatPercent(final, 1),
		final-target,
	)
}
