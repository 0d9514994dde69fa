package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/addis-insights/inclusion-cli/internal/analysis"
	"github.com/addis-insights/inclusion-cli/internal/dataset"
	"github.com/addis-insights/inclusion-cli/internal/enrich"
	"github.com/addis-insights/inclusion-cli/internal/report"
)

var (
	enrichBatchPath string
	enrichDryRun    bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Validate and merge an enrichment batch into the dataset",
	Long: `Validates a YAML batch of new observations, events and impact links
against the enrichment field template, merges it into the unified dataset,
writes the enriched CSV under <data-dir>/processed, and regenerates the
enrichment report with the real new-record counts.

Any validation failure aborts before anything is written. Indicator codes
missing from the reference table are warnings only.

Examples:
  # Validate only
  inclusion-cli enrich --batch findex-2024.yaml --dry-run

  # Full merge
  inclusion-cli enrich --batch findex-2024.yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("enrich"); err != nil {
			return err
		}

		tbl, ref, err := loadTables()
		if err != nil {
			return err
		}
		batch, err := enrich.LoadBatch(enrichBatchPath)
		if err != nil {
			return err
		}

		if issues := enrich.Validate(batch); len(issues) > 0 {
			return eris.Errorf("enrich: batch has %d validation issues:\n  %s",
				len(issues), joinIssues(issues))
		}
		for _, issue := range enrich.CheckReferenceCodes(batch, ref) {
			zap.L().Warn("enrich: unknown reference code", zap.String("issue", issue.String()))
		}

		if enrichDryRun {
			counts := batch.Counts()
			zap.L().Info("enrich: dry run, batch is valid, nothing written",
				zap.Int("observations", counts.Observations),
				zap.Int("events", counts.Events),
				zap.Int("impact_links", counts.ImpactLinks),
			)
			return nil
		}

		counts, err := enrich.Merge(tbl, batch)
		if err != nil {
			return err
		}
		if err := dataset.WriteCSV(tbl, cfg.EnrichedPath()); err != nil {
			return err
		}

		res, err := analysis.Analyze(tbl)
		if err != nil {
			return err
		}
		written, err := report.Persist(report.Build(res, counts), cfg.ReportPath())
		if err != nil {
			return err
		}

		zap.L().Info("enrich: complete",
			zap.String("enriched_csv", cfg.EnrichedPath()),
			zap.String("report", written),
			zap.Int("observations", counts.Observations),
			zap.Int("events", counts.Events),
			zap.Int("impact_links", counts.ImpactLinks),
		)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichBatchPath, "batch", "", "path to YAML batch file (required)")
	enrichCmd.Flags().BoolVar(&enrichDryRun, "dry-run", false, "validate the batch and stop, write nothing")
	_ = enrichCmd.MarkFlagRequired("batch")
	rootCmd.AddCommand(enrichCmd)
}

// joinIssues renders validation issues one per line for error messages.
func joinIssues(issues []enrich.Issue) string {
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return strings.Join(lines, "\n  ")
}
