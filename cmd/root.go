package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/addis-insights/inclusion-cli/internal/config"
	"github.com/addis-insights/inclusion-cli/internal/dataset"
	"github.com/addis-insights/inclusion-cli/internal/model"
)

var (
	cfg         *config.Config
	rootDataDir string
)

var rootCmd = &cobra.Command{
	Use:          "inclusion-cli",
	Short:        "Financial-inclusion dataset analysis and enrichment",
	Long:         "Profiles the unified Ethiopia financial-inclusion dataset, validates and merges enrichment batches, and prepares forecast tables for the dashboard.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if rootDataDir != "" {
			cfg.Data.Dir = rootDataDir
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDataDir, "data-dir", "", "base data directory (overrides data.dir)")
}

// loadTables reads the unified records and reference codes CSVs from the
// configured raw directory.
func loadTables() (*dataset.Table, model.ReferenceTable, error) {
	opts := dataset.Options{Encoding: cfg.Data.Encoding}

	tbl, err := dataset.LoadUnified(cfg.UnifiedPath(), opts)
	if err != nil {
		return nil, nil, err
	}
	ref, err := dataset.LoadReferenceCodes(cfg.ReferencePath(), opts)
	if err != nil {
		return nil, nil, err
	}
	return tbl, ref, nil
}
