package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/addis-insights/inclusion-cli/internal/enrich"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the enrichment field template",
	Long: `Prints the required and optional fields for each record category
(observation, event, impact_link) as JSON, for external tooling that
prepares enrichment batches.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(os.Stdout, enrich.Template())
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
