package config

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Validate checks that the configuration can support the given command
// mode. All problems are reported together.
func (c *Config) Validate(mode string) error {
	var problems []string

	if c.Data.Dir == "" {
		problems = append(problems, "data.dir is required")
	}

	switch mode {
	case "analyze", "enrich":
		if c.Data.UnifiedFile == "" {
			problems = append(problems, "data.unified_file is required")
		}
		if c.Data.ReferenceFile == "" {
			problems = append(problems, "data.reference_file is required")
		}
		if c.Report.File == "" {
			problems = append(problems, "report.file is required")
		}
	case "trends":
		if c.Data.UnifiedFile == "" {
			problems = append(problems, "data.unified_file is required")
		}
	case "forecast":
		if !strings.Contains(c.Forecast.FilePattern, "%s") {
			problems = append(problems, "forecast.file_pattern must contain a %s placeholder")
		}
		if len(c.Forecast.Indicators) == 0 {
			problems = append(problems, "forecast.indicators must not be empty")
		}
		if c.Forecast.OptimisticMultiplier <= 0 {
			problems = append(problems, "forecast.optimistic_multiplier must be > 0")
		}
		if c.Forecast.PessimisticMultiplier <= 0 {
			problems = append(problems, "forecast.pessimistic_multiplier must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.Errorf("config: invalid configuration:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
