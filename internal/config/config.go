package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data     DataConfig     `yaml:"data" mapstructure:"data"`
	Report   ReportConfig   `yaml:"report" mapstructure:"report"`
	Forecast ForecastConfig `yaml:"forecast" mapstructure:"forecast"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// DataConfig locates the dataset files. Dir is the base directory: raw
// inputs are read from <dir>/raw and outputs written under
// <dir>/processed.
type DataConfig struct {
	Dir           string `yaml:"dir" mapstructure:"dir"`
	UnifiedFile   string `yaml:"unified_file" mapstructure:"unified_file"`
	ReferenceFile string `yaml:"reference_file" mapstructure:"reference_file"`
	Encoding      string `yaml:"encoding" mapstructure:"encoding"`
}

// ReportConfig configures the enrichment report output.
type ReportConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// ForecastConfig configures forecast table loading and scenario
// projections.
type ForecastConfig struct {
	FilePattern           string             `yaml:"file_pattern" mapstructure:"file_pattern"`
	Indicators            []string           `yaml:"indicators" mapstructure:"indicators"`
	OptimisticMultiplier  float64            `yaml:"optimistic_multiplier" mapstructure:"optimistic_multiplier"`
	PessimisticMultiplier float64            `yaml:"pessimistic_multiplier" mapstructure:"pessimistic_multiplier"`
	Targets               map[string]float64 `yaml:"targets" mapstructure:"targets"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// RawDir is the directory input CSVs are read from.
func (c *Config) RawDir() string {
	return filepath.Join(c.Data.Dir, "raw")
}

// ProcessedDir is the directory outputs are written to. Writers create it
// on demand; the loader never does.
func (c *Config) ProcessedDir() string {
	return filepath.Join(c.Data.Dir, "processed")
}

// UnifiedPath is the path of the unified records CSV.
func (c *Config) UnifiedPath() string {
	return filepath.Join(c.RawDir(), c.Data.UnifiedFile)
}

// ReferencePath is the path of the reference codes CSV.
func (c *Config) ReferencePath() string {
	return filepath.Join(c.RawDir(), c.Data.ReferenceFile)
}

// ReportPath is the path the enrichment report is written to.
func (c *Config) ReportPath() string {
	return filepath.Join(c.ProcessedDir(), c.Report.File)
}

// EnrichedPath is the path the merged dataset CSV is written to.
func (c *Config) EnrichedPath() string {
	stem := strings.TrimSuffix(c.Data.UnifiedFile, filepath.Ext(c.Data.UnifiedFile))
	return filepath.Join(c.ProcessedDir(), stem+"_enriched.csv")
}

// ForecastPath is the path of the forecast table for one indicator.
func (c *Config) ForecastPath(indicator string) string {
	return filepath.Join(c.ProcessedDir(), fmt.Sprintf(c.Forecast.FilePattern, indicator))
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("INCLUSION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.unified_file", "ethiopia_fi_unified.csv")
	v.SetDefault("data.reference_file", "reference_codes.csv")
	v.SetDefault("data.encoding", "")
	v.SetDefault("report.file", "enrichment_report.json")
	v.SetDefault("forecast.file_pattern", "forecast_table_%s.csv")
	v.SetDefault("forecast.indicators", []string{"ACC_OWNERSHIP", "USG_DIGITAL_PAYMENT"})
	v.SetDefault("forecast.optimistic_multiplier", 1.2)
	v.SetDefault("forecast.pessimistic_multiplier", 0.8)
	v.SetDefault("forecast.targets", map[string]float64{"ACC_OWNERSHIP": 60.0})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
