package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// Config represents the complete application configuration
type Config struct {
	Input     InputConfig     `yaml:"input" envconfig:"INPUT"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// InputConfig points at the survey export
type InputConfig struct {
	Path string `yaml:"path" envconfig:"PATH" validate:"required"`
}

// OutputConfig controls which artifacts a run produces and where
type OutputConfig struct {
	Dir         string   `yaml:"dir" envconfig:"DIR" validate:"required"`
	Mode        string   `yaml:"mode" envconfig:"MODE" validate:"oneof=chart table json xlsx all"`
	GroupBy     []string `yaml:"group_by" envconfig:"GROUP_BY" validate:"min=1,unique,dive,required,groupable"`
	ChartWidth  float64  `yaml:"chart_width" envconfig:"CHART_WIDTH" validate:"gt=0"`
	ChartHeight float64  `yaml:"chart_height" envconfig:"CHART_HEIGHT" validate:"gt=0"`
	MetricsFile string   `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// TelemetryConfig contains OpenTelemetry configuration
type TelemetryConfig struct {
	ServiceName   string `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=stdout none"`
	EnableMetrics bool   `yaml:"enable_metrics" envconfig:"ENABLE_METRICS"`
	Environment   string `yaml:"environment" envconfig:"ENVIRONMENT"`
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment. An empty configFile searches the usual locations. The result is
// not validated; callers apply flags first and then call Validate.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load config from %s", configFile), err)
		}
	}

	// Only variables that are actually set override the file; no default tags.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration once every source has been applied
func (c *Config) Validate() error {
	c.normalize()

	if err := newValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return apperrors.NewConfigError("config validation failed", err)
		}
		problems := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
		return apperrors.NewAppValidationError("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// newValidator returns a validator that also knows the groupable tag
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("groupable", func(fl validator.FieldLevel) bool {
		return domain.Field(fl.Field().String()).Groupable()
	})
	return v
}

// normalize lowercases enumerations and trims list entries
func (c *Config) normalize() {
	c.Output.Mode = strings.ToLower(strings.TrimSpace(c.Output.Mode))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Output = strings.ToLower(strings.TrimSpace(c.Logging.Output))
	c.Telemetry.TraceExporter = strings.ToLower(strings.TrimSpace(c.Telemetry.TraceExporter))

	// The logger only writes JSON
	c.Logging.Format = "json"

	groups := c.Output.GroupBy[:0]
	for _, g := range c.Output.GroupBy {
		if g = strings.ToLower(strings.TrimSpace(g)); g != "" {
			groups = append(groups, g)
		}
	}
	c.Output.GroupBy = groups
}

// Wants reports whether the configured mode produces artifacts of kind mode
func (o OutputConfig) Wants(mode string) bool {
	return o.Mode == ModeAll || o.Mode == mode
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:         "reports",
			Mode:        ModeAll,
			GroupBy:     append([]string(nil), DefaultGroupBy...),
			ChartWidth:  DefaultChartWidth,
			ChartHeight: DefaultChartHeight,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/survey-report.log",
		},
		Telemetry: TelemetryConfig{
			ServiceName:   "survey-report",
			TraceExporter: "none",
			EnableMetrics: true,
			Environment:   "development",
		},
	}
}
