package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"logwatch/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	View struct {
		Capacity int `yaml:"capacity" mapstructure:"capacity"`
	}
	Tail struct {
		PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`
	}
	UI struct {
		RefreshPerSecond int `yaml:"refresh_per_second" mapstructure:"refresh_per_second"`
		HistogramSize    int `yaml:"histogram_size" mapstructure:"histogram_size"`
	}
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	}
	Export struct {
		Dir string `yaml:"dir" mapstructure:"dir"`
	}
	// Severity is decoded separately from the yaml node tree so the
	// declaration order survives; viper only sees the other sections.
	Severity []SeverityRule `yaml:"-" mapstructure:"-"`
	Version  int            `yaml:"-" mapstructure:"-"`
}

// SeverityRule maps a content marker to a severity, in declaration order.
// Markers written entirely in lowercase are matched case-insensitively.
type SeverityRule struct {
	Marker   string
	Severity string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.View.Capacity = DefaultCapacity
	cfg.Tail.PollInterval = DefaultPollInterval
	cfg.UI.RefreshPerSecond = DefaultRefreshPerSecond
	cfg.UI.HistogramSize = DefaultHistogramSize
	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat
	cfg.Export.Dir = "."
	cfg.Severity = DefaultSeverityRules()

	return cfg
}

// DefaultSeverityRules returns the built-in marker ordering. The order is
// semantic: the first rule whose marker appears in a line wins.
func DefaultSeverityRules() []SeverityRule {
	return []SeverityRule{
		{Marker: "DROP", Severity: SeverityCritical},
		{Marker: "ACCEPT", Severity: SeverityOK},
		{Marker: "REJECT", Severity: SeverityWarning},
		{Marker: "alert", Severity: SeverityNotice},
	}
}

// Load loads the configuration from logwatch.yaml, applying defaults and
// environment overrides (LOGWATCH_* variables, optionally from a .env file)
func Load() (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, errors.ErrFailedToReadConfig
	}

	rules, hasRules, err := parseSeverityOrder(data)
	if err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("LOGWATCH")
	v.AutomaticEnv()

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if hasRules {
		cfg.Severity = rules
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// parseSeverityOrder extracts the severity mapping from the raw yaml in
// declaration order. Viper decodes mappings into Go maps and loses the
// ordering, so the yaml node tree is walked directly.
func parseSeverityOrder(data []byte) ([]SeverityRule, bool, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, false, err
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, false, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, false, nil
	}

	for i := 0; i < len(doc.Content); i += 2 {
		key := doc.Content[i]
		value := doc.Content[i+1]

		if key.Value != "severity" || value.Kind != yaml.MappingNode {
			continue
		}

		rules := make([]SeverityRule, 0, len(value.Content)/2)

		for j := 0; j < len(value.Content); j += 2 {
			rules = append(rules, SeverityRule{
				Marker:   value.Content[j].Value,
				Severity: value.Content[j+1].Value,
			})
		}

		return rules, true, nil
	}

	return nil, false, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.View.Capacity <= 0 {
		return errors.ErrInvalidCapacity
	}

	if c.Tail.PollInterval <= 0 {
		return errors.ErrInvalidPollInterval
	}

	if c.UI.RefreshPerSecond <= 0 || c.UI.HistogramSize <= 0 {
		return errors.ErrInvalidRefreshRate
	}

	for _, rule := range c.Severity {
		if !validSeverity(rule.Severity) {
			return fmt.Errorf("%w: '%s' for marker '%s'", errors.ErrInvalidSeverity, rule.Severity, rule.Marker)
		}
	}

	return nil
}

// validSeverity reports whether name is one of the known severity names
func validSeverity(name string) bool {
	switch name {
	case SeverityCritical, SeverityWarning, SeverityNotice, SeverityOK, SeverityNeutral:
		return true
	default:
		return false
	}
}
