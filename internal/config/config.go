package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file at the repo root.
const FileName = "budgetreport.yaml"

// Config represents the top-level budgetreport.yaml configuration.
type Config struct {
	Report   ReportConfig   `yaml:"report"`
	Currency CurrencyConfig `yaml:"currency"`
	Git      GitConfig      `yaml:"git"`
}

// ReportConfig holds the default report parameters.
type ReportConfig struct {
	Name            string `yaml:"name"`
	Budget          string `yaml:"budget"`
	Period          Period `yaml:"period"`
	Year            int    `yaml:"year,omitempty"`        // custom period only
	StartMonth      int    `yaml:"start_month,omitempty"` // custom period only
	EndMonth        int    `yaml:"end_month,omitempty"`   // custom period only
	SubtotalByMonth bool   `yaml:"subtotal_by_month"`
	SubtotalParents bool   `yaml:"subtotal_parents"`
}

// CurrencyConfig describes how amounts are written in the project's files.
type CurrencyConfig struct {
	Code          string `yaml:"code"`
	DecimalPlaces int32  `yaml:"decimal_places"`
}

// GitConfig controls git integration.
type GitConfig struct {
	Enabled     bool   `yaml:"enabled"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a budgetreport.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail later during a build.
func (c *Config) Validate() error {
	if _, err := ParsePeriod(string(c.Report.Period)); err != nil {
		return err
	}
	if c.Currency.DecimalPlaces < 0 || c.Currency.DecimalPlaces > 6 {
		return fmt.Errorf("currency.decimal_places %d not in 0..6", c.Currency.DecimalPlaces)
	}
	if c.Report.Period == PeriodCustom {
		if _, err := c.Report.Window(zeroTime); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(budgetName string) *Config {
	return &Config{
		Report: ReportConfig{
			Name:            "Monthly Budget Report",
			Budget:          budgetName,
			Period:          PeriodAutomatic,
			SubtotalParents: true,
		},
		Currency: CurrencyConfig{
			Code:          "USD",
			DecimalPlaces: 2,
		},
		Git: GitConfig{
			Enabled:     false,
			AuthorName:  "Budget Report",
			AuthorEmail: "budgetreport@localhost",
		},
	}
}
