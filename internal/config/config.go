package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file name.
const FileName = "budget.yaml"

// Config represents budget.yaml. Amounts are kept as text and go through
// the same parsing as interactive input when a session is built.
type Config struct {
	Currency     string        `yaml:"currency"`
	Months       int           `yaml:"months"`
	Income       string        `yaml:"income"`
	SavingsGoal  string        `yaml:"savings_goal"`
	FixedBudgets []FixedBudget `yaml:"fixed_budgets,omitempty"`
	Log          LogConfig     `yaml:"log"`
}

// FixedBudget is a budget line seeded at session start.
type FixedBudget struct {
	Name   string `yaml:"name"`
	Amount string `yaml:"amount"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a budget.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, but a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
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

// Default returns a Config with sensible defaults for a new budget.
func Default() *Config {
	return &Config{
		Currency:    "$",
		Months:      12,
		Income:      "0",
		SavingsGoal: "0",
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks the settings that have no sensible fallback. Budget
// lines and amounts are validated by the session when they are applied.
func (c *Config) Validate() error {
	if c.Months < 1 {
		return fmt.Errorf("months must be at least 1, got %d", c.Months)
	}
	if c.Currency == "" {
		return errors.New("currency must not be empty")
	}
	return nil
}
