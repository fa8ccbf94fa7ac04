package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override budget.yaml.
const (
	EnvIncome      = "FINANCE_INCOME"
	EnvSavingsGoal = "FINANCE_SAVINGS_GOAL"
	EnvMonths      = "FINANCE_MONTHS"
	EnvCurrency    = "FINANCE_CURRENCY"
	EnvLogLevel    = "FINANCE_LOG_LEVEL"
)

const envPrefix = "FINANCE_"

// Environment returns the FINANCE_* settings from a .env file (if it
// exists) overlaid with the process environment. Real environment
// variables win over the file.
func Environment(dotenvPath string) (map[string]string, error) {
	env := make(map[string]string)

	if dotenvPath != "" {
		fileEnv, err := godotenv.Read(dotenvPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", dotenvPath, err)
		}
		for k, v := range fileEnv {
			if strings.HasPrefix(k, envPrefix) {
				env[k] = v
			}
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv overrides cfg fields from env.
func (c *Config) ApplyEnv(env map[string]string) error {
	if v, ok := env[EnvIncome]; ok {
		c.Income = v
	}
	if v, ok := env[EnvSavingsGoal]; ok {
		c.SavingsGoal = v
	}
	if v, ok := env[EnvCurrency]; ok && v != "" {
		c.Currency = v
	}
	if v, ok := env[EnvLogLevel]; ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := env[EnvMonths]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", EnvMonths, v, err)
		}
		c.Months = n
	}
	return c.Validate()
}
