package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/manudejuan/home-finance/internal/config"
	"github.com/manudejuan/home-finance/internal/session"
)

// loadConfig reads the config file (defaults if missing) and applies
// FINANCE_* overrides from the .env file and the environment.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flags.configPath)
	if err != nil {
		return nil, err
	}

	env, err := config.Environment(flags.envPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger. Diagnostics go to w; user output
// never goes through it.
func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}

// openSession builds a session from the config. Rejected budget lines are
// reported as warnings; the session is still usable.
func openSession(cmd *cobra.Command, flags *globalFlags) (*session.Session, *config.Config, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	logger.WithField("config", flags.configPath).Debug("config loaded")

	s, err := session.FromConfig(cfg, session.Options{Logger: logger})
	if err != nil {
		warnf(cmd, "%v", err)
	}
	return s, cfg, nil
}
