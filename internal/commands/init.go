package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/manudejuan/home-finance/internal/config"
)

func newInitCommand() *cobra.Command {
	var force bool
	var income string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter budget.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, income, currency, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing budget.yaml")
	cmd.Flags().StringVar(&income, "income", "0", "monthly income")
	cmd.Flags().StringVar(&currency, "currency", "$", "currency symbol")

	return cmd
}

func runInit(out io.Writer, dir, income, currency string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(dir, config.FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	cfg := config.Default()
	cfg.Income = income
	cfg.Currency = currency
	cfg.FixedBudgets = starterBudgets()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

// starterBudgets are the example lines written by init. Amounts are zero so
// the user fills in their own estimates.
func starterBudgets() []config.FixedBudget {
	return []config.FixedBudget{
		{Name: "Rent", Amount: "0"},
		{Name: "Utilities", Amount: "0"},
		{Name: "Groceries", Amount: "0"},
		{Name: "Transport", Amount: "0"},
	}
}
