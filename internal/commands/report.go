package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/manudejuan/home-finance/internal/config"
	"github.com/manudejuan/home-finance/internal/expenses"
	"github.com/manudejuan/home-finance/internal/importer"
	"github.com/manudejuan/home-finance/internal/model"
	"github.com/manudejuan/home-finance/internal/render"
	"github.com/manudejuan/home-finance/internal/session"
)

type reportOptions struct {
	expensesPath string
	income       string
	goal         string
	format       string
	months       int
	csv          bool
}

func newReportCommand(flags *globalFlags) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print balance, fixed budgets and savings projection",
		Long: "Build a session from the budget config and an optional expense CSV\n" +
			"(header: name,amount,date) and print the summary. Nothing is written back.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cfg, err := openSession(cmd, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("income") {
				s.SetIncome(opts.income)
			}
			if cmd.Flags().Changed("goal") {
				if err := s.SetSavingsGoal(opts.goal); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("months") {
				if err := s.SetMonths(opts.months); err != nil {
					return err
				}
			}
			return runReport(cmd, s, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.expensesPath, "expenses", "e", "", "expense CSV to load")
	cmd.Flags().StringVarP(&opts.format, "format", "f", importer.DefaultFormat, "expense file format (finance, chase)")
	cmd.Flags().StringVar(&opts.income, "income", "", "monthly income (overrides config)")
	cmd.Flags().StringVar(&opts.goal, "goal", "", "savings goal (overrides config)")
	cmd.Flags().IntVarP(&opts.months, "months", "m", 0, "projection horizon in months (overrides config)")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "print the expenses as CSV instead of tables")

	return cmd
}

func runReport(cmd *cobra.Command, s *session.Session, cfg *config.Config, opts reportOptions) error {
	if opts.expensesPath != "" {
		if err := importFile(cmd, s, opts.expensesPath, opts.format); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.csv {
		return expenses.WriteExpenses(out, s.Expenses())
	}
	printReport(out, s, cfg.Currency)
	return nil
}

func printReport(out io.Writer, s *session.Session, currency string) {
	fmt.Fprint(out, render.Summary(s.Snapshot(), currency))
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Expenses(s.Expenses(), currentDraft(s), currency))
	fmt.Fprintln(out)
	fmt.Fprint(out, render.FixedBudgets(s.FixedBudgets(), currency))
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Savings(s.Projection(), currency))
}

// currentDraft returns the expense being edited, or nil.
func currentDraft(s *session.Session) *model.Expense {
	draft, ok := s.Draft()
	if !ok {
		return nil
	}
	return &draft
}

// importFile loads an expense file in the given format into s and warns
// about skipped rows.
func importFile(cmd *cobra.Command, s *session.Session, path, format string) error {
	parser, err := importer.DefaultRegistry().Lookup(format)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening expenses: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	added, rejected := s.ImportRows(rows)
	for _, re := range rejected {
		warnf(cmd, "%s: skipped %v", path, re)
	}
	if added == 0 && len(rejected) > 0 {
		warnf(cmd, "%s: no expenses imported", path)
	}
	return nil
}
