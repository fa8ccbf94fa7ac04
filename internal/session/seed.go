package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/manudejuan/home-finance/internal/config"
	"github.com/manudejuan/home-finance/internal/expenses"
)

// FromConfig builds a session seeded with the income, savings goal, horizon
// and fixed budget lines of cfg. Budget lines that fail validation are
// skipped; their rejections are joined into the returned error alongside a
// usable session.
func FromConfig(cfg *config.Config, opts Options) (*Session, error) {
	s := New(opts)
	s.SetIncome(cfg.Income)

	var errs []error
	if err := s.SetSavingsGoal(cfg.SavingsGoal); err != nil {
		errs = append(errs, err)
	}
	if err := s.SetMonths(cfg.Months); err != nil {
		errs = append(errs, err)
	}
	for i, fb := range cfg.FixedBudgets {
		if _, err := s.AddFixedExpense(fb.Name, fb.Amount); err != nil {
			errs = append(errs, fmt.Errorf("fixed_budgets[%d]: %w", i, err))
		}
	}
	return s, errors.Join(errs...)
}

// ImportExpenses reads an expense CSV and adds each row. Rows that fail
// validation are skipped and returned; a malformed file is an error.
func (s *Session) ImportExpenses(r io.Reader) (int, []expenses.RowError, error) {
	rows, err := expenses.ReadRows(r)
	if err != nil {
		return 0, nil, err
	}
	added, rejected := s.ImportRows(rows)
	return added, rejected, nil
}

// ImportRows adds already-parsed rows, skipping and returning the ones that
// fail validation.
func (s *Session) ImportRows(rows []expenses.Row) (int, []expenses.RowError) {
	return expenses.Import(s, rows)
}
