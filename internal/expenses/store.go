package expenses

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/manudejuan/home-finance/internal/id"
	"github.com/manudejuan/home-finance/internal/model"
	"github.com/manudejuan/home-finance/internal/money"
)

// DateFormat is the layout for expense dates in input and output.
const DateFormat = "2006-01-02"

// Store holds the ad-hoc expenses of one session in insertion order, plus
// at most one staged edit. It is not safe for concurrent use.
type Store struct {
	expenses []model.Expense
	ids      id.Sequence
	now      func() time.Time
	draft    *model.Expense
}

// NewStore creates an empty Store. now supplies the default date for
// expenses added without one; nil means time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{now: now}
}

// Add validates and appends a new expense. date is YYYY-MM-DD or blank for
// today. On rejection the store is unchanged and a *model.ValidationError
// is returned.
func (s *Store) Add(name, amount, date string) (model.Expense, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return model.Expense{}, err
	}

	amt, err := money.Parse(amount)
	if err != nil {
		return model.Expense{}, &model.ValidationError{Field: "amount", Value: amount, Reason: "not a number"}
	}
	if err := validateAmount(amt); err != nil {
		return model.Expense{}, err
	}

	day, err := s.parseDate(date)
	if err != nil {
		return model.Expense{}, err
	}

	e := model.Expense{
		ID:     s.ids.Next(),
		Name:   name,
		Amount: amt,
		Date:   day,
	}
	s.expenses = append(s.expenses, e)
	return e, nil
}

// Edit replaces the expense with e.ID by e in one step. Unknown ids return
// model.ErrNotFound; invalid fields return a *model.ValidationError.
func (s *Store) Edit(e model.Expense) (model.Expense, error) {
	i := s.index(e.ID)
	if i < 0 {
		return model.Expense{}, fmt.Errorf("expense %s: %w", id.Format(e.ID), model.ErrNotFound)
	}
	e.Name = strings.TrimSpace(e.Name)
	if err := validateName(e.Name); err != nil {
		return model.Expense{}, err
	}
	if err := validateAmount(e.Amount); err != nil {
		return model.Expense{}, err
	}
	e.Date = model.Day(e.Date)
	s.expenses[i] = e
	return e, nil
}

// Remove deletes the expense with the given id and reports whether it
// existed. Removing the expense being edited discards the draft.
func (s *Store) Remove(expenseID int64) bool {
	i := s.index(expenseID)
	if i < 0 {
		return false
	}
	s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
	if s.draft != nil && s.draft.ID == expenseID {
		s.draft = nil
	}
	return true
}

// All returns a copy of the expenses in insertion order.
func (s *Store) All() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Get returns an expense by id.
func (s *Store) Get(expenseID int64) (model.Expense, bool) {
	i := s.index(expenseID)
	if i < 0 {
		return model.Expense{}, false
	}
	return s.expenses[i], true
}

// Len returns the number of expenses.
func (s *Store) Len() int {
	return len(s.expenses)
}

func (s *Store) index(expenseID int64) int {
	for i, e := range s.expenses {
		if e.ID == expenseID {
			return i
		}
	}
	return -1
}

func (s *Store) parseDate(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return model.Day(s.now()), nil
	}
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, &model.ValidationError{Field: "date", Value: date, Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}

func validateName(name string) error {
	if name == "" {
		return &model.ValidationError{Field: "name", Value: name, Reason: "must not be empty"}
	}
	return nil
}

func validateAmount(amt decimal.Decimal) error {
	if amt.IsNegative() {
		return &model.ValidationError{Field: "amount", Value: amt.String(), Reason: "must not be negative"}
	}
	return nil
}
