// Package session holds the state of one budgeting session and exposes the
// operations the presentation layer calls. Every mutation reconciles the
// fixed budgets before it returns, so readers never see a stale Spent.
//
// A Session is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/manudejuan/home-finance/internal/activity"
	"github.com/manudejuan/home-finance/internal/balance"
	"github.com/manudejuan/home-finance/internal/budgets"
	"github.com/manudejuan/home-finance/internal/expenses"
	"github.com/manudejuan/home-finance/internal/id"
	"github.com/manudejuan/home-finance/internal/model"
	"github.com/manudejuan/home-finance/internal/money"
	"github.com/manudejuan/home-finance/internal/reconcile"
	"github.com/manudejuan/home-finance/internal/savings"
)

// Actions recorded in the activity log.
const (
	ActionAddExpense      = "add_expense"
	ActionEditExpense     = "edit_expense"
	ActionSaveExpense     = "save_expense"
	ActionCancelEdit      = "cancel_edit"
	ActionRemoveExpense   = "remove_expense"
	ActionAddFixedExpense = "add_fixed_expense"
	ActionSetIncome       = "set_income"
	ActionSetSavingsGoal  = "set_savings_goal"
	ActionSetMonths       = "set_months"
)

// Options configures a new Session.
type Options struct {
	// Now supplies today's date for undated expenses and log timestamps.
	// Defaults to time.Now.
	Now func() time.Time
	// Logger receives diagnostic events. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// Session is the explicit application state: income, savings goal,
// projection horizon, both stores, and the editing draft (held by the
// expense store).
type Session struct {
	income      decimal.Decimal
	savingsGoal decimal.Decimal
	months      int

	expenses *expenses.Store
	budgets  *budgets.Store
	activity *activity.Log
	log      logrus.FieldLogger
}

// New creates an empty session with a twelve month horizon.
func New(opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	return &Session{
		months:   savings.DefaultMonths,
		expenses: expenses.NewStore(opts.Now),
		budgets:  budgets.NewStore(),
		activity: activity.NewLog(opts.Now),
		log:      opts.Logger,
	}
}

// AddExpense adds an expense. date is YYYY-MM-DD or blank for today.
// Invalid input returns a *model.ValidationError and changes nothing.
func (s *Session) AddExpense(name, amount, date string) (model.Expense, error) {
	e, err := s.expenses.Add(name, amount, date)
	if err != nil {
		s.rejected(ActionAddExpense, 0, err)
		return model.Expense{}, err
	}
	s.reconcile()
	s.applied(ActionAddExpense, e.ID, fmt.Sprintf("%s %s", e.Name, money.Fixed(e.Amount)))
	return e, nil
}

// EditExpense stages the expense with the given id for editing. Committed
// state does not change until SaveEditedExpense.
func (s *Session) EditExpense(expenseID int64) (model.Expense, error) {
	e, err := s.expenses.BeginEdit(expenseID)
	if err != nil {
		s.noop(ActionEditExpense, expenseID, err)
		return model.Expense{}, err
	}
	s.applied(ActionEditExpense, expenseID, "draft staged")
	return e, nil
}

// UpdateDraft changes fields of the staged draft.
func (s *Session) UpdateDraft(patch model.ExpensePatch) (model.Expense, error) {
	return s.expenses.UpdateDraft(patch)
}

// Draft returns the staged edit, if any.
func (s *Session) Draft() (model.Expense, bool) {
	return s.expenses.Draft()
}

// SaveEditedExpense commits the draft. An invalid draft is rejected and
// stays staged.
func (s *Session) SaveEditedExpense() (model.Expense, error) {
	draft, _ := s.expenses.Draft()
	e, err := s.expenses.SaveEdit()
	if err != nil {
		if errors.Is(err, model.ErrRejected) {
			s.rejected(ActionSaveExpense, draft.ID, err)
		} else {
			s.noop(ActionSaveExpense, draft.ID, err)
		}
		return model.Expense{}, err
	}
	s.reconcile()
	s.applied(ActionSaveExpense, e.ID, fmt.Sprintf("%s %s", e.Name, money.Fixed(e.Amount)))
	return e, nil
}

// CancelEdit discards the draft.
func (s *Session) CancelEdit() {
	draft, ok := s.expenses.Draft()
	if !ok {
		return
	}
	s.expenses.CancelEdit()
	s.applied(ActionCancelEdit, draft.ID, "")
}

// RemoveExpense deletes an expense and reports whether it existed.
func (s *Session) RemoveExpense(expenseID int64) bool {
	if !s.expenses.Remove(expenseID) {
		s.noop(ActionRemoveExpense, expenseID, fmt.Errorf("expense %s: %w", id.Format(expenseID), model.ErrNotFound))
		return false
	}
	s.reconcile()
	s.applied(ActionRemoveExpense, expenseID, "")
	return true
}

// AddFixedExpense adds a fixed budget line with nothing spent yet, then
// reconciles so existing matching expenses count against it.
func (s *Session) AddFixedExpense(name, amount string) (model.FixedBudget, error) {
	b, err := s.budgets.Add(name, amount)
	if err != nil {
		s.rejected(ActionAddFixedExpense, 0, err)
		return model.FixedBudget{}, err
	}
	s.reconcile()
	b, _ = s.budgets.Get(b.ID)
	s.applied(ActionAddFixedExpense, b.ID, fmt.Sprintf("%s %s", b.Name, money.Fixed(b.Amount)))
	return b, nil
}

// SetIncome sets the monthly income. Text that is not a number counts as 0.
func (s *Session) SetIncome(value string) {
	s.income = money.ParseOrZero(value)
	s.applied(ActionSetIncome, 0, money.Fixed(s.income))
}

// SetSavingsGoal sets the savings goal. Text that is not a number counts as
// 0, which turns goal tracking off. Negative goals are rejected.
func (s *Session) SetSavingsGoal(value string) error {
	goal := money.ParseOrZero(value)
	if goal.IsNegative() {
		err := &model.ValidationError{Field: "savings goal", Value: value, Reason: "must not be negative"}
		s.rejected(ActionSetSavingsGoal, 0, err)
		return err
	}
	s.savingsGoal = goal
	s.applied(ActionSetSavingsGoal, 0, money.Fixed(goal))
	return nil
}

// SetMonths sets the projection horizon. Values below 1 are rejected and
// the previous horizon is kept.
func (s *Session) SetMonths(months int) error {
	if months < 1 {
		err := &model.ValidationError{Field: "months", Value: fmt.Sprint(months), Reason: "must be at least 1"}
		s.rejected(ActionSetMonths, 0, err)
		return err
	}
	s.months = months
	s.applied(ActionSetMonths, 0, fmt.Sprint(months))
	return nil
}

// Income returns the monthly income.
func (s *Session) Income() decimal.Decimal { return s.income }

// SavingsGoal returns the savings goal; zero means none.
func (s *Session) SavingsGoal() decimal.Decimal { return s.savingsGoal }

// Months returns the projection horizon.
func (s *Session) Months() int { return s.months }

// Expenses returns the expenses in insertion order.
func (s *Session) Expenses() []model.Expense {
	return s.expenses.All()
}

// FixedBudgets returns the budget lines with Spent up to date.
func (s *Session) FixedBudgets() []model.FixedBudget {
	return s.budgets.All()
}

// Unbudgeted returns the expenses that match no fixed budget line.
func (s *Session) Unbudgeted() []model.Expense {
	return reconcile.Unbudgeted(s.budgets.All(), s.expenses.All())
}

// TotalExpenses returns the sum of all expense amounts.
func (s *Session) TotalExpenses() decimal.Decimal {
	return balance.TotalExpenses(s.expenses.All())
}

// Balance returns income minus total expenses.
func (s *Session) Balance() decimal.Decimal {
	return balance.Balance(s.income, s.expenses.All())
}

// Snapshot returns income, total expenses and balance together.
func (s *Session) Snapshot() model.BudgetSnapshot {
	return balance.Snapshot(s.income, s.expenses.All())
}

// SavingsProjection projects the current balance over months and checks it
// against the savings goal.
func (s *Session) SavingsProjection(months int) model.SavingsProjection {
	return savings.Project(s.Balance(), s.savingsGoal, months)
}

// Projection is SavingsProjection over the session's own horizon.
func (s *Session) Projection() model.SavingsProjection {
	return s.SavingsProjection(s.months)
}

// Activity returns every recorded mutation, rejected ones included.
func (s *Session) Activity() []activity.Entry {
	return s.activity.Entries()
}

// Rejections returns the rejected mutations.
func (s *Session) Rejections() []activity.Entry {
	return s.activity.Rejections()
}

// reconcile must run at the end of every method that changes either store.
func (s *Session) reconcile() {
	s.budgets.Reconcile(s.expenses.All())
}

func (s *Session) applied(action string, recordID int64, details string) {
	s.activity.Record(action, activity.OutcomeApplied, recordID, details)
	s.log.WithFields(logrus.Fields{
		"action":    action,
		"record_id": recordID,
	}).Debug(details)
}

func (s *Session) rejected(action string, recordID int64, err error) {
	s.activity.Record(action, activity.OutcomeRejected, recordID, err.Error())
	fields := logrus.Fields{"action": action}
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		fields["field"] = verr.Field
	}
	if recordID != 0 {
		fields["record_id"] = recordID
	}
	s.log.WithFields(fields).Info("rejected: ", err)
}

func (s *Session) noop(action string, recordID int64, err error) {
	s.activity.Record(action, activity.OutcomeNoop, recordID, err.Error())
	s.log.WithFields(logrus.Fields{
		"action":    action,
		"record_id": recordID,
	}).Debug("no change: ", err)
}
