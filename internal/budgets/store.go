package budgets

import (
	"strings"

	"github.com/manudejuan/home-finance/internal/id"
	"github.com/manudejuan/home-finance/internal/model"
	"github.com/manudejuan/home-finance/internal/money"
	"github.com/manudejuan/home-finance/internal/reconcile"
)

// Store holds the fixed budget lines of one session in insertion order.
// Spent is only ever written through Reconcile.
type Store struct {
	budgets []model.FixedBudget
	ids     id.Sequence
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Add validates and appends a budget line with nothing spent. A zero amount
// is accepted; a blank name or a non-numeric or negative amount is rejected
// with a *model.ValidationError and the store is unchanged.
func (s *Store) Add(name, amount string) (model.FixedBudget, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.FixedBudget{}, &model.ValidationError{Field: "name", Value: name, Reason: "must not be empty"}
	}

	amt, err := money.Parse(amount)
	if err != nil {
		return model.FixedBudget{}, &model.ValidationError{Field: "amount", Value: amount, Reason: "not a number"}
	}
	if amt.IsNegative() {
		return model.FixedBudget{}, &model.ValidationError{Field: "amount", Value: amount, Reason: "must not be negative"}
	}

	b := model.FixedBudget{
		ID:     s.ids.Next(),
		Name:   name,
		Amount: amt,
	}
	s.budgets = append(s.budgets, b)
	return b, nil
}

// Reconcile recomputes Spent on every line from expenses.
func (s *Store) Reconcile(expenses []model.Expense) {
	s.budgets = reconcile.Budgets(s.budgets, expenses)
}

// All returns a copy of the budget lines in insertion order.
func (s *Store) All() []model.FixedBudget {
	out := make([]model.FixedBudget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// Get returns a budget line by id.
func (s *Store) Get(budgetID int64) (model.FixedBudget, bool) {
	for _, b := range s.budgets {
		if b.ID == budgetID {
			return b, true
		}
	}
	return model.FixedBudget{}, false
}

// Len returns the number of budget lines.
func (s *Store) Len() int {
	return len(s.budgets)
}
