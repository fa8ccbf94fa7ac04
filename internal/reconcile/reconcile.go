// Package reconcile links ad-hoc expenses to fixed budget lines by name and
// recomputes how much of each budget has been spent.
package reconcile

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/manudejuan/home-finance/internal/model"
)

// Key returns the matching key for a budget or expense name. Names match
// when their full Unicode lower-case forms are equal.
func Key(name string) string {
	// cases.Caser is stateful; build one per call.
	return cases.Lower(language.Und).String(name)
}

// Matches reports whether an expense name links to a budget name.
func Matches(expenseName, budgetName string) bool {
	return Key(expenseName) == Key(budgetName)
}

// SpentByKey sums expense amounts per matching key.
func SpentByKey(expenses []model.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(expenses))
	for _, e := range expenses {
		k := Key(e.Name)
		totals[k] = totals[k].Add(e.Amount)
	}
	return totals
}

// Budgets returns a copy of budgets with Spent recomputed from scratch out
// of expenses. Previous Spent values are ignored, so calling it again on
// its own output with the same expenses yields the same result. The input
// slice is not modified.
func Budgets(budgets []model.FixedBudget, expenses []model.Expense) []model.FixedBudget {
	totals := SpentByKey(expenses)
	out := make([]model.FixedBudget, len(budgets))
	for i, b := range budgets {
		b.Spent = totals[Key(b.Name)]
		out[i] = b
	}
	return out
}

// Unbudgeted returns the expenses that match no budget line, in order.
func Unbudgeted(budgets []model.FixedBudget, expenses []model.Expense) []model.Expense {
	keys := make(map[string]bool, len(budgets))
	for _, b := range budgets {
		keys[Key(b.Name)] = true
	}
	var out []model.Expense
	for _, e := range expenses {
		if !keys[Key(e.Name)] {
			out = append(out, e)
		}
	}
	return out
}
