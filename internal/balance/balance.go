// Package balance derives the current-period balance from income and expenses.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/manudejuan/home-finance/internal/model"
)

// TotalExpenses sums the amounts of all expenses.
func TotalExpenses(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Balance returns income minus total expenses. It may be negative.
func Balance(income decimal.Decimal, expenses []model.Expense) decimal.Decimal {
	return income.Sub(TotalExpenses(expenses))
}

// Snapshot computes the balance figures in one pass.
func Snapshot(income decimal.Decimal, expenses []model.Expense) model.BudgetSnapshot {
	total := TotalExpenses(expenses)
	return model.BudgetSnapshot{
		Income:        income,
		TotalExpenses: total,
		Balance:       income.Sub(total),
	}
}
