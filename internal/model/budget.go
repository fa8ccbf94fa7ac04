package model

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FixedBudget is a recurring named spending line. Spent is derived from the
// expenses whose name matches and is only written by reconciliation.
type FixedBudget struct {
	ID     int64
	Name   string
	Amount decimal.Decimal // estimated monthly amount
	Spent  decimal.Decimal
}

// PercentSpent returns Spent as a percentage of Amount, clamped to [0, 100].
// A zero (or negative) Amount yields 0.
func (b FixedBudget) PercentSpent() decimal.Decimal {
	if !b.Amount.IsPositive() {
		return decimal.Zero
	}
	pct := b.Spent.Div(b.Amount).Mul(hundred)
	switch {
	case pct.IsNegative():
		return decimal.Zero
	case pct.GreaterThan(hundred):
		return hundred
	}
	return pct
}

// Remaining returns how much of the budget is left, or zero once it is used up.
func (b FixedBudget) Remaining() decimal.Decimal {
	if b.Spent.LessThan(b.Amount) {
		return b.Amount.Sub(b.Spent)
	}
	return decimal.Zero
}

// Overspent returns how far Spent exceeds Amount, or zero if it does not.
func (b FixedBudget) Overspent() decimal.Decimal {
	if b.Spent.GreaterThanOrEqual(b.Amount) {
		return b.Spent.Sub(b.Amount)
	}
	return decimal.Zero
}

// Exceeded reports whether the budget is used up. A budget that is spent
// exactly counts as exceeded, with an overspend of zero.
func (b FixedBudget) Exceeded() bool {
	return !b.Spent.LessThan(b.Amount)
}

// BudgetSnapshot is the derived balance for the current period.
type BudgetSnapshot struct {
	Income        decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// SavingsProjection is a linear projection of the monthly balance.
type SavingsProjection struct {
	Months           int
	Goal             decimal.Decimal
	ProjectedSavings decimal.Decimal

	// Active is false when no savings goal is set; the goal fields below are
	// meaningless in that case.
	Active  bool
	GoalMet bool

	MonthsToGoal            int              // set when GoalMet
	AdditionalMonthlyNeeded *decimal.Decimal // set when Active && !GoalMet
}
