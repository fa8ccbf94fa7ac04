// Package savings projects the monthly balance forward and checks it
// against a savings goal.
package savings

import (
	"github.com/shopspring/decimal"

	"github.com/manudejuan/home-finance/internal/model"
)

// DefaultMonths is the projection horizon when none is configured.
const DefaultMonths = 12

// Projected returns balance * months. No compounding, no variance.
func Projected(balance decimal.Decimal, months int) decimal.Decimal {
	return balance.Mul(decimal.NewFromInt(int64(months)))
}

// MonthsToGoal returns ceil(goal / max(balance, 1)). Balances below one
// are floored to one so the count stays finite and positive; for a zero or
// negative balance this reports goal months, which is a legacy answer
// rather than a meaningful one.
func MonthsToGoal(goal, balance decimal.Decimal) int {
	divisor := decimal.Max(balance, decimal.NewFromInt(1))
	return int(goal.Div(divisor).Ceil().IntPart())
}

// Project evaluates the savings goal over months. A goal of zero (or less)
// leaves the projection inactive. months below one are treated as one.
func Project(balance, goal decimal.Decimal, months int) model.SavingsProjection {
	if months < 1 {
		months = 1
	}

	p := model.SavingsProjection{
		Months:           months,
		Goal:             goal,
		ProjectedSavings: Projected(balance, months),
	}
	if !goal.IsPositive() {
		return p
	}

	p.Active = true
	if p.ProjectedSavings.GreaterThanOrEqual(goal) {
		p.GoalMet = true
		p.MonthsToGoal = MonthsToGoal(goal, balance)
		return p
	}

	needed := goal.Sub(p.ProjectedSavings).Div(decimal.NewFromInt(int64(months)))
	p.AdditionalMonthlyNeeded = &needed
	return p
}
