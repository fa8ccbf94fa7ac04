package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/manudejuan/home-finance/internal/expenses"
	"github.com/manudejuan/home-finance/internal/id"
	"github.com/manudejuan/home-finance/internal/model"
	"github.com/manudejuan/home-finance/internal/money"
)

// BarWidth is the number of cells in a budget progress bar.
const BarWidth = 20

// Summary renders income, total expenses and balance.
func Summary(snap model.BudgetSnapshot, currency string) string {
	balance := money.Format(currency, snap.Balance)
	if snap.Balance.IsNegative() {
		balance = badStyle.Render(balance)
	} else {
		balance = goodStyle.Render(balance)
	}
	return RenderTable(Table{
		Title: "Summary",
		Rows: [][]string{
			{"Income", money.Format(currency, snap.Income)},
			{"Total expenses", money.Format(currency, snap.TotalExpenses)},
			{separator},
			{"Balance", balance},
		},
	})
}

// Expenses renders the expense list. The row matching draft, if any, shows
// the staged values and is marked as being edited.
func Expenses(list []model.Expense, draft *model.Expense, currency string) string {
	if len(list) == 0 {
		return "  " + headerStyle.Render("Expenses") + "\n  " + mutedStyle.Render("No expenses yet.") + "\n"
	}
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		idCell := id.Format(e.ID)
		if draft != nil && draft.ID == e.ID {
			e = *draft
			idCell = warnStyle.Render("*" + idCell)
		}
		rows = append(rows, []string{
			e.Name,
			money.Format(currency, e.Amount),
			e.Date.Format(expenses.DateFormat),
			idCell,
		})
	}
	return RenderTable(Table{
		Title:   "Expenses",
		Headers: []string{"Name", "Amount", "Date", "ID"},
		Rows:    rows,
	})
}

// FixedBudgets renders each budget line with its progress bar and what is
// left (saved) or over (exceeded).
func FixedBudgets(list []model.FixedBudget, currency string) string {
	if len(list) == 0 {
		return "  " + headerStyle.Render("Fixed budgets") + "\n  " + mutedStyle.Render("No fixed budgets yet.") + "\n"
	}
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		var status string
		if b.Exceeded() {
			status = badStyle.Render("Exceeded: " + money.Format(currency, b.Overspent()))
		} else {
			status = goodStyle.Render("Saved: " + money.Format(currency, b.Remaining()))
		}
		rows = append(rows, []string{
			b.Name,
			money.Format(currency, b.Amount),
			money.Format(currency, b.Spent),
			ProgressBar(b.PercentSpent(), BarWidth),
			status,
		})
	}
	return RenderTable(Table{
		Title:   "Fixed budgets",
		Headers: []string{"Name", "Estimated", "Spent", "Used", "Status"},
		Rows:    rows,
	})
}

// ProgressBar renders a 0-100 percentage as a bar followed by the figure.
func ProgressBar(pct decimal.Decimal, width int) string {
	filled := int(pct.Mul(decimal.NewFromInt(int64(width))).Div(decimal.NewFromInt(100)).IntPart())
	filled = min(max(filled, 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %6s", barStyle.Render(bar), money.Percent(pct))
}

// Savings renders the projection line and, when a goal is set, whether it
// will be reached.
func Savings(p model.SavingsProjection, currency string) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Savings goal"))
	b.WriteString("\n  ")
	fmt.Fprintf(&b, "Projected savings in %d months: %s\n", p.Months, money.Format(currency, p.ProjectedSavings))
	if msg := GoalMessage(p, currency); msg != "" {
		b.WriteString("  ")
		if p.GoalMet {
			b.WriteString(goodStyle.Render(msg))
		} else {
			b.WriteString(badStyle.Render(msg))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// GoalMessage returns the goal attainment sentence, or "" when no goal is set.
func GoalMessage(p model.SavingsProjection, currency string) string {
	switch {
	case !p.Active:
		return ""
	case p.GoalMet:
		return fmt.Sprintf("You will reach your savings goal of %s in %d months!",
			money.Format(currency, p.Goal), p.MonthsToGoal)
	case p.AdditionalMonthlyNeeded != nil:
		return fmt.Sprintf("You will not reach your savings goal in the time given. You need to save %s more per month.",
			money.Format(currency, *p.AdditionalMonthlyNeeded))
	}
	return ""
}
