package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	args := append([]string{"shell"}, isolated(t, dir)...)
	out, _, err := runFinance(t, strings.Join(lines, "\n")+"\n", args...)
	require.NoError(t, err)
	return out
}

func TestShell_Session(t *testing.T) {
	out := runShell(t,
		"income 1000",
		"fixed Rent 600",
		`add "rent" 500 2025-03-01`,
		"add Food 300",
		"goal 2400",
		"show",
		"quit",
	)

	assert.Contains(t, out, "Income: $1000.00")
	assert.Contains(t, out, "Added fixed budget Rent $600.00 (spent $0.00)")
	assert.Contains(t, out, "Added #1 rent $500.00")
	assert.Contains(t, out, "Saved: $100.00")
	assert.Contains(t, out, "You will reach your savings goal of $2400.00 in 12 months!")
}

func TestShell_Rejections(t *testing.T) {
	out := runShell(t,
		`add "" 50`,
		"add Rent abc",
		"show expenses",
	)
	assert.Contains(t, out, `error: invalid name "": must not be empty`)
	assert.Contains(t, out, `error: invalid amount "abc": not a number`)
	assert.Contains(t, out, "No expenses yet.")
}

func TestShell_EditFlow(t *testing.T) {
	out := runShell(t,
		"fixed Gym 40",
		"add Rent 500 2025-03-01",
		"edit 1",
		"set name gym",
		"set amount 35",
		"show budgets",
		"save",
		"show budgets",
	)
	assert.Contains(t, out, "Editing #1 Rent $500.00 2025-03-01")
	assert.Contains(t, out, "Saved #1 gym $35.00")

	// Before save the Gym line is untouched; after save it carries the spend.
	first := strings.Index(out, "Saved: $40.00")
	saved := strings.Index(out, "Saved #1")
	after := strings.Index(out, "Saved: $5.00")
	require.True(t, first >= 0 && saved > first && after > saved, "output:\n%s", out)
}

func TestShell_SaveWithoutEdit(t *testing.T) {
	out := runShell(t, "save", "set name x")
	assert.Equal(t, 2, strings.Count(out, "error: no expense is being edited"))
}

func TestShell_Remove(t *testing.T) {
	out := runShell(t, "add Rent 10", "rm #1", "rm 1", "rm x")
	assert.Contains(t, out, "Removed #1")
	assert.Contains(t, out, "No expense #1")
	assert.Contains(t, out, `error: invalid id "x"`)
}

func TestShell_MonthsAndGoal(t *testing.T) {
	out := runShell(t, "months 0", "months six", "goal -5", "months 6", "income 100", "show savings")
	assert.Contains(t, out, "error: invalid months")
	assert.Contains(t, out, "error: months:")
	assert.Contains(t, out, "error: invalid savings goal")
	assert.Contains(t, out, "Projected savings in 6 months: $600.00")
}

func TestShell_Log(t *testing.T) {
	out := runShell(t, "add Rent 10", "add Rent x", "log")
	assert.Contains(t, out, "timestamp,action,outcome,record_id,details")
	assert.Contains(t, out, "add_expense,applied,1,Rent 10.00")
	assert.Contains(t, out, "add_expense,rejected")
}

func TestShell_UnknownCommand(t *testing.T) {
	out := runShell(t, "frobnicate", `add "unterminated 5`)
	assert.Contains(t, out, `error: unknown command "frobnicate"`)
	assert.Contains(t, out, "error: unterminated quote")
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"add Rent 500", []string{"add", "Rent", "500"}},
		{`add "Car insurance" 80`, []string{"add", "Car insurance", "80"}},
		{`add 'Dog food' 12.5 2025-03-01`, []string{"add", "Dog food", "12.5", "2025-03-01"}},
		{`add "" 5`, []string{"add", "", "5"}},
		{"a\tb", []string{"a", "b"}},
	}
	for _, tt := range tests {
		got, err := splitArgs(tt.line)
		require.NoError(t, err, "line: %q", tt.line)
		assert.Equal(t, tt.want, got, "line: %q", tt.line)
	}
}
