package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manudejuan/home-finance/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(id int64, name, amount string) model.Expense {
	return model.Expense{ID: id, Name: name, Amount: dec(amount)}
}

func TestBudgets_CaseInsensitive(t *testing.T) {
	budgets := []model.FixedBudget{{ID: 1, Name: "Rent", Amount: dec("900")}}
	expenses := []model.Expense{
		expense(1, "rent", "100"),
		expense(2, "RENT", "100"),
		expense(3, "ReNt", "100"),
		expense(4, "Rent ", "5"), // trailing space is a different name
		expense(5, "Food", "40"),
	}

	got := Budgets(budgets, expenses)
	require.Len(t, got, 1)
	assert.True(t, dec("300").Equal(got[0].Spent), "spent = %s", got[0].Spent)
}

func TestBudgets_DiscardsPreviousSpent(t *testing.T) {
	budgets := []model.FixedBudget{{ID: 1, Name: "Rent", Amount: dec("900"), Spent: dec("12345")}}
	got := Budgets(budgets, nil)
	assert.True(t, got[0].Spent.IsZero())
}

func TestBudgets_Idempotent(t *testing.T) {
	budgets := []model.FixedBudget{
		{ID: 1, Name: "Rent", Amount: dec("900")},
		{ID: 2, Name: "Food", Amount: dec("300")},
	}
	expenses := []model.Expense{
		expense(1, "rent", "450.50"),
		expense(2, "food", "20.25"),
		expense(3, "Food", "30"),
	}

	once := Budgets(budgets, expenses)
	twice := Budgets(once, expenses)
	require.Len(t, twice, 2)
	for i := range once {
		assert.True(t, once[i].Spent.Equal(twice[i].Spent))
	}
	assert.True(t, dec("450.50").Equal(twice[0].Spent))
	assert.True(t, dec("50.25").Equal(twice[1].Spent))
}

func TestBudgets_DoesNotMutateInput(t *testing.T) {
	budgets := []model.FixedBudget{{ID: 1, Name: "Rent", Amount: dec("900")}}
	_ = Budgets(budgets, []model.Expense{expense(1, "rent", "10")})
	assert.True(t, budgets[0].Spent.IsZero())
}

func TestBudgets_DuplicateBudgetNames(t *testing.T) {
	// Two lines with the same name both see the full matching spend.
	budgets := []model.FixedBudget{
		{ID: 1, Name: "Gym", Amount: dec("30")},
		{ID: 2, Name: "gym", Amount: dec("40")},
	}
	got := Budgets(budgets, []model.Expense{expense(1, "GYM", "35")})
	assert.True(t, dec("35").Equal(got[0].Spent))
	assert.True(t, dec("35").Equal(got[1].Spent))
}

func TestKey_Unicode(t *testing.T) {
	assert.True(t, Matches("ALQUILER ÑANDÚ", "alquiler ñandú"))
	assert.True(t, Matches("ÉCOLE", "école"))
	assert.False(t, Matches("Rent", "Rental"))
}

func TestUnbudgeted(t *testing.T) {
	budgets := []model.FixedBudget{{ID: 1, Name: "Rent", Amount: dec("900")}}
	expenses := []model.Expense{
		expense(1, "rent", "100"),
		expense(2, "Cinema", "12"),
		expense(3, "Books", "30"),
	}
	got := Unbudgeted(budgets, expenses)
	require.Len(t, got, 2)
	assert.Equal(t, "Cinema", got[0].Name)
	assert.Equal(t, "Books", got[1].Name)
}
