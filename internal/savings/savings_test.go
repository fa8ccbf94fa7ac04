package savings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProjected(t *testing.T) {
	tests := []struct {
		balance string
		months  int
		want    string
	}{
		{"200", 12, "2400"},
		{"-50", 6, "-300"},
		{"0", 24, "0"},
		{"33.33", 3, "99.99"},
	}
	for _, tt := range tests {
		got := Projected(dec(tt.balance), tt.months)
		assert.True(t, dec(tt.want).Equal(got), "Projected(%s, %d) = %s", tt.balance, tt.months, got)
	}
}

func TestProject_GoalMet(t *testing.T) {
	p := Project(dec("200"), dec("2400"), 12)

	assert.True(t, p.Active)
	assert.True(t, p.GoalMet)
	assert.True(t, dec("2400").Equal(p.ProjectedSavings))
	assert.Equal(t, 12, p.MonthsToGoal)
	assert.Nil(t, p.AdditionalMonthlyNeeded)
}

func TestProject_GoalMetEarly(t *testing.T) {
	p := Project(dec("300"), dec("1000"), 12)
	assert.True(t, p.GoalMet)
	assert.Equal(t, 4, p.MonthsToGoal, "ceil(1000/300)")
}

func TestProject_Shortfall(t *testing.T) {
	p := Project(dec("200"), dec("3600"), 12)

	assert.True(t, p.Active)
	assert.False(t, p.GoalMet)
	assert.Equal(t, 0, p.MonthsToGoal)
	require.NotNil(t, p.AdditionalMonthlyNeeded)
	assert.True(t, dec("100").Equal(*p.AdditionalMonthlyNeeded))
}

func TestProject_ShortfallNegativeBalance(t *testing.T) {
	p := Project(dec("-100"), dec("600"), 6)
	assert.False(t, p.GoalMet)
	require.NotNil(t, p.AdditionalMonthlyNeeded)
	// (600 - (-600)) / 6
	assert.True(t, dec("200").Equal(*p.AdditionalMonthlyNeeded))
}

func TestProject_NoGoal(t *testing.T) {
	p := Project(dec("200"), decimal.Zero, 12)
	assert.False(t, p.Active)
	assert.False(t, p.GoalMet)
	assert.Nil(t, p.AdditionalMonthlyNeeded)
	assert.True(t, dec("2400").Equal(p.ProjectedSavings))
}

func TestProject_MonthsFloor(t *testing.T) {
	p := Project(dec("100"), dec("50"), 0)
	assert.Equal(t, 1, p.Months)
	assert.True(t, dec("100").Equal(p.ProjectedSavings))
}

func TestMonthsToGoal_Clamp(t *testing.T) {
	tests := []struct {
		goal, balance string
		want          int
	}{
		{"2400", "200", 12},
		{"100", "30", 4},
		{"50", "0", 50},
		{"50", "-20", 50},
		{"10", "0.5", 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthsToGoal(dec(tt.goal), dec(tt.balance)),
			"MonthsToGoal(%s, %s)", tt.goal, tt.balance)
	}
}
