package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single ad-hoc dated expense.
type Expense struct {
	ID     int64
	Name   string
	Amount decimal.Decimal // never negative
	Date   time.Time       // calendar date, time of day is zero
}

// ExpensePatch holds the fields of a staged edit. Nil fields are left unchanged.
type ExpensePatch struct {
	Name   *string
	Amount *decimal.Decimal
	Date   *time.Time
}

// Apply returns a copy of e with the patch's non-nil fields replaced.
func (p ExpensePatch) Apply(e Expense) Expense {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	return e
}

// Day truncates t to midnight UTC so dates compare by calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
