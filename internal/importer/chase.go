package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/manudejuan/home-finance/internal/expenses"
)

// ChaseParser parses Chase checking CSV exports. Debits become expenses;
// credits (deposits, refunds) are skipped since income is set separately.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns one row per debit.
func (p *ChaseParser) Parse(r io.Reader) ([]expenses.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []expenses.Row
	for i, rec := range records[1:] {
		row, debit, err := parseChaseRow(rec, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if debit {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func parseChaseRow(rec []string, line int) (expenses.Row, bool, error) {
	date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
	if err != nil {
		return expenses.Row{}, false, fmt.Errorf("parsing date %q: %w", rec[chaseColDate], err)
	}

	amount, err := decimal.NewFromString(rec[chaseColAmount])
	if err != nil {
		return expenses.Row{}, false, fmt.Errorf("parsing amount %q: %w", rec[chaseColAmount], err)
	}
	if !amount.IsNegative() {
		return expenses.Row{}, false, nil
	}

	return expenses.Row{
		Line:   line,
		Name:   rec[chaseColDesc],
		Amount: amount.Neg().StringFixed(2),
		Date:   date.Format(expenses.DateFormat),
	}, true, nil
}
