package expenses

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/manudejuan/home-finance/internal/model"
)

// Header is the CSV header for expense files.
const Header = "name,amount,date"

const (
	numFields = 3
	colName   = 0
	colAmount = 1
	colDate   = 2
)

// Row is one raw record of an expense CSV. Values are kept as text so they
// go through the same validation as interactive input.
type Row struct {
	Line   int
	Name   string
	Amount string
	Date   string
}

// ReadRows reads an expense CSV. The header row is required and skipped.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if got := strings.ToLower(strings.Join(records[0], ",")); got != Header {
		return nil, fmt.Errorf("unexpected header %q, want %q", got, Header)
	}

	var rows []Row
	for i, rec := range records[1:] {
		rows = append(rows, UnmarshalRow(rec, i+2))
	}
	return rows, nil
}

// UnmarshalRow converts a CSV record to a Row.
func UnmarshalRow(record []string, line int) Row {
	return Row{
		Line:   line,
		Name:   record[colName],
		Amount: record[colAmount],
		Date:   record[colDate],
	}
}

// MarshalExpense converts an Expense to a CSV record.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colName] = e.Name
	row[colAmount] = e.Amount.StringFixed(2)
	row[colDate] = e.Date.Format(DateFormat)
	return row
}

// WriteExpenses writes expenses as CSV, including the header.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// RowError ties a rejected CSV row to its line number.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Adder is the subset of the session surface used to import rows.
type Adder interface {
	AddExpense(name, amount, date string) (model.Expense, error)
}

// Import feeds rows through dst one at a time. Rejected rows are skipped
// and reported; a rejection never stops the import.
func Import(dst Adder, rows []Row) (added int, rejected []RowError) {
	for _, row := range rows {
		if _, err := dst.AddExpense(row.Name, row.Amount, row.Date); err != nil {
			rejected = append(rejected, RowError{Line: row.Line, Err: err})
			continue
		}
		added++
	}
	return added, rejected
}

