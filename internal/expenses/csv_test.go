package expenses

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manudejuan/home-finance/internal/model"
)

// storeAdder adapts a Store to the Adder interface for import tests.
type storeAdder struct {
	*Store
}

func (a storeAdder) AddExpense(name, amount, date string) (model.Expense, error) {
	return a.Add(name, amount, date)
}

func TestReadRows(t *testing.T) {
	input := "name,amount,date\nRent,500,2025-03-01\nGroceries, 42.10,\n"
	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{Line: 2, Name: "Rent", Amount: "500", Date: "2025-03-01"}, rows[0])
	assert.Equal(t, Row{Line: 3, Name: "Groceries", Amount: "42.10", Date: ""}, rows[1])
}

func TestReadRows_Empty(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestReadRows_BadHeader(t *testing.T) {
	_, err := ReadRows(strings.NewReader("concept,amount,when\nRent,500,\n"))
	assert.Error(t, err)
}

func TestReadRows_WrongFieldCount(t *testing.T) {
	_, err := ReadRows(strings.NewReader("name,amount,date\nRent,500\n"))
	assert.Error(t, err)
}

func TestImport_SkipsRejectedRows(t *testing.T) {
	input := strings.Join([]string{
		Header,
		"Rent,500,2025-03-01",
		",50,2025-03-02",
		"Rent,abc,2025-03-03",
		"Food,12.5,2025-03-04",
	}, "\n")
	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)

	s := newTestStore()
	added, rejected := Import(storeAdder{s}, rows)

	assert.Equal(t, 2, added)
	require.Len(t, rejected, 2)
	assert.Equal(t, 3, rejected[0].Line)
	assert.Equal(t, 4, rejected[1].Line)
	assert.ErrorIs(t, rejected[0], model.ErrRejected)
	assert.Equal(t, 2, s.Len())
}

func TestWriteExpenses(t *testing.T) {
	s := newTestStore()
	_, _ = s.Add("Rent", "500", "2025-03-01")
	_, _ = s.Add("Coffee, large", "3.5", "2025-03-02")

	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, s.All()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "Rent,500.00,2025-03-01", lines[1])
	assert.Equal(t, `"Coffee, large",3.50,2025-03-02`, lines[2])

	// Written files read back as rows that import cleanly.
	rows, err := ReadRows(&buf)
	require.NoError(t, err)
	added, rejected := Import(storeAdder{newTestStore()}, rows)
	assert.Equal(t, 2, added)
	assert.Empty(t, rejected)
}
