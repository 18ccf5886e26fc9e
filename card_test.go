package fintrack

import (
	"testing"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardSpendIsAdvisory(t *testing.T) {
	c := NewCard("POSB", M(100), R(1))

	remark, err := c.AddExpenditure(NewExpenditure("groceries", M(80), day("05/03/2026"), "Food"))
	require.NoError(t, err)
	assert.Empty(t, remark)

	// Past the limit the spend still goes through, with a remark.
	remark, err = c.AddExpenditure(NewExpenditure("shoes", M(50), day("10/03/2026"), "Shopping"))
	require.NoError(t, err)
	assert.NotEmpty(t, remark)
	assert.Len(t, c.Unpaid(), 2)

	// A different month starts a fresh count.
	remark, err = c.AddExpenditure(NewExpenditure("dinner", M(30), day("02/04/2026"), "Food"))
	require.NoError(t, err)
	assert.Empty(t, remark)
}

func TestCardExpenditureCarriesCardID(t *testing.T) {
	c := NewCard("POSB", M(5000), R(1))
	_, err := c.AddExpenditure(NewExpenditure("groceries", M(80), day("05/03/2026"), "Food"))
	require.NoError(t, err)

	tx := c.Unpaid()[0]
	assert.Equal(t, c.ID(), tx.CardID)
	// The bill date defaults to the transaction date.
	assert.Equal(t, day("05/03/2026"), tx.BillDate)
}

func TestCardEditAndDelete(t *testing.T) {
	c := NewCard("POSB", M(5000), R(1))
	_, err := c.AddExpenditure(NewExpenditure("groceries", M(80), day("05/03/2026"), "Food"))
	require.NoError(t, err)
	_, err = c.AddExpenditure(NewExpenditure("shoes", M(50), day("10/03/2026"), "Shopping"))
	require.NoError(t, err)

	amount := M(60)
	require.NoError(t, c.EditExpenditure(2, TransactionEdit{Amount: &amount}))
	assert.True(t, M(60).Equal(c.Unpaid()[1].Amount))

	require.NoError(t, c.DeleteExpenditure(1))
	require.Len(t, c.Unpaid(), 1)
	assert.Equal(t, "shoes", c.Unpaid()[0].Description)

	err = c.DeleteExpenditure(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCloseBill(t *testing.T) {
	c := NewCard("POSB", M(5000), R(1))
	_, err := c.AddExpenditure(NewExpenditure("groceries", M(80), day("05/03/2026"), "Food"))
	require.NoError(t, err)
	_, err = c.AddExpenditure(NewExpenditure("shoes", M(120), day("20/03/2026"), "Shopping"))
	require.NoError(t, err)
	_, err = c.AddExpenditure(NewExpenditure("dinner", M(30), day("02/04/2026"), "Food"))
	require.NoError(t, err)

	// 1% of the 200 March spend.
	rebate, err := c.CloseBill(2026, time.March)
	require.NoError(t, err)
	assert.True(t, M(2).Equal(rebate))

	// March moved to the paid list, April stays unpaid.
	assert.Len(t, c.Paid(), 2)
	require.Len(t, c.Unpaid(), 1)
	assert.Equal(t, "dinner", c.Unpaid()[0].Description)

	// Closing a month with no spend fails and migrates nothing.
	_, err = c.CloseBill(2026, time.March)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, c.Paid(), 2)
}

func TestCardFindTransactionsSearchesBothLists(t *testing.T) {
	c := NewCard("POSB", M(5000), R(1))
	_, err := c.AddExpenditure(NewExpenditure("groceries", M(80), day("05/03/2026"), "Food"))
	require.NoError(t, err)
	_, err = c.AddExpenditure(NewExpenditure("grocery run", M(40), day("02/04/2026"), "Food"))
	require.NoError(t, err)
	_, err = c.CloseBill(2026, time.March)
	require.NoError(t, err)

	txs, err := c.FindTransactions(date.Range{}, "grocer", "")
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}
