package fintrack

import (
	"testing"

	"github.com/etnz/fintrack/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) date.Date { return date.MustParse(s) }

func TestAddExpenditureInsufficientFunds(t *testing.T) {
	acc := NewSavingsAccount("Maybank", M(100), Money{}, date.Date{})

	require.NoError(t, acc.AddExpenditure(NewExpenditure("lunch", M(50), day("01/03/2026"), "Food")))
	assert.True(t, M(50).Equal(acc.Balance()))

	err := acc.AddExpenditure(NewExpenditure("dinner", M(60), day("01/03/2026"), "Food"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	// The failed expenditure leaves the account untouched.
	assert.True(t, M(50).Equal(acc.Balance()))
	assert.Len(t, acc.Transactions(), 1)
}

func TestAddDepositAlwaysSucceeds(t *testing.T) {
	acc := NewSavingsAccount("Maybank", Money{}, Money{}, date.Date{})
	require.NoError(t, acc.AddDeposit(NewDeposit("gift", M(30), day("02/03/2026"), CategoryDeposit)))
	assert.True(t, M(30).Equal(acc.Balance()))
}

func TestTransactionValidation(t *testing.T) {
	acc := NewSavingsAccount("Maybank", M(100), Money{}, date.Date{})

	err := acc.AddExpenditure(NewExpenditure("", M(10), day("01/03/2026"), "Food"))
	require.ErrorIs(t, err, ErrInvalidArgument)
	err = acc.AddExpenditure(NewExpenditure("x", Money{}, day("01/03/2026"), "Food"))
	require.ErrorIs(t, err, ErrInvalidArgument)
	err = acc.AddExpenditure(NewExpenditure("x", M(10), date.Date{}, "Food"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEditExpenditureRecomputesBalance(t *testing.T) {
	acc := NewSavingsAccount("Maybank", M(100), Money{}, date.Date{})
	require.NoError(t, acc.AddExpenditure(NewExpenditure("lunch", M(40), day("01/03/2026"), "Food")))

	// Raising the amount within the remaining balance works.
	amount := M(70)
	require.NoError(t, acc.EditExpenditure(1, TransactionEdit{Amount: &amount}))
	assert.True(t, M(30).Equal(acc.Balance()))

	// Raising it past the balance fails and changes nothing.
	amount = M(200)
	err := acc.EditExpenditure(1, TransactionEdit{Amount: &amount})
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, M(30).Equal(acc.Balance()))
	txs := acc.Transactions()
	assert.True(t, M(70).Equal(txs[0].Amount))
}

func TestIndexesFollowFilteredListings(t *testing.T) {
	// Listings number expenditures and deposits separately; edit and delete
	// must resolve the same numbering.
	acc := NewSavingsAccount("Maybank", M(100), Money{}, date.Date{})
	require.NoError(t, acc.AddExpenditure(NewExpenditure("lunch", M(10), day("01/03/2026"), "Food")))
	require.NoError(t, acc.AddDeposit(NewDeposit("gift", M(5), day("02/03/2026"), CategoryDeposit)))
	require.NoError(t, acc.AddExpenditure(NewExpenditure("dinner", M(20), day("03/03/2026"), "Food")))

	// Expenditure #2 is "dinner", even though it sits third in the full list.
	require.NoError(t, acc.DeleteExpenditure(2))
	assert.True(t, M(95).Equal(acc.Balance()))
	exps, err := acc.Expenditures(0)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "lunch", exps[0].Description)

	// Deposit #1 is "gift".
	require.NoError(t, acc.EditDeposit(1, TransactionEdit{Description: "present"}))
	deps, err := acc.Deposits(0)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "present", deps[0].Description)

	err = acc.DeleteExpenditure(5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDeleteDepositKeepsBalanceNonNegative(t *testing.T) {
	acc := NewSavingsAccount("Maybank", Money{}, Money{}, date.Date{})
	require.NoError(t, acc.AddDeposit(NewDeposit("gift", M(50), day("01/03/2026"), CategoryDeposit)))
	require.NoError(t, acc.AddExpenditure(NewExpenditure("lunch", M(30), day("02/03/2026"), "Food")))

	// Deleting the deposit would leave -30.
	err := acc.DeleteDeposit(1)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, M(20).Equal(acc.Balance()))
}

func TestListingsOnEmptyAccount(t *testing.T) {
	acc := NewSavingsAccount("Maybank", M(100), Money{}, date.Date{})
	_, err := acc.Expenditures(0)
	require.ErrorIs(t, err, ErrEmptyList)
	_, err = acc.Deposits(0)
	require.ErrorIs(t, err, ErrEmptyList)
}

func TestFindTransactions(t *testing.T) {
	acc := NewSavingsAccount("Maybank", M(100), Money{}, date.Date{})
	require.NoError(t, acc.AddExpenditure(NewExpenditure("chicken rice", M(5), day("01/03/2026"), "Food")))
	require.NoError(t, acc.AddExpenditure(NewExpenditure("bus fare", M(2), day("15/03/2026"), "Transport")))

	// Keyword match is case-insensitive on the description.
	txs, err := acc.FindTransactions(date.Range{}, "CHICKEN", "")
	require.NoError(t, err)
	require.Len(t, txs, 1)

	// The date range is inclusive on both bounds.
	txs, err = acc.FindTransactions(date.NewRange(day("15/03/2026"), day("31/03/2026")), "", "")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "bus fare", txs[0].Description)

	_, err = acc.FindTransactions(date.Range{}, "pizza", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSavingsRejectsBondOperations(t *testing.T) {
	acc := NewSavingsAccount("Maybank", M(100), Money{}, date.Date{})
	err := acc.AddBond(NewBond("SSB", M(10), R(2), day("01/01/2026"), 10))
	require.ErrorIs(t, err, ErrInvalidAccountType)
}

func TestInvestmentRejectsRecurringOperations(t *testing.T) {
	acc := NewInvestmentAccount("Vickers", M(100))
	err := acc.AddRecurring(NewExpenditure("netflix", M(10), day("01/04/2026"), "Leisure"))
	require.ErrorIs(t, err, ErrInvalidAccountType)
}

func TestParseAccountType(t *testing.T) {
	tt, err := ParseAccountType("saving")
	require.NoError(t, err)
	assert.Equal(t, Saving, tt)
	tt, err = ParseAccountType("investment")
	require.NoError(t, err)
	assert.Equal(t, Investment, tt)
	_, err = ParseAccountType("bonds")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
