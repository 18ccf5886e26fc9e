package fintrack

import (
	"testing"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfile(t *testing.T) *Profile {
	t.Helper()
	p := NewProfile("alice")
	require.NoError(t, p.AddBank(NewSavingsAccount("Maybank", M(1000), Money{}, date.Date{})))
	require.NoError(t, p.AddBank(NewSavingsAccount("DBS", M(50), Money{}, date.Date{})))
	require.NoError(t, p.AddBank(NewInvestmentAccount("Vickers", M(5000))))
	return p
}

func TestTransferFund(t *testing.T) {
	p := newTestProfile(t)

	require.NoError(t, p.TransferFund("Maybank", "DBS", M(200), day("05/03/2026")))

	from, err := p.Banks.Get("Maybank")
	require.NoError(t, err)
	to, err := p.Banks.Get("DBS")
	require.NoError(t, err)
	assert.True(t, M(800).Equal(from.Balance()))
	assert.True(t, M(250).Equal(to.Balance()))

	// Both legs are recorded with the transfer descriptions.
	exps, err := from.Expenditures(0)
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, "Fund Transfer to DBS", exps[0].Description)
	assert.Equal(t, CategoryTransfer, exps[0].Category)

	deps, err := to.Deposits(0)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "Fund Received from Maybank", deps[0].Description)
	assert.Equal(t, CategoryDeposit, deps[0].Category)
}

func TestTransferFundValidatesBeforeMutating(t *testing.T) {
	p := newTestProfile(t)

	// Destination missing: the source must not be debited.
	err := p.TransferFund("Maybank", "Citibank", M(100), day("05/03/2026"))
	require.ErrorIs(t, err, ErrNotFound)
	from, _ := p.Banks.Get("Maybank")
	assert.True(t, M(1000).Equal(from.Balance()))
	assert.Empty(t, from.Transactions())

	// Insufficient funds on the source.
	err = p.TransferFund("DBS", "Maybank", M(100), day("05/03/2026"))
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// Degenerate transfers.
	err = p.TransferFund("Maybank", "Maybank", M(10), day("05/03/2026"))
	require.ErrorIs(t, err, ErrInvalidArgument)
	err = p.TransferFund("Maybank", "DBS", Money{}, day("05/03/2026"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeleteBankUnlinksGoals(t *testing.T) {
	p := newTestProfile(t)
	require.NoError(t, p.AddGoal(NewGoal("house", M(50000), day("01/01/2030"), "Maybank")))

	require.NoError(t, p.DeleteBank("Maybank", Saving))

	g, err := p.Goals.Get("house")
	require.NoError(t, err)
	assert.Empty(t, g.SavingsName)
}

func TestAddGoalValidatesLink(t *testing.T) {
	p := newTestProfile(t)

	err := p.AddGoal(NewGoal("house", M(50000), day("01/01/2030"), "Citibank"))
	require.ErrorIs(t, err, ErrNotFound)

	// An investment account cannot back a goal.
	err = p.AddGoal(NewGoal("house", M(50000), day("01/01/2030"), "Vickers"))
	require.ErrorIs(t, err, ErrInvalidAccountType)

	require.NoError(t, p.AddGoal(NewGoal("house", M(50000), day("01/01/2030"), "Maybank")))
}

func TestParseOwnerKind(t *testing.T) {
	k, err := ParseOwnerKind("bank")
	require.NoError(t, err)
	assert.Equal(t, KindBank, k)
	k, err = ParseOwnerKind("card")
	require.NoError(t, err)
	assert.Equal(t, KindCard, k)
	_, err = ParseOwnerKind("wallet")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAddExpenditureDispatch(t *testing.T) {
	p := newTestProfile(t)
	require.NoError(t, p.AddCard(NewCard("POSB", M(5000), R(1))))

	remark, err := p.AddExpenditure(KindBank, "Maybank", NewExpenditure("lunch", M(10), day("05/03/2026"), "Food"))
	require.NoError(t, err)
	assert.Empty(t, remark)

	_, err = p.AddExpenditure(KindCard, "POSB", NewExpenditure("shoes", M(50), day("05/03/2026"), "Shopping"))
	require.NoError(t, err)
	card, err := p.Cards.Get("POSB")
	require.NoError(t, err)
	assert.Len(t, card.Unpaid(), 1)
}

func TestCloseCardBillCreditsRebate(t *testing.T) {
	p := newTestProfile(t)
	require.NoError(t, p.AddCard(NewCard("POSB", M(5000), R(1))))
	_, err := p.AddExpenditure(KindCard, "POSB", NewExpenditure("shoes", M(200), day("05/03/2026"), "Shopping"))
	require.NoError(t, err)

	rebate, err := p.CloseCardBill("POSB", 2026, time.March, "DBS")
	require.NoError(t, err)
	assert.True(t, M(2).Equal(rebate))

	acc, err := p.Banks.Get("DBS")
	require.NoError(t, err)
	assert.True(t, M(52).Equal(acc.Balance()))
	deps, err := acc.Deposits(0)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "Rebate from POSB", deps[0].Description)
}

func TestCloseCardBillValidatesDestinationFirst(t *testing.T) {
	p := newTestProfile(t)
	require.NoError(t, p.AddCard(NewCard("POSB", M(5000), R(1))))
	_, err := p.AddExpenditure(KindCard, "POSB", NewExpenditure("shoes", M(200), day("05/03/2026"), "Shopping"))
	require.NoError(t, err)

	_, err = p.CloseCardBill("POSB", 2026, time.March, "Citibank")
	require.ErrorIs(t, err, ErrNotFound)

	// The failed close left the bill open.
	card, err := p.Cards.Get("POSB")
	require.NoError(t, err)
	assert.Len(t, card.Unpaid(), 1)
	assert.Empty(t, card.Paid())
}

func TestUpdateAchievesGoals(t *testing.T) {
	p := newTestProfile(t)
	require.NoError(t, p.AddGoal(NewGoal("trip", M(500), day("01/01/2027"), "Maybank")))

	remarks := p.Update(day("15/03/2026"))
	require.NotEmpty(t, remarks)

	g, err := p.Goals.Get("trip")
	require.NoError(t, err)
	assert.True(t, g.Achieved)
	assert.True(t, g.Done)
	require.Len(t, p.Achievements, 1)
	assert.Equal(t, "trip", p.Achievements[0].Name)
	assert.Equal(t, "Goals", p.Achievements[0].Category)

	// An achieved goal is not recorded twice.
	p.Update(day("16/03/2026"))
	assert.Len(t, p.Achievements, 1)
}

func TestUpdateSkipsExpiredGoals(t *testing.T) {
	p := newTestProfile(t)
	require.NoError(t, p.AddGoal(NewGoal("trip", M(500), day("01/01/2026"), "Maybank")))

	p.Update(day("15/03/2026"))

	g, err := p.Goals.Get("trip")
	require.NoError(t, err)
	assert.False(t, g.Achieved)
	assert.Empty(t, p.Achievements)
}

func TestProfileUpdateRunsAccountSchedules(t *testing.T) {
	p := NewProfile("alice")
	require.NoError(t, p.AddBank(NewSavingsAccount("Maybank", Money{}, M(1000), day("01/01/2026"))))
	require.NoError(t, p.AddBank(NewInvestmentAccount("Vickers", Money{})))
	require.NoError(t, p.AddBond("Vickers", NewBond("SSB", M(10000), R(2), day("01/01/2026"), 10)))

	remarks := p.Update(day("15/07/2026"))

	saving, _ := p.Banks.Get("Maybank")
	invest, _ := p.Banks.Get("Vickers")
	assert.True(t, M(7000).Equal(saving.Balance()))  // Jan through Jul incomes
	assert.True(t, M(100).Equal(invest.Balance()))   // one semi-annual credit
	assert.NotEmpty(t, remarks)
}
