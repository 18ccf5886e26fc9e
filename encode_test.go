package fintrack

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfileMissing(t *testing.T) {
	_, err := LoadProfile(t.TempDir())
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	p := NewProfile("alice")
	require.NoError(t, p.AddBank(NewSavingsAccount("Maybank", M(1000), M(2500), day("01/04/2026"))))
	require.NoError(t, p.AddBank(NewInvestmentAccount("Vickers", M(5000))))
	require.NoError(t, p.Banks.AddExpenditure("Maybank", NewExpenditure("lunch", M(12.50), day("05/03/2026"), "Food")))
	require.NoError(t, p.Banks.AddDeposit("Maybank", NewDeposit("gift", M(30), day("06/03/2026"), CategoryDeposit)))
	require.NoError(t, p.AddRecurring("Maybank", NewExpenditure("netflix", M(15), day("01/04/2026"), "Leisure")))
	require.NoError(t, p.AddBond("Vickers", NewBond("Jan SSB", M(10000), R(2.5), day("01/01/2026"), 10)))

	require.NoError(t, p.AddCard(NewCard("POSB", M(5000), R(1))))
	_, err := p.Cards.AddExpenditure("POSB", NewExpenditure("shoes", M(120), day("10/03/2026"), "Shopping"))
	require.NoError(t, err)
	_, err = p.Cards.AddExpenditure("POSB", NewExpenditure("dinner", M(60), day("05/02/2026"), "Food"))
	require.NoError(t, err)
	_, err = p.Cards.CloseBill("POSB", 2026, time.February)
	require.NoError(t, err)

	require.NoError(t, p.AddGoal(NewGoal("house", M(50000), day("01/01/2030"), "Maybank")))
	p.Achievements = append(p.Achievements, Achievement{Name: "trip", Amount: M(500), Category: "Goals", Date: day("01/02/2026")})

	require.NoError(t, SaveProfile(dir, p))
	loaded, err := LoadProfile(dir)
	require.NoError(t, err)

	assert.Equal(t, "alice", loaded.Username)

	saving, err := loaded.Banks.GetSaving("Maybank")
	require.NoError(t, err)
	assert.True(t, M(1017.50).Equal(saving.Balance()))
	assert.True(t, M(2500).Equal(saving.Income()))
	assert.Equal(t, day("01/04/2026"), saving.NextIncomeDate())
	require.Len(t, saving.Transactions(), 2)
	assert.Equal(t, "lunch", saving.Transactions()[0].Description)
	assert.True(t, saving.Transactions()[0].Spent)
	recurring, err := saving.Recurring()
	require.NoError(t, err)
	require.Len(t, recurring, 1)
	assert.Equal(t, "netflix", recurring[0].Description)

	invest, err := loaded.Banks.GetInvestment("Vickers")
	require.NoError(t, err)
	bonds, err := invest.Bonds(0)
	require.NoError(t, err)
	require.Len(t, bonds, 1)
	b := bonds[0]
	assert.Equal(t, "Jan SSB", b.Name)
	assert.True(t, M(10000).Equal(b.Amount))
	assert.True(t, R(2.5).Equal(b.Rate))
	assert.Equal(t, day("01/07/2026"), b.NextDateToCreditInterest)
	assert.False(t, b.IsMature)

	card, err := loaded.Cards.Get("POSB")
	require.NoError(t, err)
	assert.True(t, M(5000).Equal(card.Limit()))
	assert.True(t, R(1).Equal(card.Rebate()))
	require.Len(t, card.Unpaid(), 1)
	assert.Equal(t, "shoes", card.Unpaid()[0].Description)
	assert.Equal(t, card.ID(), card.Unpaid()[0].CardID)
	require.Len(t, card.Paid(), 1)
	assert.Equal(t, "dinner", card.Paid()[0].Description)

	g, err := loaded.Goals.Get("house")
	require.NoError(t, err)
	assert.Equal(t, "Maybank", g.SavingsName)
	assert.False(t, g.Done)

	require.Len(t, loaded.Achievements, 1)
	assert.Equal(t, "trip", loaded.Achievements[0].Name)
}

func TestRefsAreStableAcrossSaves(t *testing.T) {
	dir := t.TempDir()

	p := NewProfile("alice")
	require.NoError(t, p.AddBank(NewSavingsAccount("Maybank", M(100), Money{}, date.Date{})))
	require.NoError(t, SaveProfile(dir, p))

	loaded, err := LoadProfile(dir)
	require.NoError(t, err)
	acc, err := loaded.Banks.Get("Maybank")
	require.NoError(t, err)

	orig, err := p.Banks.Get("Maybank")
	require.NoError(t, err)
	assert.Equal(t, orig.Ref(), acc.Ref())

	// Renaming the account does not change the files it maps to.
	require.NoError(t, loaded.Banks.EditSavings("Maybank", "OCBC", nil, nil))
	require.NoError(t, SaveProfile(dir, loaded))
	reloaded, err := LoadProfile(dir)
	require.NoError(t, err)
	again, err := reloaded.Banks.Get("OCBC")
	require.NoError(t, err)
	assert.Equal(t, orig.Ref(), again.Ref())
}

func TestSaveRemovesStaleFiles(t *testing.T) {
	dir := t.TempDir()

	p := NewProfile("alice")
	require.NoError(t, p.AddBank(NewSavingsAccount("Maybank", M(100), Money{}, date.Date{})))
	require.NoError(t, SaveProfile(dir, p))

	acc, err := p.Banks.Get("Maybank")
	require.NoError(t, err)
	txFile := filepath.Join(dir, acc.Ref()+savingTransactionSuffix)
	_, err = os.Stat(txFile)
	require.NoError(t, err)

	require.NoError(t, p.DeleteBank("Maybank", Saving))
	require.NoError(t, SaveProfile(dir, p))

	_, err = os.Stat(txFile)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDecodeMoneyQuirks(t *testing.T) {
	m, err := decodeMoney("")
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	// Some writers emit ".00" for zero amounts.
	m, err = decodeMoney(".00")
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	_, err = decodeMoney("abc")
	require.Error(t, err)
}

func TestLoadReportsFileAndLine(t *testing.T) {
	dir := t.TempDir()
	p := NewProfile("alice")
	require.NoError(t, SaveProfile(dir, p))

	bad := "accountName,type,amount,income,nextIncomeDate,ref\nMaybank,saving,notanumber,0.00,,abc\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, bankListFilename), []byte(bad), 0644))

	_, err := LoadProfile(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bankListFilename+":2:")
}
