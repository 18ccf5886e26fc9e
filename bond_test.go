package fintrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBondSchedule(t *testing.T) {
	b := NewBond("Jan SSB", M(10000), R(2.5), day("01/01/2026"), 10)

	assert.Equal(t, day("01/07/2026"), b.NextDateToCreditInterest)
	assert.Equal(t, day("01/01/2036"), b.MaturityDate())
	// Half the annual 2.5% on 10000 per credit.
	assert.True(t, M(125).Equal(b.InterestPayment()))
}

func TestBondCreditDueCatchesUp(t *testing.T) {
	b := NewBond("Jan SSB", M(10000), R(2.5), day("01/01/2026"), 10)

	credits := b.CreditDue(day("15/07/2027"))
	require.Len(t, credits, 3) // Jul 2026, Jan 2027, Jul 2027
	for _, credit := range credits {
		assert.True(t, M(125).Equal(credit.Amount))
		assert.Equal(t, CategoryBonds, credit.Category)
		assert.False(t, credit.Spent)
	}
	assert.Equal(t, day("01/01/2028"), b.NextDateToCreditInterest)
	assert.False(t, b.IsMature)

	// Nothing further due on the same day.
	assert.Empty(t, b.CreditDue(day("15/07/2027")))
}

func TestBondMaturity(t *testing.T) {
	b := NewBond("Short", M(1000), R(2), day("01/01/2026"), 1)

	credits := b.CreditDue(day("01/01/2027"))
	// Jul 2026 and the final credit on the maturity date itself.
	require.Len(t, credits, 2)
	assert.True(t, b.IsMature)

	// A mature bond never credits again, and the flag never reverts.
	assert.Empty(t, b.CreditDue(day("01/01/2030")))
	assert.True(t, b.IsMature)
}

func TestInvestmentBondLifecycle(t *testing.T) {
	acc := NewInvestmentAccount("Vickers", M(20000))

	require.NoError(t, acc.AddBond(NewBond("Jan SSB", M(10000), R(2.5), day("01/01/2026"), 10)))
	err := acc.AddBond(NewBond("Jan SSB", M(500), R(1), day("01/02/2026"), 5))
	require.ErrorIs(t, err, ErrDuplicateName)

	rate := R(3)
	require.NoError(t, acc.EditBond("Jan SSB", 5, &rate))
	b, err := acc.GetBond("Jan SSB")
	require.NoError(t, err)
	assert.Equal(t, 5, b.Year)
	assert.True(t, R(3).Equal(b.Rate))

	require.NoError(t, acc.DeleteBond("Jan SSB"))
	_, err = acc.GetBond("Jan SSB")
	require.ErrorIs(t, err, ErrNotFound)
	err = acc.DeleteBond("Jan SSB")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = acc.Bonds(0)
	require.ErrorIs(t, err, ErrEmptyList)
}

func TestInvestmentUpdateDepositsInterest(t *testing.T) {
	acc := NewInvestmentAccount("Vickers", M(0))
	require.NoError(t, acc.AddBond(NewBond("Jan SSB", M(10000), R(2.5), day("01/01/2026"), 10)))

	remarks := acc.Update(day("15/01/2027"))
	assert.Len(t, remarks, 2) // Jul 2026 and Jan 2027
	assert.True(t, M(250).Equal(acc.Balance()))

	deps, err := acc.Deposits(0)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "Bond Interest from Jan SSB", deps[0].Description)
}

func TestInvestmentUpdateReportsMaturity(t *testing.T) {
	acc := NewInvestmentAccount("Vickers", M(0))
	require.NoError(t, acc.AddBond(NewBond("Short", M(1000), R(2), day("01/01/2026"), 1)))

	remarks := acc.Update(day("02/01/2027"))
	require.NotEmpty(t, remarks)
	assert.Contains(t, remarks[len(remarks)-1], "matured")

	// Maturity is reported once.
	assert.Empty(t, acc.Update(day("02/01/2028")))
}

func TestFindBonds(t *testing.T) {
	acc := NewInvestmentAccount("Vickers", M(0))
	require.NoError(t, acc.AddBond(NewBond("Jan SSB", M(100), R(2), day("01/01/2026"), 10)))
	require.NoError(t, acc.AddBond(NewBond("Feb SSB", M(100), R(2), day("01/02/2026"), 10)))

	bonds, err := acc.FindBonds("ssb")
	require.NoError(t, err)
	assert.Len(t, bonds, 2)

	bonds, err = acc.FindBonds("jan")
	require.NoError(t, err)
	require.Len(t, bonds, 1)
	assert.Equal(t, "Jan SSB", bonds[0].Name)

	_, err = acc.FindBonds("treasury")
	require.ErrorIs(t, err, ErrNotFound)
}
