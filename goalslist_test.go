package fintrack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalsListAddAndDelete(t *testing.T) {
	l := NewGoalsList()
	require.NoError(t, l.Add(NewGoal("house", M(50000), day("01/01/2030"), "")))

	err := l.Add(NewGoal("house", M(1), day("01/01/2031"), ""))
	require.ErrorIs(t, err, ErrDuplicateName)

	require.NoError(t, l.Delete("house"))
	err = l.Delete("house")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = l.List()
	require.ErrorIs(t, err, ErrEmptyList)
}

func TestGoalsListEdit(t *testing.T) {
	l := NewGoalsList()
	require.NoError(t, l.Add(NewGoal("house", M(50000), day("01/01/2030"), "Maybank")))
	require.NoError(t, l.Add(NewGoal("car", M(20000), day("01/01/2028"), "")))

	err := l.Edit("car", GoalEdit{NewName: "house"})
	require.ErrorIs(t, err, ErrDuplicateName)

	amount := M(60000)
	target := day("01/06/2030")
	require.NoError(t, l.Edit("house", GoalEdit{Amount: &amount, Date: &target}))
	g, err := l.Get("house")
	require.NoError(t, err)
	assert.True(t, M(60000).Equal(g.Amount))
	assert.Equal(t, target, g.Date)
	assert.Equal(t, "Maybank", g.SavingsName)

	// Unlink wins over a new link in the same edit.
	require.NoError(t, l.Edit("house", GoalEdit{SavingsName: "DBS", Unlink: true}))
	g, err = l.Get("house")
	require.NoError(t, err)
	assert.Empty(t, g.SavingsName)
}

func TestUnlinkAccount(t *testing.T) {
	l := NewGoalsList()
	require.NoError(t, l.Add(NewGoal("house", M(50000), day("01/01/2030"), "Maybank")))
	require.NoError(t, l.Add(NewGoal("car", M(20000), day("01/01/2028"), "Maybank")))
	require.NoError(t, l.Add(NewGoal("boat", M(90000), day("01/01/2035"), "DBS")))

	l.UnlinkAccount("Maybank")

	for _, name := range []string{"house", "car"} {
		g, err := l.Get(name)
		require.NoError(t, err)
		assert.Empty(t, g.SavingsName)
	}
	g, err := l.Get("boat")
	require.NoError(t, err)
	assert.Equal(t, "DBS", g.SavingsName)
}
