package fintrack

import (
	"fmt"

	"github.com/etnz/fintrack/date"
)

// Goal is a savings target, optionally linked to a savings account by
// name. The link is non-owning and resolved through the bank list at
// use-time. Done and Achieved only ever transition false to true.
type Goal struct {
	Name        string
	Amount      Money
	Date        date.Date
	SavingsName string // linked savings account, blank when unlinked
	Done        bool
	Achieved    bool
}

// NewGoal returns a goal, optionally linked to a savings account.
func NewGoal(name string, amount Money, target date.Date, savingsName string) *Goal {
	return &Goal{Name: name, Amount: amount, Date: target, SavingsName: savingsName}
}

// MarkDone flips the done flag, once.
func (g *Goal) MarkDone() { g.Done = true }

// MarkAchieved flips the achieved flag, once.
func (g *Goal) MarkAchieved() { g.Achieved = true }

func (g *Goal) String() string {
	linked := "unlinked"
	if g.SavingsName != "" {
		linked = "linked to " + g.SavingsName
	}
	return fmt.Sprintf("%s %s by %s (%s)", g.Name, g.Amount, g.Date, linked)
}

// Achievement records a goal reached before its target date.
type Achievement struct {
	Name     string
	Amount   Money
	Category string
	Date     date.Date
}
