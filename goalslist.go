package fintrack

import (
	"fmt"

	"github.com/etnz/fintrack/date"
)

// GoalsList is the ordered collection of goals, a single flat namespace.
type GoalsList struct {
	goals []*Goal
}

// NewGoalsList creates an empty goals list.
func NewGoalsList() *GoalsList { return &GoalsList{} }

// Add appends a goal.
func (l *GoalsList) Add(g *Goal) error {
	for _, existing := range l.goals {
		if existing.Name == g.Name {
			return fmt.Errorf("%w: goal %q", ErrDuplicateName, g.Name)
		}
	}
	l.goals = append(l.goals, g)
	return nil
}

// Get returns the goal with that name.
func (l *GoalsList) Get(name string) (*Goal, error) {
	for _, g := range l.goals {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: goal %q", ErrNotFound, name)
}

// Delete removes the goal with that name.
func (l *GoalsList) Delete(name string) error {
	for i, g := range l.goals {
		if g.Name == name {
			l.goals = append(l.goals[:i], l.goals[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: goal %q", ErrNotFound, name)
}

// List returns all goals in insertion order.
func (l *GoalsList) List() ([]*Goal, error) {
	if len(l.goals) == 0 {
		return nil, fmt.Errorf("%w: no goals", ErrEmptyList)
	}
	return l.goals, nil
}

// All returns every goal, empty when none.
func (l *GoalsList) All() []*Goal { return l.goals }

// GoalEdit carries the replacement fields of a goal edit. Nil or blank
// fields keep the current value; Unlink removes the account link.
type GoalEdit struct {
	NewName     string
	Amount      *Money
	Date        *date.Date
	SavingsName string
	Unlink      bool
}

// Edit updates the named goal.
func (l *GoalsList) Edit(name string, edit GoalEdit) error {
	g, err := l.Get(name)
	if err != nil {
		return err
	}
	if edit.NewName != "" && edit.NewName != name {
		for _, existing := range l.goals {
			if existing != g && existing.Name == edit.NewName {
				return fmt.Errorf("%w: goal %q", ErrDuplicateName, edit.NewName)
			}
		}
		g.Name = edit.NewName
	}
	if edit.Amount != nil {
		g.Amount = *edit.Amount
	}
	if edit.Date != nil {
		g.Date = *edit.Date
	}
	if edit.Unlink {
		g.SavingsName = ""
	} else if edit.SavingsName != "" {
		g.SavingsName = edit.SavingsName
	}
	return nil
}

// UnlinkAccount clears the link on every goal referencing the named
// savings account. Called when that account is deleted.
func (l *GoalsList) UnlinkAccount(name string) {
	for _, g := range l.goals {
		if g.SavingsName == name {
			g.SavingsName = ""
		}
	}
}
