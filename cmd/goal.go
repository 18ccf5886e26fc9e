package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type goalAddCmd struct {
	name    string
	amount  string
	date    string
	savings string
}

func (*goalAddCmd) Name() string     { return "goal-add" }
func (*goalAddCmd) Synopsis() string { return "add a new financial goal" }
func (*goalAddCmd) Usage() string {
	return `fin goal-add -name <name> -amount <amount> -date <dd/mm/yyyy> [-savings <account>]

  Adds a goal, optionally linked to a savings account whose balance is
  checked against the target on update.
`
}

func (c *goalAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name.")
	f.StringVar(&c.amount, "amount", "", "Target amount.")
	f.StringVar(&c.date, "date", "", "Target date.")
	f.StringVar(&c.savings, "savings", "", "Linked savings account name.")
}

func (c *goalAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail("-name is required")
	}
	amount, err := fintrack.ParseMoney(c.amount)
	if err != nil {
		return fail("%v", err)
	}
	target, err := dateOrToday(c.date)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.AddGoal(fintrack.NewGoal(c.name, amount, target, c.savings)); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Added goal %q of %s by %s", c.name, amount, target)
}

type goalEditCmd struct {
	name    string
	newName string
	amount  string
	date    string
	savings string
	unlink  bool
}

func (*goalEditCmd) Name() string     { return "goal-edit" }
func (*goalEditCmd) Synopsis() string { return "edit a financial goal" }
func (*goalEditCmd) Usage() string {
	return `fin goal-edit -name <name> [-new-name <name>] [-amount <amount>] [-date <dd/mm/yyyy>] [-savings <account>] [-unlink]

  Edits a goal. Omitted flags keep their current value; -unlink removes
  the savings account link.
`
}

func (c *goalEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name.")
	f.StringVar(&c.newName, "new-name", "", "New goal name.")
	f.StringVar(&c.amount, "amount", "", "New target amount.")
	f.StringVar(&c.date, "date", "", "New target date.")
	f.StringVar(&c.savings, "savings", "", "New linked savings account name.")
	f.BoolVar(&c.unlink, "unlink", false, "Remove the savings account link.")
}

func (c *goalEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := optMoney(c.amount)
	if err != nil {
		return fail("%v", err)
	}
	target, err := optDate(c.date)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	edit := fintrack.GoalEdit{
		NewName:     c.newName,
		Amount:      amount,
		Date:        target,
		SavingsName: c.savings,
		Unlink:      c.unlink,
	}
	if err := p.EditGoal(c.name, edit); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Edited goal %q", c.name)
}

type goalDeleteCmd struct {
	name string
}

func (*goalDeleteCmd) Name() string     { return "goal-delete" }
func (*goalDeleteCmd) Synopsis() string { return "delete a financial goal" }
func (*goalDeleteCmd) Usage() string {
	return `fin goal-delete -name <name>

  Deletes a goal.
`
}

func (c *goalDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Goal name.")
}

func (c *goalDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.DeleteGoal(c.name); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Deleted goal %q", c.name)
}

type goalListCmd struct{}

func (*goalListCmd) Name() string     { return "goal-list" }
func (*goalListCmd) Synopsis() string { return "list all financial goals" }
func (*goalListCmd) Usage() string {
	return `fin goal-list

  Lists all goals in the order they were added.
`
}

func (c *goalListCmd) SetFlags(f *flag.FlagSet) {}

func (c *goalListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	goals, err := p.ListGoals()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Goals(goals))
	return subcommands.ExitSuccess
}
