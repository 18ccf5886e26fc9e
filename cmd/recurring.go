package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type recurringAddCmd struct {
	from     string
	desc     string
	amount   string
	category string
}

func (*recurringAddCmd) Name() string { return "recurring-add" }
func (*recurringAddCmd) Synopsis() string {
	return "add a monthly recurring expenditure to a savings account"
}
func (*recurringAddCmd) Usage() string {
	return `fin recurring-add -from <account> -desc <text> -amount <amount> [-category <text>]

  Registers a recurring expenditure template. The first charge falls due
  one month after registration and then monthly; update materializes the
  charges that have come due.
`
}

func (c *recurringAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Savings account name.")
	f.StringVar(&c.desc, "desc", "", "Description.")
	f.StringVar(&c.amount, "amount", "", "Amount charged each month.")
	f.StringVar(&c.category, "category", "Miscellaneous", "Category.")
}

func (c *recurringAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := fintrack.ParseMoney(c.amount)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	// The first charge falls due one month from now.
	tx := fintrack.NewExpenditure(c.desc, amount, date.Today().AddMonths(1), c.category)
	if err := p.AddRecurring(c.from, tx); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Added recurring expenditure %q of %s to %s", c.desc, amount, c.from)
}

type recurringEditCmd struct {
	from     string
	index    int
	desc     string
	amount   string
	category string
}

func (*recurringEditCmd) Name() string     { return "recurring-edit" }
func (*recurringEditCmd) Synopsis() string { return "edit a recurring expenditure by its listed index" }
func (*recurringEditCmd) Usage() string {
	return `fin recurring-edit -from <account> -index <n> [-desc <text>] [-amount <amount>] [-category <text>]

  Edits the recurring expenditure at the 1-based index shown by the
  listing. The next due date is kept.
`
}

func (c *recurringEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Savings account name.")
	f.IntVar(&c.index, "index", 0, "1-based recurring expenditure index.")
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.category, "category", "", "New category.")
}

func (c *recurringEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := optMoney(c.amount)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	edit := fintrack.TransactionEdit{Description: c.desc, Amount: amount, Category: c.category}
	if err := p.EditRecurring(c.from, c.index, edit); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Edited recurring expenditure %d of %s", c.index, c.from)
}

type recurringDeleteCmd struct {
	from  string
	index int
}

func (*recurringDeleteCmd) Name() string { return "recurring-delete" }
func (*recurringDeleteCmd) Synopsis() string {
	return "delete a recurring expenditure by its listed index"
}
func (*recurringDeleteCmd) Usage() string {
	return `fin recurring-delete -from <account> -index <n>

  Stops a recurring expenditure. Charges already materialized stay in the
  transaction list.
`
}

func (c *recurringDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Savings account name.")
	f.IntVar(&c.index, "index", 0, "1-based recurring expenditure index.")
}

func (c *recurringDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.DeleteRecurring(c.from, c.index); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Deleted recurring expenditure %d of %s", c.index, c.from)
}

type recurringListCmd struct {
	from string
}

func (*recurringListCmd) Name() string     { return "recurring-list" }
func (*recurringListCmd) Synopsis() string { return "list recurring expenditures of a savings account" }
func (*recurringListCmd) Usage() string {
	return `fin recurring-list -from <account>

  Lists the recurring expenditure templates with their next due date.
`
}

func (c *recurringListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Savings account name.")
}

func (c *recurringListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	txs, err := p.ListRecurring(c.from)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
