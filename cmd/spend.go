package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type spendAddCmd struct {
	kind     string
	from     string
	desc     string
	amount   string
	date     string
	category string
}

func (*spendAddCmd) Name() string     { return "spend" }
func (*spendAddCmd) Synopsis() string { return "record an expenditure on a bank account or card" }
func (*spendAddCmd) Usage() string {
	return `fin spend -from <name> [-type <bank|card>] -desc <text> -amount <amount> [-date <dd/mm/yyyy>] [-category <text>]

  Records an expenditure. Bank expenditures debit the balance and fail on
  insufficient funds; card expenditures go to the unpaid list and only
  warn when the month's spend exceeds the card limit.
`
}

func (c *spendAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "bank", "Owner kind (bank, card).")
	f.StringVar(&c.from, "from", "", "Account or card name.")
	f.StringVar(&c.desc, "desc", "", "Description.")
	f.StringVar(&c.amount, "amount", "", "Amount.")
	f.StringVar(&c.date, "date", "", "Date (defaults to today).")
	f.StringVar(&c.category, "category", "Miscellaneous", "Category.")
}

func (c *spendAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := fintrack.ParseOwnerKind(c.kind)
	if err != nil {
		return fail("%v", err)
	}
	amount, err := fintrack.ParseMoney(c.amount)
	if err != nil {
		return fail("%v", err)
	}
	on, err := dateOrToday(c.date)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	tx := fintrack.NewExpenditure(c.desc, amount, on, c.category)
	remark, err := p.AddExpenditure(kind, c.from, tx)
	if err != nil {
		return fail("%v", err)
	}
	if remark != "" {
		warn(remark)
	}
	return saveAndReport(p, "Spent %s on %q from %s", amount, c.desc, c.from)
}

type spendEditCmd struct {
	kind     string
	from     string
	index    int
	desc     string
	amount   string
	date     string
	category string
}

func (*spendEditCmd) Name() string     { return "spend-edit" }
func (*spendEditCmd) Synopsis() string { return "edit an expenditure by its listed index" }
func (*spendEditCmd) Usage() string {
	return `fin spend-edit -from <name> [-type <bank|card>] -index <n> [-desc <text>] [-amount <amount>] [-date <dd/mm/yyyy>] [-category <text>]

  Edits the expenditure at the 1-based index shown by the listing. The
  balance is recomputed from the amount change and must stay non-negative.
`
}

func (c *spendEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "bank", "Owner kind (bank, card).")
	f.StringVar(&c.from, "from", "", "Account or card name.")
	f.IntVar(&c.index, "index", 0, "1-based transaction index.")
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.date, "date", "", "New date.")
	f.StringVar(&c.category, "category", "", "New category.")
}

func (c *spendEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := fintrack.ParseOwnerKind(c.kind)
	if err != nil {
		return fail("%v", err)
	}
	amount, err := optMoney(c.amount)
	if err != nil {
		return fail("%v", err)
	}
	on, err := optDate(c.date)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	edit := fintrack.TransactionEdit{Description: c.desc, Amount: amount, Date: on, Category: c.category}
	if err := p.EditExpenditure(kind, c.from, c.index, edit); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Edited expenditure %d of %s", c.index, c.from)
}

type spendDeleteCmd struct {
	kind  string
	from  string
	index int
}

func (*spendDeleteCmd) Name() string     { return "spend-delete" }
func (*spendDeleteCmd) Synopsis() string { return "delete an expenditure by its listed index" }
func (*spendDeleteCmd) Usage() string {
	return `fin spend-delete -from <name> [-type <bank|card>] -index <n>

  Deletes the expenditure at the 1-based index shown by the listing. Bank
  expenditures are refunded to the balance.
`
}

func (c *spendDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "bank", "Owner kind (bank, card).")
	f.StringVar(&c.from, "from", "", "Account or card name.")
	f.IntVar(&c.index, "index", 0, "1-based transaction index.")
}

func (c *spendDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := fintrack.ParseOwnerKind(c.kind)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.DeleteExpenditure(kind, c.from, c.index); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Deleted expenditure %d of %s", c.index, c.from)
}

type spendListCmd struct {
	kind string
	from string
	num  int
}

func (*spendListCmd) Name() string     { return "spend-list" }
func (*spendListCmd) Synopsis() string { return "list expenditures of a bank account or card" }
func (*spendListCmd) Usage() string {
	return `fin spend-list -from <name> [-type <bank|card>] [-num <n>]

  Lists expenditures in recording order.
`
}

func (c *spendListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "bank", "Owner kind (bank, card).")
	f.StringVar(&c.from, "from", "", "Account or card name.")
	f.IntVar(&c.num, "num", 0, "Number of entries to show (0 for all).")
}

func (c *spendListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := fintrack.ParseOwnerKind(c.kind)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	num := c.num
	if num == 0 {
		num = config.ListLimit
	}
	txs, err := p.ListExpenditures(kind, c.from, num)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
