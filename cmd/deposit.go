package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type depositAddCmd struct {
	to     string
	desc   string
	amount string
	date   string
}

func (*depositAddCmd) Name() string     { return "deposit" }
func (*depositAddCmd) Synopsis() string { return "record a deposit into a bank account" }
func (*depositAddCmd) Usage() string {
	return `fin deposit -to <account> -desc <text> -amount <amount> [-date <dd/mm/yyyy>]

  Records a deposit. Deposits always succeed once the amount is valid.
`
}

func (c *depositAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Account name.")
	f.StringVar(&c.desc, "desc", "", "Description.")
	f.StringVar(&c.amount, "amount", "", "Amount.")
	f.StringVar(&c.date, "date", "", "Date (defaults to today).")
}

func (c *depositAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	tx := fintrack.NewDeposit(c.desc, amount, on, fintrack.CategoryDeposit)
	if err := p.AddDeposit(c.to, tx); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Deposited %s into %s", amount, c.to)
}

type depositEditCmd struct {
	to     string
	index  int
	desc   string
	amount string
	date   string
}

func (*depositEditCmd) Name() string     { return "deposit-edit" }
func (*depositEditCmd) Synopsis() string { return "edit a deposit by its listed index" }
func (*depositEditCmd) Usage() string {
	return `fin deposit-edit -to <account> -index <n> [-desc <text>] [-amount <amount>] [-date <dd/mm/yyyy>]

  Edits the deposit at the 1-based index shown by the listing. The
  balance is recomputed from the amount change and must stay non-negative.
`
}

func (c *depositEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Account name.")
	f.IntVar(&c.index, "index", 0, "1-based deposit index.")
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.amount, "amount", "", "New amount.")
	f.StringVar(&c.date, "date", "", "New date.")
}

func (c *depositEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	edit := fintrack.TransactionEdit{Description: c.desc, Amount: amount, Date: on}
	if err := p.EditDeposit(c.to, c.index, edit); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Edited deposit %d of %s", c.index, c.to)
}

type depositDeleteCmd struct {
	to    string
	index int
}

func (*depositDeleteCmd) Name() string     { return "deposit-delete" }
func (*depositDeleteCmd) Synopsis() string { return "delete a deposit by its listed index" }
func (*depositDeleteCmd) Usage() string {
	return `fin deposit-delete -to <account> -index <n>

  Deletes the deposit at the 1-based index shown by the listing. The
  amount is deducted and must not drive the balance negative.
`
}

func (c *depositDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Account name.")
	f.IntVar(&c.index, "index", 0, "1-based deposit index.")
}

func (c *depositDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.DeleteDeposit(c.to, c.index); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Deleted deposit %d of %s", c.index, c.to)
}

type depositListCmd struct {
	to  string
	num int
}

func (*depositListCmd) Name() string     { return "deposit-list" }
func (*depositListCmd) Synopsis() string { return "list deposits of a bank account" }
func (*depositListCmd) Usage() string {
	return `fin deposit-list -to <account> [-num <n>]

  Lists deposits in recording order.
`
}

func (c *depositListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Account name.")
	f.IntVar(&c.num, "num", 0, "Number of entries to show (0 for all).")
}

func (c *depositListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	num := c.num
	if num == 0 {
		num = config.ListLimit
	}
	txs, err := p.ListDeposits(c.to, num)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
