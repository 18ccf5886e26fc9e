package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/google/subcommands"
)

type transferCmd struct {
	from   string
	to     string
	amount string
	date   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer funds between two bank accounts" }
func (*transferCmd) Usage() string {
	return `fin transfer -from <account> -to <account> -amount <amount> [-date <dd/mm/yyyy>]

  Moves funds between two bank accounts. Both accounts are checked before
  anything moves, so a failed transfer leaves both balances untouched.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account name.")
	f.StringVar(&c.to, "to", "", "Destination account name.")
	f.StringVar(&c.amount, "amount", "", "Amount to transfer.")
	f.StringVar(&c.date, "date", "", "Transfer date (defaults to today).")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := p.TransferFund(c.from, c.to, amount, on); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Transferred %s from %s to %s", amount, c.from, c.to)
}
