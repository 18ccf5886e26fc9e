package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"
)

type closeBillCmd struct {
	card     string
	year     int
	month    int
	rebateTo string
}

func (*closeBillCmd) Name() string     { return "close-bill" }
func (*closeBillCmd) Synopsis() string { return "close a card's monthly bill and credit the rebate" }
func (*closeBillCmd) Usage() string {
	return `fin close-bill -card <name> -year <yyyy> -month <1-12> [-rebate-to <savings account>]

  Moves the month's unpaid card expenditures to the paid list and, when
  -rebate-to names a savings account, deposits the cashback earned on
  that bill.
`
}

func (c *closeBillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.card, "card", "", "Card name.")
	f.IntVar(&c.year, "year", 0, "Bill year.")
	f.IntVar(&c.month, "month", 0, "Bill month (1-12).")
	f.StringVar(&c.rebateTo, "rebate-to", "", "Savings account receiving the rebate.")
}

func (c *closeBillCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.year <= 0 {
		return fail("-year is required")
	}
	if c.month < 1 || c.month > 12 {
		return fail("-month must be between 1 and 12")
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	rebate, err := p.CloseCardBill(c.card, c.year, time.Month(c.month), c.rebateTo)
	if err != nil {
		return fail("%v", err)
	}
	if c.rebateTo != "" && rebate.IsPositive() {
		return saveAndReport(p, "Closed %d/%d bill of %s, rebate %s credited to %s", c.month, c.year, c.card, rebate, c.rebateTo)
	}
	return saveAndReport(p, "Closed %d/%d bill of %s", c.month, c.year, c.card)
}
