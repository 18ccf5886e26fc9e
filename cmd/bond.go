package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type bondAddCmd struct {
	from   string
	name   string
	amount string
	rate   string
	date   string
	year   int
}

func (*bondAddCmd) Name() string     { return "bond-add" }
func (*bondAddCmd) Synopsis() string { return "buy a bond in an investment account" }
func (*bondAddCmd) Usage() string {
	return `fin bond-add -from <account> -name <name> -amount <amount> -rate <percent> -year <years> [-date <dd/mm/yyyy>]

  Records a bond purchase: the principal is debited from the investment
  account and interest is credited semi-annually until maturity.
`
}

func (c *bondAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Investment account name.")
	f.StringVar(&c.name, "name", "", "Bond name, unique within the account.")
	f.StringVar(&c.amount, "amount", "", "Principal amount.")
	f.StringVar(&c.rate, "rate", "", "Annual interest rate in percent.")
	f.IntVar(&c.year, "year", 0, "Term in years.")
	f.StringVar(&c.date, "date", "", "Purchase date (defaults to today).")
}

func (c *bondAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := fintrack.ParseMoney(c.amount)
	if err != nil {
		return fail("%v", err)
	}
	rate, err := fintrack.ParseRate(c.rate)
	if err != nil {
		return fail("%v", err)
	}
	if c.year <= 0 {
		return fail("-year must be positive")
	}
	bought, err := dateOrToday(c.date)
	if err != nil {
		return fail("%v", err)
	}

	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	// The purchase debits the account; the bond is only registered when
	// the debit succeeds.
	purchase := fintrack.NewExpenditure("Bond Purchase "+c.name, amount, bought, fintrack.CategoryBonds)
	if _, err := p.Banks.GetInvestment(c.from); err != nil {
		return fail("%v", err)
	}
	if _, err := p.GetBond(c.from, c.name); err == nil {
		return fail("bond %q already exists in %s", c.name, c.from)
	}
	if err := p.Banks.AddExpenditure(c.from, purchase); err != nil {
		return fail("%v", err)
	}
	if err := p.AddBond(c.from, fintrack.NewBond(c.name, amount, rate, bought, c.year)); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Bought bond %q for %s in %s", c.name, amount, c.from)
}

type bondEditCmd struct {
	from string
	name string
	rate string
	year int
}

func (*bondEditCmd) Name() string     { return "bond-edit" }
func (*bondEditCmd) Synopsis() string { return "edit a bond's rate or term" }
func (*bondEditCmd) Usage() string {
	return `fin bond-edit -from <account> -name <name> [-rate <percent>] [-year <years>]

  Edits a bond. Omitted flags keep their current value.
`
}

func (c *bondEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Investment account name.")
	f.StringVar(&c.name, "name", "", "Bond name.")
	f.StringVar(&c.rate, "rate", "", "New annual interest rate in percent.")
	f.IntVar(&c.year, "year", 0, "New term in years.")
}

func (c *bondEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := optRate(c.rate)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.EditBond(c.from, c.name, c.year, rate); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Edited bond %q in %s", c.name, c.from)
}

type bondDeleteCmd struct {
	from string
	name string
}

func (*bondDeleteCmd) Name() string     { return "bond-delete" }
func (*bondDeleteCmd) Synopsis() string { return "delete a bond from an investment account" }
func (*bondDeleteCmd) Usage() string {
	return `fin bond-delete -from <account> -name <name>

  Deletes a bond. The principal is not refunded.
`
}

func (c *bondDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Investment account name.")
	f.StringVar(&c.name, "name", "", "Bond name.")
}

func (c *bondDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.DeleteBond(c.from, c.name); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Deleted bond %q from %s", c.name, c.from)
}

type bondListCmd struct {
	from string
	num  int
}

func (*bondListCmd) Name() string     { return "bond-list" }
func (*bondListCmd) Synopsis() string { return "list bonds of an investment account" }
func (*bondListCmd) Usage() string {
	return `fin bond-list -from <account> [-num <n>]

  Lists the bonds held in an investment account.
`
}

func (c *bondListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Investment account name.")
	f.IntVar(&c.num, "num", 0, "Number of bonds to show (0 for all).")
}

func (c *bondListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	bonds, err := p.ListBonds(c.from, c.num)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Bonds(bonds))
	return subcommands.ExitSuccess
}
