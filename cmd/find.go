package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type findCmd struct {
	kind    string
	keyword string
	in      string
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "search accounts, cards or bonds by name" }
func (*findCmd) Usage() string {
	return `fin find -keyword <text> [-type <saving|investment|card|bond>] [-in <account>]

  Searches entity names by case-insensitive keyword. Bond searches need
  -in to name the investment account to look into.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "saving", "What to search (saving, investment, card, bond).")
	f.StringVar(&c.keyword, "keyword", "", "Keyword to search for.")
	f.StringVar(&c.in, "in", "", "Investment account holding the bonds (bond search only).")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.keyword == "" {
		return fail("-keyword is required")
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	switch c.kind {
	case "saving", "investment":
		t, err := fintrack.ParseAccountType(c.kind)
		if err != nil {
			return fail("%v", err)
		}
		accounts, err := p.FindAccounts(c.keyword, t)
		if err != nil {
			return fail("%v", err)
		}
		printMarkdown(renderer.Accounts(accounts))
	case "card":
		cards, err := p.FindCards(c.keyword)
		if err != nil {
			return fail("%v", err)
		}
		printMarkdown(renderer.Cards(cards))
	case "bond":
		if c.in == "" {
			return fail("-in is required to search bonds")
		}
		bonds, err := p.FindBonds(c.in, c.keyword)
		if err != nil {
			return fail("%v", err)
		}
		printMarkdown(renderer.Bonds(bonds))
	default:
		return fail("unknown search type %q (want saving, investment, card or bond)", c.kind)
	}
	return subcommands.ExitSuccess
}

type findTxCmd struct {
	kind     string
	in       string
	from     string
	to       string
	desc     string
	category string
}

func (*findTxCmd) Name() string     { return "find-tx" }
func (*findTxCmd) Synopsis() string { return "search transactions by date range and keywords" }
func (*findTxCmd) Usage() string {
	return `fin find-tx -in <name> [-type <bank|card>] [-from <dd/mm/yyyy>] [-to <dd/mm/yyyy>] [-desc <text>] [-category <text>]

  Searches the transactions of one bank account or card. An omitted date
  bound leaves that side of the range open.
`
}

func (c *findTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "bank", "Owner kind (bank, card).")
	f.StringVar(&c.in, "in", "", "Account or card name.")
	f.StringVar(&c.from, "from", "", "Earliest date to match.")
	f.StringVar(&c.to, "to", "", "Latest date to match.")
	f.StringVar(&c.desc, "desc", "", "Description keyword.")
	f.StringVar(&c.category, "category", "", "Category keyword.")
}

func (c *findTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := fintrack.ParseOwnerKind(c.kind)
	if err != nil {
		return fail("%v", err)
	}
	from, err := optDate(c.from)
	if err != nil {
		return fail("%v", err)
	}
	to, err := optDate(c.to)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	r := date.NewRange(deref(from), deref(to))
	txs, err := p.FindTransactions(kind, c.in, r, c.desc, c.category)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
