package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type cardAddCmd struct {
	name   string
	limit  string
	rebate string
}

func (*cardAddCmd) Name() string     { return "card-add" }
func (*cardAddCmd) Synopsis() string { return "add a new credit card" }
func (*cardAddCmd) Usage() string {
	return `fin card-add -name <name> -limit <amount> -rebate <percent>

  Adds a new credit card. The limit is advisory: spending past it is
  reported but not blocked.
`
}

func (c *cardAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Card name.")
	f.StringVar(&c.limit, "limit", "0", "Monthly credit limit.")
	f.StringVar(&c.rebate, "rebate", "0", "Rebate rate in percent.")
}

func (c *cardAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail("-name is required")
	}
	limit, err := fintrack.ParseMoney(c.limit)
	if err != nil {
		return fail("%v", err)
	}
	rebate, err := fintrack.ParseRate(c.rebate)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.AddCard(fintrack.NewCard(c.name, limit, rebate)); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Added card %q with limit %s and rebate %s", c.name, limit, rebate)
}

type cardEditCmd struct {
	name    string
	newName string
	limit   string
	rebate  string
}

func (*cardEditCmd) Name() string     { return "card-edit" }
func (*cardEditCmd) Synopsis() string { return "edit a credit card" }
func (*cardEditCmd) Usage() string {
	return `fin card-edit -name <name> [-new-name <name>] [-limit <amount>] [-rebate <percent>]

  Edits a credit card. Omitted flags keep their current value.
`
}

func (c *cardEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Card name.")
	f.StringVar(&c.newName, "new-name", "", "New card name.")
	f.StringVar(&c.limit, "limit", "", "New credit limit.")
	f.StringVar(&c.rebate, "rebate", "", "New rebate rate in percent.")
}

func (c *cardEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	limit, err := optMoney(c.limit)
	if err != nil {
		return fail("%v", err)
	}
	rebate, err := optRate(c.rebate)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.EditCard(c.name, c.newName, limit, rebate); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Edited card %q", c.name)
}

type cardDeleteCmd struct {
	name string
}

func (*cardDeleteCmd) Name() string     { return "card-delete" }
func (*cardDeleteCmd) Synopsis() string { return "delete a credit card" }
func (*cardDeleteCmd) Usage() string {
	return `fin card-delete -name <name>

  Deletes a credit card and its transaction history.
`
}

func (c *cardDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Card name.")
}

func (c *cardDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.DeleteCard(c.name); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Deleted card %q", c.name)
}

type cardListCmd struct{}

func (*cardListCmd) Name() string     { return "card-list" }
func (*cardListCmd) Synopsis() string { return "list all credit cards" }
func (*cardListCmd) Usage() string {
	return `fin card-list

  Lists all credit cards in the order they were added.
`
}

func (c *cardListCmd) SetFlags(f *flag.FlagSet) {}

func (c *cardListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	cards, err := p.ListCards()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Cards(cards))
	return subcommands.ExitSuccess
}
