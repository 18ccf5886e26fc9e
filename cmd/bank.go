package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type bankAddCmd struct {
	name       string
	accType    string
	amount     string
	income     string
	incomeDate string
}

func (*bankAddCmd) Name() string     { return "bank-add" }
func (*bankAddCmd) Synopsis() string { return "add a new savings or investment account" }
func (*bankAddCmd) Usage() string {
	return `fin bank-add -name <name> -type <saving|investment> -amount <amount> [-income <amount> -income-date <dd/mm/yyyy>]

  Adds a new bank account. Savings accounts may carry a monthly income,
  credited from the given date on.
`
}

func (c *bankAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.accType, "type", "saving", "Account type (saving, investment).")
	f.StringVar(&c.amount, "amount", "0", "Initial balance.")
	f.StringVar(&c.income, "income", "0", "Monthly income (savings only).")
	f.StringVar(&c.incomeDate, "income-date", "", "First income credit date (savings only).")
}

func (c *bankAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail("-name is required")
	}
	accType, err := fintrack.ParseAccountType(c.accType)
	if err != nil {
		return fail("%v", err)
	}
	amount, err := fintrack.ParseMoney(c.amount)
	if err != nil {
		return fail("%v", err)
	}

	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}

	var acc fintrack.Account
	switch accType {
	case fintrack.Saving:
		income, err := fintrack.ParseMoney(c.income)
		if err != nil {
			return fail("%v", err)
		}
		nextIncome, err := optDate(c.incomeDate)
		if err != nil {
			return fail("%v", err)
		}
		saving := fintrack.NewSavingsAccount(c.name, amount, income, deref(nextIncome))
		acc = saving
	case fintrack.Investment:
		acc = fintrack.NewInvestmentAccount(c.name, amount)
	}

	if err := p.AddBank(acc); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Added %s account %q with %s", accType, c.name, amount)
}

type bankEditCmd struct {
	name    string
	accType string
	newName string
	amount  string
	income  string
}

func (*bankEditCmd) Name() string     { return "bank-edit" }
func (*bankEditCmd) Synopsis() string { return "edit a bank account" }
func (*bankEditCmd) Usage() string {
	return `fin bank-edit -name <name> -type <saving|investment> [-new-name <name>] [-amount <amount>] [-income <amount>]

  Edits a bank account. Omitted flags keep their current value; -income
  only applies to savings accounts.
`
}

func (c *bankEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.accType, "type", "saving", "Account type (saving, investment).")
	f.StringVar(&c.newName, "new-name", "", "New account name.")
	f.StringVar(&c.amount, "amount", "", "New balance.")
	f.StringVar(&c.income, "income", "", "New monthly income (savings only).")
}

func (c *bankEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accType, err := fintrack.ParseAccountType(c.accType)
	if err != nil {
		return fail("%v", err)
	}
	amount, err := optMoney(c.amount)
	if err != nil {
		return fail("%v", err)
	}
	income, err := optMoney(c.income)
	if err != nil {
		return fail("%v", err)
	}

	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	switch accType {
	case fintrack.Saving:
		err = p.EditSavings(c.name, c.newName, amount, income)
	case fintrack.Investment:
		if income != nil {
			return fail("-income only applies to savings accounts")
		}
		err = p.EditInvestment(c.name, c.newName, amount)
	}
	if err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Edited %s account %q", accType, c.name)
}

type bankDeleteCmd struct {
	name    string
	accType string
}

func (*bankDeleteCmd) Name() string     { return "bank-delete" }
func (*bankDeleteCmd) Synopsis() string { return "delete a bank account" }
func (*bankDeleteCmd) Usage() string {
	return `fin bank-delete -name <name> -type <saving|investment>

  Deletes a bank account. Goals linked to a deleted savings account are
  kept but unlinked.
`
}

func (c *bankDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.accType, "type", "saving", "Account type (saving, investment).")
}

func (c *bankDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accType, err := fintrack.ParseAccountType(c.accType)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if err := p.DeleteBank(c.name, accType); err != nil {
		return fail("%v", err)
	}
	return saveAndReport(p, "Deleted %s account %q", accType, c.name)
}

type bankListCmd struct {
	accType string
}

func (*bankListCmd) Name() string     { return "bank-list" }
func (*bankListCmd) Synopsis() string { return "list bank accounts of a type" }
func (*bankListCmd) Usage() string {
	return `fin bank-list -type <saving|investment>

  Lists bank accounts in the order they were added.
`
}

func (c *bankListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accType, "type", "saving", "Account type (saving, investment).")
}

func (c *bankListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accType, err := fintrack.ParseAccountType(c.accType)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	accounts, err := p.ListBanks(accType)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Accounts(accounts))
	return subcommands.ExitSuccess
}
