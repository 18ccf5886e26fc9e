package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print a one-page overview of the whole profile" }
func (*summaryCmd) Usage() string {
	return `fin summary

  Prints the accounts, cards, goals and achievements of the profile.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Summary(p))
	return subcommands.ExitSuccess
}

type achievementsCmd struct{}

func (*achievementsCmd) Name() string     { return "achievements" }
func (*achievementsCmd) Synopsis() string { return "list achieved goals" }
func (*achievementsCmd) Usage() string {
	return `fin achievements

  Lists the goals achieved so far, most recent last.
`
}

func (c *achievementsCmd) SetFlags(f *flag.FlagSet) {}

func (c *achievementsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	if len(p.Achievements) == 0 {
		warn("no achievements yet")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Achievements(p.Achievements))
	return subcommands.ExitSuccess
}
