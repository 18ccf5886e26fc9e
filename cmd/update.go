package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type updateCmd struct {
	date string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "apply every due schedule across the profile" }
func (*updateCmd) Usage() string {
	return `fin update [-date <dd/mm/yyyy>]

  Credits due incomes and bond interest, materializes due recurring
  expenditures, marks matured bonds and checks goal achievement. Missed
  periods are caught up one by one. -date pretends today is another day,
  useful to replay a schedule.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Run the update as of this date (defaults to today).")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now, err := dateOrToday(c.date)
	if err != nil {
		return fail("%v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	remarks := p.Update(now)
	if err := EncodeProfile(p); err != nil {
		return fail("could not save profile: %v", err)
	}
	if len(remarks) == 0 {
		warn("nothing due as of " + now.String())
		return subcommands.ExitSuccess
	}
	warn(remarks...)
	return subcommands.ExitSuccess
}
