package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

type initCmd struct {
	name string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the data directory and the profile" }
func (*initCmd) Usage() string {
	return `fin init -name <username>

  Creates the data directory and an empty profile for the given user.
  Running init on an existing profile only updates the username.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Profile username.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail("-name is required")
	}
	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		return fail("could not create data directory: %v", err)
	}
	p, err := DecodeProfile()
	if err != nil {
		return fail("%v", err)
	}
	p.Username = c.name
	return saveAndReport(p, "Profile ready for %s in %s", c.name, *dataDir)
}
