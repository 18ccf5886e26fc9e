// Package cmd implements the CLI application to track personal finances.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fintrack"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&bankAddCmd{},
	&bankEditCmd{},
	&bankDeleteCmd{},
	&bankListCmd{},
	&cardAddCmd{},
	&cardEditCmd{},
	&cardDeleteCmd{},
	&cardListCmd{},
	&bondAddCmd{},
	&bondEditCmd{},
	&bondDeleteCmd{},
	&bondListCmd{},
	&goalAddCmd{},
	&goalEditCmd{},
	&goalDeleteCmd{},
	&goalListCmd{},
	&spendAddCmd{},
	&spendEditCmd{},
	&spendDeleteCmd{},
	&spendListCmd{},
	&depositAddCmd{},
	&depositEditCmd{},
	&depositDeleteCmd{},
	&depositListCmd{},
	&recurringAddCmd{},
	&recurringEditCmd{},
	&recurringDeleteCmd{},
	&recurringListCmd{},
	&transferCmd{},
	&findCmd{},
	&findTxCmd{},
	&updateCmd{},
	&closeBillCmd{},
	&achievementsCmd{},
	&summaryCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var dataDir = flag.String("data", "data", "Path to the data directory holding the profile CSV files")

// DecodeProfile is the central function to load the profile from the data
// directory, starting a fresh one when no profile exists yet.
func DecodeProfile() (*fintrack.Profile, error) {
	applyConfig()
	p, err := fintrack.LoadProfile(*dataDir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, no profile found, starting with an empty one")
		return fintrack.NewProfile(""), nil
	}
	return p, err
}

// EncodeProfile saves the full profile state back to the data directory.
func EncodeProfile(p *fintrack.Profile) error {
	return fintrack.SaveProfile(*dataDir, p)
}

// saveAndReport persists the profile and prints a success line, collapsing
// the tail of every mutating command.
func saveAndReport(p *fintrack.Profile, format string, args ...interface{}) subcommands.ExitStatus {
	if err := EncodeProfile(p); err != nil {
		return fail("could not save profile: %v", err)
	}
	color.Green(format, args...)
	return subcommands.ExitSuccess
}

// fail prints an error line to stderr and returns a failure status.
func fail(format string, args ...interface{}) subcommands.ExitStatus {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// warn prints advisory remarks (card limit, skipped recurring items).
func warn(remarks ...string) {
	for _, remark := range remarks {
		color.Yellow("%s", remark)
	}
}
