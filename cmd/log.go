package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jpcaulfield/rentfolio/renderer"
)

type logCmd struct {
	property string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the recorded history of a property" }
func (*logCmd) Usage() string {
	return `rfo log -p <property>

  Displays the leases and expense records of a property, as replayed from
  the ledger.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p is required.")
		return subcommands.ExitUsageError
	}
	pf, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	p := pf.Property(c.property)
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown property %q\n", c.property)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LogMarkdown(p))
	return subcommands.ExitSuccess
}
