package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jpcaulfield/rentfolio"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `rfo fmt

  Validates and formats the ledger file. This command reads all entries,
  validates them against each other, sorts them by date, and writes them
  back in a canonical JSONL format.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pf, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	formatted, err := pf.Fmt()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	if err := rentfolio.SavePortfolio(*ledgerFile, formatted); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Successfully formatted %s.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
