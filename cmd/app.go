// Package cmd implements the CLI application to manage a rental-property
// portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jpcaulfield/rentfolio"
	"github.com/jpcaulfield/rentfolio/date"
)

// Commands lists every subcommand. A main package iterates it to register
// them on its commander.
var Commands = []subcommands.Command{
	&declareCmd{},
	&setValueCmd{},
	&setRentCmd{},
	&mortgageCmd{},
	&leaseCmd{},
	&endLeaseCmd{},
	&expenseCmd{},
	&importCmd{},
	&reportCmd{},
	&irrCmd{},
	&summaryCmd{},
	&logCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "properties.jsonl", "Path to the property ledger file (JSONL format)")

// LedgerPath returns the path of the ledger file in use.
func LedgerPath() string { return *ledgerFile }

// loadPortfolio reads the app ledger. A missing file is an empty portfolio.
func loadPortfolio() (*rentfolio.Portfolio, error) {
	return rentfolio.LoadPortfolio(*ledgerFile)
}

// handleEntry validates the entry against the current ledger state and
// appends it to the ledger file.
func handleEntry(e rentfolio.Entry) subcommands.ExitStatus {
	pf, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	if err := pf.Append(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := rentfolio.AppendEntry(*ledgerFile, e); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended %s entry to %s\n", e.What(), *ledgerFile)
	return subcommands.ExitSuccess
}

// parseDay parses a date flag, reporting the usage error itself.
func parseDay(s string) (date.Date, bool) {
	d, err := date.Parse(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return date.Date{}, false
	}
	return d, true
}
