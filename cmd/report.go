package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jpcaulfield/rentfolio"
	"github.com/jpcaulfield/rentfolio/date"
	"github.com/jpcaulfield/rentfolio/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	property string
	date     string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full investment report of a property" }
func (*reportCmd) Usage() string {
	return `rfo report -p <property> [-d <date>]

  Displays the full report of a property: acquisition facts, trailing
  twelve months figures, ratios, IRR projections and the mortgage with an
  amortization excerpt.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id")
	f.StringVar(&c.date, "d", date.Today().String(), "Evaluation date (YYYY-MM-DD)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p is required.")
		return subcommands.ExitUsageError
	}
	on, ok := parseDay(c.date)
	if !ok {
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

	report := rentfolio.NewPropertyReport(p, on)
	printMarkdown(renderer.RenderPropertyReport(renderer.NewPropertyReportView(report)))
	return subcommands.ExitSuccess
}
