package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jpcaulfield/rentfolio"
	"github.com/jpcaulfield/rentfolio/date"
)

type setValueCmd struct {
	property string
	value    float64
	date     string
}

func (*setValueCmd) Name() string     { return "set-value" }
func (*setValueCmd) Synopsis() string { return "record a new appraised market value" }
func (*setValueCmd) Usage() string {
	return `set-value -p <property> -value <amount> [-d <date>]

  Records a new market value for the property. Equity, LTV, cap rate and the
  IRR projection all derive from the latest recorded value.
`
}

func (c *setValueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id")
	f.Float64Var(&c.value, "value", 0, "Appraised market value")
	f.StringVar(&c.date, "d", date.Today().String(), "Appraisal date (YYYY-MM-DD)")
}

func (c *setValueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.value <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -p and a positive -value are required.")
		return subcommands.ExitUsageError
	}
	day, ok := parseDay(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}
	return handleEntry(rentfolio.NewSetValue(day, c.property, rentfolio.M(c.value, "")))
}
