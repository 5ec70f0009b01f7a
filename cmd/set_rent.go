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

type setRentCmd struct {
	property string
	monthly  float64
	date     string
}

func (*setRentCmd) Name() string     { return "set-rent" }
func (*setRentCmd) Synopsis() string { return "record the advertised monthly rent" }
func (*setRentCmd) Usage() string {
	return `set-rent -p <property> -monthly <amount> [-d <date>]

  Records the advertised monthly rent. It is only used as a revenue fallback
  while no tenant lease is on record.
`
}

func (c *setRentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id")
	f.Float64Var(&c.monthly, "monthly", 0, "Advertised monthly rent")
	f.StringVar(&c.date, "d", date.Today().String(), "Entry date (YYYY-MM-DD)")
}

func (c *setRentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.monthly <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -p and a positive -monthly are required.")
		return subcommands.ExitUsageError
	}
	day, ok := parseDay(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}
	return handleEntry(rentfolio.NewSetRent(day, c.property, rentfolio.M(c.monthly, "")))
}
