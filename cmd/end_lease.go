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

type endLeaseCmd struct {
	property string
	tenant   string
	date     string
}

func (*endLeaseCmd) Name() string     { return "end-lease" }
func (*endLeaseCmd) Synopsis() string { return "close a tenant's active lease" }
func (*endLeaseCmd) Usage() string {
	return `end-lease -p <property> -tenant <name> [-d <date>]

  Closes the tenant's active lease at the given date.
`
}

func (c *endLeaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id")
	f.StringVar(&c.tenant, "tenant", "", "Tenant name or unit label")
	f.StringVar(&c.date, "d", date.Today().String(), "Lease end date (YYYY-MM-DD)")
}

func (c *endLeaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.tenant == "" {
		fmt.Fprintln(os.Stderr, "Error: -p and -tenant are required.")
		return subcommands.ExitUsageError
	}
	day, ok := parseDay(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}
	return handleEntry(rentfolio.NewEndLease(day, c.property, c.tenant))
}
