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

type leaseCmd struct {
	property string
	tenant   string
	rent     float64
	start    string
	end      string
}

func (*leaseCmd) Name() string     { return "lease" }
func (*leaseCmd) Synopsis() string { return "record a tenant moving in" }
func (*leaseCmd) Usage() string {
	return `lease -p <property> -tenant <name> -rent <monthly amount> [-d <start>] [-end <date>]

  Records a tenant lease. Without -end the lease is active and earns rent up
  to the evaluation date of any report.
`
}

func (c *leaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id")
	f.StringVar(&c.tenant, "tenant", "", "Tenant name or unit label")
	f.Float64Var(&c.rent, "rent", 0, "Monthly rent")
	f.StringVar(&c.start, "d", date.Today().String(), "Lease start date (YYYY-MM-DD)")
	f.StringVar(&c.end, "end", "", "Lease end date; omit for an active lease")
}

func (c *leaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.tenant == "" || c.rent <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -p, -tenant and a positive -rent are required.")
		return subcommands.ExitUsageError
	}
	start, ok := parseDay(c.start)
	if !ok {
		return subcommands.ExitUsageError
	}
	var end date.Date
	if c.end != "" {
		if end, ok = parseDay(c.end); !ok {
			return subcommands.ExitUsageError
		}
	}
	return handleEntry(rentfolio.NewLease(start, c.property, c.tenant, rentfolio.M(c.rent, ""), end))
}
