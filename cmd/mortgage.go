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

type mortgageCmd struct {
	property  string
	amount    float64
	rate      float64
	years     int
	term      int
	frequency string
	rateType  string
	balance   float64
	date      string
}

func (*mortgageCmd) Name() string     { return "mortgage" }
func (*mortgageCmd) Synopsis() string { return "record the financing of a property" }
func (*mortgageCmd) Usage() string {
	return `mortgage -p <property> -amount <principal> -rate <annual rate> -years <amortization> [-term <months>] [-freq <frequency>] [-type fixed|variable] [-balance <amount>] [-d <date>]

  Records the mortgage on a property. The date is the mortgage start date.
  The rate is a decimal fraction: 0.052 means 5.2%. Use -balance to record
  the current outstanding balance from a statement; when present it overrides
  the computed one.
`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id")
	f.Float64Var(&c.amount, "amount", 0, "Original loan amount")
	f.Float64Var(&c.rate, "rate", 0, "Nominal annual interest rate, as a decimal fraction")
	f.IntVar(&c.years, "years", 0, "Amortization length in years")
	f.IntVar(&c.term, "term", 0, "Renewal term in months (informational)")
	f.StringVar(&c.frequency, "freq", "monthly", "Payment frequency: monthly, semi-monthly, bi-weekly, accelerated-bi-weekly, weekly, accelerated-weekly")
	f.StringVar(&c.rateType, "type", "fixed", "Rate type: fixed or variable")
	f.Float64Var(&c.balance, "balance", 0, "Current outstanding balance from a statement (optional)")
	f.StringVar(&c.date, "d", date.Today().String(), "Mortgage start date (YYYY-MM-DD)")
}

func (c *mortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.amount <= 0 || c.years <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -p, a positive -amount and -years are required.")
		return subcommands.ExitUsageError
	}
	day, ok := parseDay(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}
	freq, err := rentfolio.ParsePaymentFrequency(c.frequency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rt, err := rentfolio.ParseRateType(c.rateType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e := rentfolio.NewSetMortgage(day, c.property, rentfolio.M(c.amount, ""), c.rate, c.years, c.term, freq, rt)
	if c.balance > 0 {
		b := rentfolio.M(c.balance, "")
		e.RemainingBalance = &b
	}
	return handleEntry(e)
}
