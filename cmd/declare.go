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

type declareCmd struct {
	id          string
	name        string
	currency    string
	price       float64
	closing     float64
	renovations float64
	sqft        float64
	date        string
}

func (*declareCmd) Name() string     { return "declare" }
func (*declareCmd) Synopsis() string { return "declare a new property in the ledger" }
func (*declareCmd) Usage() string {
	return `declare -id <id> -price <amount> [-name <name>] [-currency <code>] [-closing <amount>] [-renovations <amount>] [-sqft <area>] [-d <date>]

  Declares a property, with its purchase facts. The date is the purchase
  date. The id is how every other command refers to the property.
`
}

func (c *declareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Ledger-internal property id (e.g., 'elm-12')")
	f.StringVar(&c.name, "name", "", "Human-readable property name")
	f.StringVar(&c.currency, "currency", "USD", "Currency of all the property's amounts")
	f.Float64Var(&c.price, "price", 0, "Purchase price")
	f.Float64Var(&c.closing, "closing", 0, "Closing costs")
	f.Float64Var(&c.renovations, "renovations", 0, "Initial renovation costs")
	f.Float64Var(&c.sqft, "sqft", 0, "Living area in square feet")
	f.StringVar(&c.date, "d", date.Today().String(), "Purchase date (YYYY-MM-DD)")
}

func (c *declareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.price <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id and a positive -price are required.")
		return subcommands.ExitUsageError
	}
	day, ok := parseDay(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}

	cur := c.currency
	e := rentfolio.NewDeclare(day, c.id, c.name, cur,
		rentfolio.M(c.price, cur), rentfolio.M(c.closing, cur), rentfolio.M(c.renovations, cur), c.sqft)
	return handleEntry(e)
}
