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

type expenseCmd struct {
	property string
	category string
	amount   float64
	date     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an operating expense" }
func (*expenseCmd) Usage() string {
	return `expense -p <property> -category <category> -amount <amount> [-d <date>]

  Records one dated operating expense. Property Tax and Insurance, as well as
  any single expense over 1000, are treated as annual bills and spread over
  the twelve months of their year in reports.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id")
	f.StringVar(&c.category, "category", "", "Expense category (e.g., 'Property Tax', 'Repairs')")
	f.Float64Var(&c.amount, "amount", 0, "Expense amount")
	f.StringVar(&c.date, "d", date.Today().String(), "Expense date (YYYY-MM-DD)")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.category == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -p, -category and a positive -amount are required.")
		return subcommands.ExitUsageError
	}
	day, ok := parseDay(c.date)
	if !ok {
		return subcommands.ExitUsageError
	}
	return handleEntry(rentfolio.NewExpense(day, c.property, c.category, rentfolio.M(c.amount, "")))
}
