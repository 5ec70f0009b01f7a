package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/jpcaulfield/rentfolio"
)

type importCmd struct {
	property     string
	file         string
	datePath     string
	categoryPath string
	amountPath   string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from a JSONL export" }
func (*importCmd) Usage() string {
	return `import -p <property> [-f <file>] [-date-path <jsonpath>] [-category-path <jsonpath>] [-amount-path <jsonpath>]

  Imports an expense history exported by another tool, one JSON object per
  line, read from the file or from stdin. The field layout of the export is
  described by jsonpath expressions; the defaults match '{"date":...,
  "category":..., "amount":...}'. Malformed lines are skipped and counted.

Usage Examples:
# Import a banking export with its own nesting.
$ rfo import -p elm-12 -f export.jsonl -date-path '$.txn.posted' -amount-path '$.txn.value'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id to book the expenses on")
	f.StringVar(&c.file, "f", "", "Export file to read; stdin by default")
	f.StringVar(&c.datePath, "date-path", rentfolio.DefaultExpenseMapping.Date, "jsonpath to the expense date")
	f.StringVar(&c.categoryPath, "category-path", rentfolio.DefaultExpenseMapping.Category, "jsonpath to the category")
	f.StringVar(&c.amountPath, "amount-path", rentfolio.DefaultExpenseMapping.Amount, "jsonpath to the amount")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p is required.")
		return subcommands.ExitUsageError
	}

	var r io.Reader = os.Stdin
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening export %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	mapping := rentfolio.ExpenseMapping{
		Date:     c.datePath,
		Category: c.categoryPath,
		Amount:   c.amountPath,
	}
	entries, skipped, err := rentfolio.ImportExpenses(r, c.property, mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	pf, err := loadPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	for _, e := range entries {
		if err := pf.Append(e); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := rentfolio.AppendEntry(*ledgerFile, e); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to ledger %q: %v\n", *ledgerFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Imported %d expenses into %s", len(entries), *ledgerFile)
	if skipped > 0 {
		fmt.Printf(" (%d malformed lines skipped)", skipped)
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
