package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/saeidshark/billing-system/date"
	"github.com/saeidshark/billing-system/renderer"
)

type salesCmd struct {
	from string
	to   string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "sales report over a date range" }
func (*salesCmd) Usage() string {
	return `sales -from <YYYY-MM-DD> -to <YYYY-MM-DD>

  Sums the grand totals of all invoices issued within the inclusive date
  range. Totals are recovered from the rendered documents; an invoice whose
  document is missing is skipped.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date, inclusive (required)")
	f.StringVar(&c.to, "to", "", "End date, inclusive (required)")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -from and -to are required.")
		return subcommands.ExitUsageError
	}
	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.Parse(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	sales, total := books.SalesReport(from, to)
	printMarkdown(renderer.SalesMarkdown(sales, total))
	return subcommands.ExitSuccess
}
