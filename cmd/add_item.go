package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	billing "github.com/saeidshark/billing-system"
)

type addItemCmd struct {
	code        string
	description string
	price       string
	tax         string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add a new item to the catalog" }
func (*addItemCmd) Usage() string {
	return `add-item -code <sku> -desc <description> -price <unit price> [-tax <percent>]

  Adds a new catalog item and prints its assigned identifier. The code is
  free text and not enforced unique; invoice lines snapshot the item's data
  so later removals never alter existing invoices.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Item code, SKU (required)")
	f.StringVar(&c.description, "desc", "", "Item description (required)")
	f.StringVar(&c.price, "price", "", "Unit price, e.g. 10.00 (required)")
	f.StringVar(&c.tax, "tax", "0", "Tax percent, e.g. 20")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.description == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -code, -desc and -price are required.")
		return subcommands.ExitUsageError
	}
	price, err := billing.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid unit price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}
	if price.IsNegative() {
		fmt.Fprintln(os.Stderr, "Error: unit price must not be negative.")
		return subcommands.ExitUsageError
	}
	tax, err := billing.ParsePercent(c.tax)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid tax percent %q: %v\n", c.tax, err)
		return subcommands.ExitUsageError
	}
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	item, err := books.AddItem(c.code, c.description, price, tax)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving item: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Item saved with ID %d\n", item.ID)
	return subcommands.ExitSuccess
}
