package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/saeidshark/billing-system/renderer"
)

type listItemsCmd struct{}

func (*listItemsCmd) Name() string     { return "items" }
func (*listItemsCmd) Synopsis() string { return "list all catalog items" }
func (*listItemsCmd) Usage() string {
	return `items

  Lists all catalog items in storage order.
`
}

func (*listItemsCmd) SetFlags(f *flag.FlagSet) {}

func (*listItemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ItemsMarkdown(books.Items()))
	return subcommands.ExitSuccess
}

type searchItemsCmd struct{}

func (*searchItemsCmd) Name() string     { return "search-items" }
func (*searchItemsCmd) Synopsis() string { return "search items by code or description" }
func (*searchItemsCmd) Usage() string {
	return `search-items <query>

  Case-insensitive substring search over item codes and descriptions.
`
}

func (*searchItemsCmd) SetFlags(f *flag.FlagSet) {}

func (*searchItemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one query argument is required.")
		return subcommands.ExitUsageError
	}
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ItemsMarkdown(books.SearchItems(f.Arg(0))))
	return subcommands.ExitSuccess
}

type removeItemCmd struct {
	id int
}

func (*removeItemCmd) Name() string     { return "rm-item" }
func (*removeItemCmd) Synopsis() string { return "remove an item by identifier" }
func (*removeItemCmd) Usage() string {
	return `rm-item -id <id>

  Removes the item and rewrites the collection.
`
}

func (c *removeItemCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Item identifier (required)")
}

func (c *removeItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := books.RemoveItem(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Item removed.")
	return subcommands.ExitSuccess
}
