package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/saeidshark/billing-system/renderer"
)

type listCustomersCmd struct{}

func (*listCustomersCmd) Name() string     { return "customers" }
func (*listCustomersCmd) Synopsis() string { return "list all customers" }
func (*listCustomersCmd) Usage() string {
	return `customers

  Lists all customers in storage order.
`
}

func (*listCustomersCmd) SetFlags(f *flag.FlagSet) {}

func (*listCustomersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CustomersMarkdown(books.Customers()))
	return subcommands.ExitSuccess
}

type searchCustomersCmd struct{}

func (*searchCustomersCmd) Name() string     { return "search-customers" }
func (*searchCustomersCmd) Synopsis() string { return "search customers by name or email" }
func (*searchCustomersCmd) Usage() string {
	return `search-customers <query>

  Case-insensitive substring search over customer names and emails.
`
}

func (*searchCustomersCmd) SetFlags(f *flag.FlagSet) {}

func (*searchCustomersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one query argument is required.")
		return subcommands.ExitUsageError
	}
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CustomersMarkdown(books.SearchCustomers(f.Arg(0))))
	return subcommands.ExitSuccess
}

type removeCustomerCmd struct {
	id int
}

func (*removeCustomerCmd) Name() string     { return "rm-customer" }
func (*removeCustomerCmd) Synopsis() string { return "remove a customer by identifier" }
func (*removeCustomerCmd) Usage() string {
	return `rm-customer -id <id>

  Removes the customer and rewrites the collection. Existing invoices keep
  their customer identifier; only new invoices are affected.
`
}

func (c *removeCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Customer identifier (required)")
}

func (c *removeCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := books.RemoveCustomer(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Customer removed.")
	return subcommands.ExitSuccess
}
