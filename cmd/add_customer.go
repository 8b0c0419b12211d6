package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCustomerCmd struct {
	name    string
	address string
	email   string
	phone   string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "add a new customer to the ledger" }
func (*addCustomerCmd) Usage() string {
	return `add-customer -name <name> [-address <address>] [-email <email>] [-phone <phone>]

  Adds a new customer and prints its assigned identifier. All fields are
  free text; only the name is required.
`
}

func (c *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Customer name (required)")
	f.StringVar(&c.address, "address", "", "Postal address")
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.phone, "phone", "", "Phone number")
}

func (c *addCustomerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	customer, err := books.AddCustomer(c.name, c.address, c.email, c.phone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving customer: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Customer saved with ID %d\n", customer.ID)
	return subcommands.ExitSuccess
}
