// Package cmd implements the CLI application to manage the billing ledger.
package cmd

import (
	"flag"
	"log"

	"github.com/google/subcommands"
	"github.com/kelseyhightower/envconfig"
	billing "github.com/saeidshark/billing-system"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCustomerCmd{}, "customers")
	c.Register(&listCustomersCmd{}, "customers")
	c.Register(&searchCustomersCmd{}, "customers")
	c.Register(&removeCustomerCmd{}, "customers")

	c.Register(&addItemCmd{}, "items")
	c.Register(&listItemsCmd{}, "items")
	c.Register(&searchItemsCmd{}, "items")
	c.Register(&removeItemCmd{}, "items")

	c.Register(&invoiceCmd{}, "invoices")
	c.Register(&listInvoicesCmd{}, "invoices")
	c.Register(&showCmd{}, "invoices")
	c.Register(&salesCmd{}, "invoices")
}

// appConfig carries the environment-provided defaults. Flags still win.
type appConfig struct {
	Dir string `envconfig:"DIR" default:"."`
}

func defaultDir() string {
	var cfg appConfig
	if err := envconfig.Process("billing", &cfg); err != nil {
		log.Printf("warning: could not read environment configuration: %v", err)
		return "."
	}
	return cfg.Dir
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("dir", defaultDir(), "Path to the billing data directory (env BILLING_DIR)")

// openBooks loads the collections from the app data directory.
func openBooks() (*billing.Books, error) {
	return billing.Open(*dataDir)
}
