package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/saeidshark/billing-system/renderer"
)

type listInvoicesCmd struct{}

func (*listInvoicesCmd) Name() string     { return "invoices" }
func (*listInvoicesCmd) Synopsis() string { return "list invoice metadata" }
func (*listInvoicesCmd) Usage() string {
	return `invoices

  Lists the metadata of all persisted invoices in file order, without
  re-parsing the rendered documents.
`
}

func (*listInvoicesCmd) SetFlags(f *flag.FlagSet) {}

func (*listInvoicesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.InvoicesMarkdown(books.Invoices()))
	return subcommands.ExitSuccess
}

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "print an invoice document" }
func (*showCmd) Usage() string {
	return `show <invoice id>

  Prints the rendered document of an invoice verbatim.
`
}

func (*showCmd) SetFlags(f *flag.FlagSet) {}

func (*showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one invoice id argument is required.")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid invoice id %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	doc, err := books.InvoiceDocument(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(doc)
	return subcommands.ExitSuccess
}
