package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	billing "github.com/saeidshark/billing-system"
	"github.com/saeidshark/billing-system/date"
)

// lineFlags collects repeated -line flags.
type lineFlags []string

func (l *lineFlags) String() string { return strings.Join(*l, ", ") }
func (l *lineFlags) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// parseLineSpec parses one "-line" value of the form <item id or code>:<quantity>.
// The quantity follows the last colon so codes containing colons stay usable.
func parseLineSpec(s string) (billing.LineSpec, error) {
	at := strings.LastIndex(s, ":")
	if at <= 0 || at == len(s)-1 {
		return billing.LineSpec{}, fmt.Errorf("invalid line %q, want <item>:<quantity>", s)
	}
	qty, err := billing.ParseQuantity(s[at+1:])
	if err != nil {
		return billing.LineSpec{}, fmt.Errorf("invalid quantity in line %q: %w", s, err)
	}
	if !qty.IsPositive() {
		return billing.LineSpec{}, fmt.Errorf("quantity in line %q must be positive", s)
	}
	return billing.LineSpec{Key: s[:at], Quantity: qty}, nil
}

type invoiceCmd struct {
	customerID int
	lines      lineFlags
	discount   string
	shipping   string
	note       string
	on         string
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "create and persist a new invoice" }
func (*invoiceCmd) Usage() string {
	return `invoice -customer <id> -line <item>:<qty> [-line ...] [-discount <percent>] [-shipping <amount>] [-note <text>] [-date <YYYY-MM-DD>]

  Creates an invoice for a customer. Each -line references a catalog item by
  identifier or by code; the item's description, unit price and tax percent
  are snapshotted into the invoice. The rendered document is written under
  the invoices/ subdirectory, then the metadata record is appended.

Usage Examples:
# One line of two WIDGET, 10% discount, 5.00 shipping.
$ bill invoice -customer 1001 -line WIDGET:2 -discount 10 -shipping 5.00
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.customerID, "customer", 0, "Customer identifier (required)")
	f.Var(&c.lines, "line", "Invoice line as <item id or code>:<quantity>, repeatable")
	f.StringVar(&c.discount, "discount", "0", "Discount percent applied to subtotal plus tax")
	f.StringVar(&c.shipping, "shipping", "0", "Shipping amount")
	f.StringVar(&c.note, "note", "", "Free-text note printed on the document")
	f.StringVar(&c.on, "date", "", "Issue date, defaults to today")
}

func (c *invoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.customerID == 0 {
		fmt.Fprintln(os.Stderr, "Error: -customer is required.")
		return subcommands.ExitUsageError
	}
	var specs []billing.LineSpec
	for _, raw := range c.lines {
		spec, err := parseLineSpec(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		specs = append(specs, spec)
	}
	discount, err := billing.ParsePercent(c.discount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid discount %q: %v\n", c.discount, err)
		return subcommands.ExitUsageError
	}
	shipping, err := billing.ParseMoney(c.shipping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid shipping %q: %v\n", c.shipping, err)
		return subcommands.ExitUsageError
	}
	var on date.Date
	if c.on != "" {
		on, err = date.Parse(c.on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	books, err := openBooks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	inv, err := books.CreateInvoice(c.customerID, specs, discount, shipping, c.note, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating invoice: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Invoice created and saved as %s\n", books.Store().DocumentPath(inv.ID))
	return subcommands.ExitSuccess
}
