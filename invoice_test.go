package billing

import (
	"errors"
	"testing"

	"github.com/saeidshark/billing-system/date"
)

// openTestBooks returns an empty ledger in a throwaway directory.
func openTestBooks(t *testing.T) *Books {
	t.Helper()
	b, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return b
}

func TestInvoice_Totals(t *testing.T) {
	testCases := []struct {
		name         string
		lines        []InvoiceLine
		discount     Percent
		shipping     Money
		wantSubtotal string
		wantTax      string
		wantDiscount string
		wantTotal    string
	}{
		{
			name: "widget with discount and shipping",
			lines: []InvoiceLine{
				{Description: "Widget", UnitPrice: M(10.00), Quantity: Q(2), TaxPercent: P(10)},
			},
			discount:     P(10),
			shipping:     M(5.00),
			wantSubtotal: "20.00",
			wantTax:      "2.00",
			// 10% of the tax-inclusive 22.00, not of the subtotal alone.
			wantDiscount: "2.20",
			wantTotal:    "24.80",
		},
		{
			name:         "zero lines",
			lines:        nil,
			discount:     P(10),
			shipping:     M(5.00),
			wantSubtotal: "0.00",
			wantTax:      "0.00",
			wantDiscount: "0.00",
			wantTotal:    "5.00",
		},
		{
			name: "exact decimal aggregation",
			lines: []InvoiceLine{
				{Description: "Thing", UnitPrice: M(0.10), Quantity: Q(3), TaxPercent: P(0)},
			},
			wantSubtotal: "0.30",
			wantTax:      "0.00",
			wantDiscount: "0.00",
			wantTotal:    "0.30",
		},
		{
			name: "rounding only at display",
			lines: []InvoiceLine{
				{Description: "Service", UnitPrice: M(19.99), Quantity: Q(1), TaxPercent: P(7.5)},
				{Description: "Half unit", UnitPrice: M(5.00), Quantity: Q(0.5), TaxPercent: P(20)},
			},
			discount:     P(5),
			shipping:     M(3.10),
			wantSubtotal: "22.49",
			wantTax:      "2.00", // 1.49925 + 0.50, rounded for display only
			wantDiscount: "1.22", // 5% of 24.48925
			wantTotal:    "26.36",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := Invoice{Lines: tc.lines, Discount: tc.discount, Shipping: tc.shipping}
			got := inv.Totals()
			if got.Subtotal.String() != tc.wantSubtotal {
				t.Errorf("Subtotal = %s, want %s", got.Subtotal, tc.wantSubtotal)
			}
			if got.Tax.String() != tc.wantTax {
				t.Errorf("Tax = %s, want %s", got.Tax, tc.wantTax)
			}
			if got.Discount.String() != tc.wantDiscount {
				t.Errorf("Discount = %s, want %s", got.Discount, tc.wantDiscount)
			}
			if got.Total.String() != tc.wantTotal {
				t.Errorf("Total = %s, want %s", got.Total, tc.wantTotal)
			}
			// The identity holds at full precision, not just to two decimals.
			identity := got.Subtotal.Add(got.Tax).Sub(got.Discount).Add(got.Shipping)
			if !identity.Equal(got.Total) {
				t.Errorf("Total = %s, want subtotal+tax-discount+shipping = %s", got.Total, identity)
			}
		})
	}
}

func TestBuildInvoice(t *testing.T) {
	b := openTestBooks(t)
	customer, err := b.AddCustomer("ACME Corp", "1 Main St", "acme@example.com", "555-0100")
	if err != nil {
		t.Fatalf("AddCustomer() error = %v", err)
	}
	item, err := b.AddItem("WIDGET", "Widget", M(10.00), P(10))
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	on := date.MustParse("2025-03-05")
	inv, err := b.BuildInvoice(customer.ID, []LineSpec{{Key: "WIDGET", Quantity: Q(2)}}, P(10), M(5), "thanks", on)
	if err != nil {
		t.Fatalf("BuildInvoice() error = %v", err)
	}
	if inv.ID != FirstInvoiceID {
		t.Errorf("invoice ID = %d, want %d", inv.ID, FirstInvoiceID)
	}
	if inv.Date != on {
		t.Errorf("invoice date = %s, want %s", inv.Date, on)
	}
	if len(inv.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(inv.Lines))
	}
	line := inv.Lines[0]
	if line.ItemID != item.ID || line.Description != "Widget" {
		t.Errorf("line = %+v, want snapshot of item %d", line, item.ID)
	}
	if got := line.Amount().String(); got != "20.00" {
		t.Errorf("line amount = %s, want 20.00", got)
	}
	if got := line.Tax().String(); got != "2.00" {
		t.Errorf("line tax = %s, want 2.00", got)
	}
}

func TestBuildInvoice_NotFound(t *testing.T) {
	b := openTestBooks(t)
	customer, err := b.AddCustomer("ACME Corp", "", "", "")
	if err != nil {
		t.Fatalf("AddCustomer() error = %v", err)
	}

	_, err = b.BuildInvoice(4242, nil, P(0), M(0), "", date.Date{})
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("BuildInvoice(unknown customer) error = %v, want ErrCustomerNotFound", err)
	}

	_, err = b.BuildInvoice(customer.ID, []LineSpec{{Key: "NOPE", Quantity: Q(1)}}, P(0), M(0), "", date.Date{})
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("BuildInvoice(unknown item) error = %v, want ErrItemNotFound", err)
	}
}

func TestBuildInvoice_SnapshotsItemData(t *testing.T) {
	b := openTestBooks(t)
	customer, _ := b.AddCustomer("ACME Corp", "", "", "")
	item, _ := b.AddItem("WIDGET", "Widget", M(10.00), P(10))

	inv, err := b.BuildInvoice(customer.ID, []LineSpec{{Key: "WIDGET", Quantity: Q(1)}}, P(0), M(0), "", date.Date{})
	if err != nil {
		t.Fatalf("BuildInvoice() error = %v", err)
	}

	// Removing the item afterwards must not change the built invoice.
	if err := b.RemoveItem(item.ID); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if !inv.Lines[0].UnitPrice.Equal(M(10.00)) {
		t.Errorf("line unit price = %s, want the snapshot 10.00", inv.Lines[0].UnitPrice)
	}
}
