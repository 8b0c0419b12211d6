package billing

import (
	"strings"
	"testing"
	"time"

	"github.com/saeidshark/billing-system/date"
)

func testInvoice() (Invoice, Customer) {
	inv := Invoice{
		ID:         9001,
		CustomerID: 1001,
		Date:       date.MustParse("2025-03-05"),
		Lines: []InvoiceLine{
			{ItemID: 5001, Description: "Widget", UnitPrice: M(10.00), Quantity: Q(2), TaxPercent: P(10)},
		},
		Discount: P(10),
		Shipping: M(5.00),
		Note:     "thanks",
	}
	c := Customer{ID: 1001, Name: "ACME Corp", Address: "1 Main St", Email: "acme@example.com", Phone: "555-0100"}
	return inv, c
}

func TestRenderDocument(t *testing.T) {
	inv, c := testInvoice()
	generated := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)
	doc := RenderDocument(inv, c, generated)

	for _, want := range []string{
		"INVOICE #9001",
		"2025-03-05",
		"ACME Corp",
		"1 Main St",
		"acme@example.com",
		"555-0100",
		"Widget",
		"Note: thanks",
		"Generated: 2025-03-05 14:30:00",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}

	// Rows are numbered starting at 1.
	if !strings.Contains(doc, "\n1     ") {
		t.Errorf("document missing numbered first row:\n%s", doc)
	}
}

// The totals-line format is a contract, not cosmetic: the report recovers
// an invoice's total by parsing the last token of the TOTAL line.
func TestRenderDocument_TotalLineContract(t *testing.T) {
	inv, c := testInvoice()
	doc := RenderDocument(inv, c, time.Now())

	var totalLine string
	for _, line := range strings.Split(doc, "\n") {
		if strings.Contains(line, totalLabel) {
			totalLine = line
			break
		}
	}
	if totalLine == "" {
		t.Fatalf("document has no %s line:\n%s", totalLabel, doc)
	}
	fields := strings.Fields(totalLine)
	if got := fields[len(fields)-1]; got != "24.80" {
		t.Errorf("last token of TOTAL line = %q, want %q", got, "24.80")
	}
}

func TestExtractTotal(t *testing.T) {
	testCases := []struct {
		name   string
		doc    string
		want   string
		wantOK bool
	}{
		{
			name:   "rendered document",
			doc:    "header\n    TOTAL:      24.80\nfooter",
			want:   "24.80",
			wantOK: true,
		},
		{
			name:   "subtotal line is not the total",
			doc:    "  Subtotal:  20.00\n  TOTAL:  24.80\n",
			want:   "24.80",
			wantOK: true,
		},
		{
			name:   "no total line",
			doc:    "just some text\n",
			wantOK: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractTotal(tc.doc)
			if ok != tc.wantOK {
				t.Fatalf("extractTotal() ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && got.String() != tc.want {
				t.Errorf("extractTotal() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestExtractTotal_RoundTrip(t *testing.T) {
	inv, c := testInvoice()
	doc := RenderDocument(inv, c, time.Now())
	got, ok := extractTotal(doc)
	if !ok {
		t.Fatalf("extractTotal() found no total in rendered document:\n%s", doc)
	}
	if want := inv.Totals().Total; got.String() != want.String() {
		t.Errorf("extractTotal() = %s, want %s", got, want)
	}
}
