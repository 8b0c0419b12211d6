package billing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saeidshark/billing-system/date"
)

// InvoiceSummary is the decoded form of one invoice metadata record. The
// date is kept as the persisted string: the report filters by plain string
// comparison, which is exact for ISO dates and deliberately has no calendar
// awareness beyond that.
type InvoiceSummary struct {
	ID         int
	CustomerID int
	Date       string
	Discount   Percent
	Shipping   Money
}

// decodeInvoiceSummary parses one persisted metadata record.
func decodeInvoiceSummary(rec []string) (InvoiceSummary, error) {
	if len(rec) < 5 {
		return InvoiceSummary{}, fmt.Errorf("invoice record has %d fields, want 5", len(rec))
	}
	id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return InvoiceSummary{}, fmt.Errorf("invalid invoice id %q: %w", rec[0], err)
	}
	customerID, err := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err != nil {
		return InvoiceSummary{}, fmt.Errorf("invalid customer id %q: %w", rec[1], err)
	}
	discount, err := ParsePercent(rec[3])
	if err != nil {
		return InvoiceSummary{}, fmt.Errorf("invalid discount %q: %w", rec[3], err)
	}
	shipping, err := ParseMoney(rec[4])
	if err != nil {
		return InvoiceSummary{}, fmt.Errorf("invalid shipping %q: %w", rec[4], err)
	}
	return InvoiceSummary{ID: id, CustomerID: customerID, Date: rec[2], Discount: discount, Shipping: shipping}, nil
}

// Invoices returns the metadata of all persisted invoices in file order.
// Malformed records are skipped.
func (b *Books) Invoices() []InvoiceSummary {
	var summaries []InvoiceSummary
	for _, rec := range b.store.ReadAll(InvoicesMetaFile) {
		s, err := decodeInvoiceSummary(rec)
		if err != nil {
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// Sale is one row of a sales report: an invoice retained by the date
// filter, with the grand total recovered from its rendered document.
type Sale struct {
	ID         int
	CustomerID int
	Date       string
	Total      Money
}

// SalesReport sums sales over an inclusive date range.
//
// It iterates the metadata records in file order, keeps the rows whose date
// falls within [from, to], and recovers each retained invoice's total from
// the TOTAL line of its rendered document. An invoice whose document is
// missing, or carries no TOTAL line, is silently skipped and contributes
// nothing to the sum.
func (b *Books) SalesReport(from, to date.Date) ([]Sale, Money) {
	start, end := from.String(), to.String()
	var sales []Sale
	var totalSales Money
	for _, s := range b.Invoices() {
		if s.Date < start || s.Date > end {
			continue
		}
		doc, err := b.store.ReadDocument(s.ID)
		if err != nil {
			continue
		}
		total, ok := extractTotal(doc)
		if !ok {
			continue
		}
		sales = append(sales, Sale{ID: s.ID, CustomerID: s.CustomerID, Date: s.Date, Total: total})
		totalSales = totalSales.Add(total)
	}
	return sales, totalSales
}
