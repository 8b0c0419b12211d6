package billing

import (
	"fmt"
	"strconv"

	"github.com/saeidshark/billing-system/date"
)

// LineSpec describes one requested invoice line before resolution: a key
// that may be an item identifier or an item code, and a quantity.
type LineSpec struct {
	Key      string
	Quantity Quantity
}

// InvoiceLine is one resolved line of an invoice. Description, unit price
// and tax percent are snapshots of the item at invoice creation time, so
// later catalog changes never alter existing invoices.
type InvoiceLine struct {
	ItemID      int
	Description string
	UnitPrice   Money
	Quantity    Quantity
	TaxPercent  Percent
}

// Amount returns unit price times quantity, at full precision.
func (l InvoiceLine) Amount() Money { return l.UnitPrice.Mul(l.Quantity) }

// Tax returns the tax owed on this line, at full precision.
func (l InvoiceLine) Tax() Money { return l.TaxPercent.Of(l.Amount()) }

// Invoice is one immutable billing document. Once persisted it is never
// mutated or deleted. Line order is meaningful: lines print as numbered rows.
type Invoice struct {
	ID         int
	CustomerID int
	Date       date.Date
	Lines      []InvoiceLine
	Discount   Percent
	Shipping   Money
	Note       string
}

// Totals is the computed summary of an invoice.
type Totals struct {
	Subtotal Money
	Tax      Money
	Discount Money
	Shipping Money
	Total    Money
}

// Totals derives the invoice summary. Amounts are summed at full precision;
// rounding happens only for display. The discount applies to the
// tax-inclusive amount (subtotal plus tax), not the subtotal alone.
func (inv Invoice) Totals() Totals {
	var subtotal, tax Money
	for _, l := range inv.Lines {
		subtotal = subtotal.Add(l.Amount())
		tax = tax.Add(l.Tax())
	}
	discount := inv.Discount.Of(subtotal.Add(tax))
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Shipping: inv.Shipping,
		Total:    subtotal.Add(tax).Sub(discount).Add(inv.Shipping),
	}
}

// metaRecord returns the compact persisted form used for listing and
// reporting without re-parsing the full document:
// id,customer_id,date,discount_percent,shipping.
func (inv Invoice) metaRecord() []string {
	return []string{
		strconv.Itoa(inv.ID),
		strconv.Itoa(inv.CustomerID),
		inv.Date.String(),
		inv.Discount.Fixed(),
		inv.Shipping.String(),
	}
}

// BuildInvoice assembles an invoice without persisting it. The customer
// identifier must resolve in the catalog, and every line key must resolve
// to an item (ResolveItem rules). A zero date defaults to today.
func (b *Books) BuildInvoice(customerID int, lines []LineSpec, discount Percent, shipping Money, note string, on date.Date) (Invoice, error) {
	if b.Customer(customerID) == nil {
		return Invoice{}, fmt.Errorf("customer %d: %w", customerID, ErrCustomerNotFound)
	}
	if on.IsZero() {
		on = date.Today()
	}
	inv := Invoice{
		ID:         b.nextInvoiceID,
		CustomerID: customerID,
		Date:       on,
		Discount:   discount,
		Shipping:   shipping,
		Note:       note,
	}
	for _, spec := range lines {
		it, err := b.ResolveItem(spec.Key)
		if err != nil {
			return Invoice{}, err
		}
		inv.Lines = append(inv.Lines, InvoiceLine{
			ItemID:      it.ID,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    spec.Quantity,
			TaxPercent:  it.TaxPercent,
		})
	}
	return inv, nil
}
