package billing

import (
	"fmt"
	"strings"
	"time"
)

// systemName is the banner printed on every invoice document.
const systemName = "BILLING SYSTEM"

// totalLabel marks the grand-total line of a rendered document. The label
// and the trailing numeric token form the narrow contract the sales report
// relies on to recover an invoice's total, so changing this line's shape
// changes the on-disk contract.
const totalLabel = "TOTAL:"

const generatedFormat = "2006-01-02 15:04:05"

// RenderDocument renders the durable, immutable text document of an
// invoice: header block, numbered line-item table, totals block, note and
// generation timestamp, in a fixed-width layout.
func RenderDocument(inv Invoice, c Customer, generatedAt time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-40s%30s\n", systemName, fmt.Sprintf("INVOICE #%d", inv.ID))
	fmt.Fprintf(&sb, "%-50s%s\n", "Date: ", inv.Date)
	fmt.Fprintf(&sb, "%-50s%s\n", "Customer: ", c.Name)
	fmt.Fprintf(&sb, "%-50s%s\n", "Address: ", c.Address)
	fmt.Fprintf(&sb, "%-50s%s\n", "Email: ", c.Email)
	fmt.Fprintf(&sb, "%-50s%s\n\n", "Phone: ", c.Phone)

	fmt.Fprintf(&sb, "%-6s%-8s%-10s%-40s%-10s%-14s\n", "No", "Qty", "Unit", "Description", "Tax%", "LineTotal")
	sb.WriteString(strings.Repeat("-", 90) + "\n")
	for i, l := range inv.Lines {
		fmt.Fprintf(&sb, "%-6d%-8s%-10s%-40s%-10s%-14s\n",
			i+1, l.Quantity, l.UnitPrice, l.Description, l.TaxPercent, l.Amount())
	}
	sb.WriteString(strings.Repeat("-", 90) + "\n")

	t := inv.Totals()
	fmt.Fprintf(&sb, "%70s%14s\n", "Subtotal: ", t.Subtotal)
	fmt.Fprintf(&sb, "%70s%14s\n", "Tax: ", t.Tax)
	fmt.Fprintf(&sb, "%70s%14s\n", fmt.Sprintf("Discount (%s%%): ", inv.Discount), t.Discount.Neg())
	fmt.Fprintf(&sb, "%70s%14s\n", "Shipping: ", t.Shipping)
	fmt.Fprintf(&sb, "%70s%14s\n\n", totalLabel+" ", t.Total)

	fmt.Fprintf(&sb, "Note: %s\n", inv.Note)
	fmt.Fprintf(&sb, "Generated: %s\n", generatedAt.Format(generatedFormat))
	return sb.String()
}

// extractTotal recovers the grand total from a rendered document by
// locating the line containing the TOTAL label and parsing its last
// whitespace-separated token. It reports false when the document carries no
// such line.
func extractTotal(doc string) (Money, bool) {
	for _, line := range strings.Split(doc, "\n") {
		if !strings.Contains(line, totalLabel) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		total, err := ParseMoney(fields[len(fields)-1])
		if err != nil {
			return Money{}, false
		}
		return total, true
	}
	return Money{}, false
}
