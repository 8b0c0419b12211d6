// Package renderer formats billing collections and reports as markdown for
// terminal display. The invoice document itself is not rendered here: it is
// a durable artifact produced by the core and printed verbatim.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	billing "github.com/saeidshark/billing-system"
)

// CustomersMarkdown renders the customer listing as a markdown table.
func CustomersMarkdown(customers []billing.Customer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Customers")
	table := md.TableSet{
		Header: []string{"ID", "Name", "Email", "Phone"},
	}
	for _, c := range customers {
		table.Rows = append(table.Rows, []string{strconv.Itoa(c.ID), c.Name, c.Email, c.Phone})
	}
	doc.Table(table)

	return doc.String()
}

// ItemsMarkdown renders the item listing as a markdown table.
func ItemsMarkdown(items []billing.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Items")
	table := md.TableSet{
		Header: []string{"ID", "SKU", "Description", "Price", "Tax%"},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(it.ID), it.Code, it.Description, it.UnitPrice.String(), it.TaxPercent.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// InvoicesMarkdown renders the invoice metadata listing as a markdown table.
func InvoicesMarkdown(summaries []billing.InvoiceSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Invoices")
	table := md.TableSet{
		Header: []string{"InvID", "CustID", "Date", "Discount", "Shipping"},
	}
	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(s.ID), strconv.Itoa(s.CustomerID), s.Date, s.Discount.Fixed(), s.Shipping.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// SalesMarkdown renders a sales report as a markdown table followed by the
// total over the range.
func SalesMarkdown(sales []billing.Sale, totalSales billing.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales Report")
	table := md.TableSet{
		Header: []string{"InvID", "CustID", "Date", "Total"},
	}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(s.ID), strconv.Itoa(s.CustomerID), s.Date, s.Total.String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("TOTAL SALES: %s", totalSales))

	return doc.String()
}
