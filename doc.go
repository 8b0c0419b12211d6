// Package billing provides the core of a single-operator billing ledger:
// customers, a catalog of sellable items, and invoices composed of line
// items drawn from that catalog, persisted as flat text records on local
// storage.
//
// The core functionalities include:
//   - Catalog Management: Adding, listing, searching and removing customers
//     and items, each collection backed by one delimited text file.
//   - Invoice Engine: Assembling line items into an invoice, computing its
//     totals (subtotal, tax, discount, shipping, grand total) with exact
//     decimal arithmetic, and rendering the durable invoice document.
//   - Data Persistence: Appending and rewriting collection files, and
//     writing one immutable text document per invoice alongside a compact
//     metadata record used for listing and reporting.
//   - Sales Reporting: Scanning invoice metadata over a date range and
//     recovering each invoice's grand total from its rendered document.
//
// This package serves as the foundational logic for the `bill` command-line
// tool; all input parsing and table presentation live in the callers.
package billing
