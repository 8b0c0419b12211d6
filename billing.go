package billing

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/saeidshark/billing-system/date"
)

// Default identifier starts per collection. Distinct ranges keep the three
// kinds of identifiers visually apart.
const (
	FirstCustomerID = 1001
	FirstItemID     = 5001
	FirstInvoiceID  = 9001
)

// Lookup failures surfaced by the core. They are never fatal: every
// operation either completes or reports one of these to its caller.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
)

// Books is the application root object: the in-memory catalog collections
// plus the store they are persisted to. It is loaded once at startup and
// passed by handle into every operation; there is no ambient state.
type Books struct {
	store *Store

	customers []Customer
	items     []Item

	nextCustomerID int
	nextItemID     int
	nextInvoiceID  int

	// now is the clock used to stamp generated documents.
	now func() time.Time
}

// Open loads the collections from the data directory. Missing collection
// files read as empty collections; malformed records are skipped with a
// warning rather than aborting the load.
func Open(dir string) (*Books, error) {
	store, err := NewStore(dir)
	if err != nil {
		return nil, err
	}
	b := &Books{store: store, now: time.Now}

	customerRecords := b.store.ReadAll(CustomersFile)
	for _, rec := range customerRecords {
		c, err := decodeCustomer(rec)
		if err != nil {
			log.Printf("warning: skipping customer record: %v", err)
			continue
		}
		b.customers = append(b.customers, c)
	}

	itemRecords := b.store.ReadAll(ItemsFile)
	for _, rec := range itemRecords {
		it, err := decodeItem(rec)
		if err != nil {
			log.Printf("warning: skipping item record: %v", err)
			continue
		}
		b.items = append(b.items, it)
	}

	b.nextCustomerID = NextID(customerRecords, FirstCustomerID)
	b.nextItemID = NextID(itemRecords, FirstItemID)
	b.nextInvoiceID = NextID(b.store.ReadAll(InvoicesMetaFile), FirstInvoiceID)
	return b, nil
}

// Store exposes the underlying storage adapter.
func (b *Books) Store() *Store { return b.store }

// CreateInvoice builds an invoice from the given line specs, persists it
// and returns it. Persistence is two-step and all-or-nothing: the rendered
// document is written first, and only on success is the metadata record
// appended. A failed document write leaves no metadata behind.
func (b *Books) CreateInvoice(customerID int, lines []LineSpec, discount Percent, shipping Money, note string, on date.Date) (Invoice, error) {
	inv, err := b.BuildInvoice(customerID, lines, discount, shipping, note, on)
	if err != nil {
		return Invoice{}, err
	}
	c := b.Customer(inv.CustomerID)
	doc := RenderDocument(inv, *c, b.now())
	if err := b.store.WriteDocument(inv.ID, doc); err != nil {
		return Invoice{}, err
	}
	if err := b.store.Append(InvoicesMetaFile, inv.metaRecord()); err != nil {
		return Invoice{}, err
	}
	b.nextInvoiceID++
	return inv, nil
}

// InvoiceDocument returns the rendered document of a persisted invoice.
func (b *Books) InvoiceDocument(id int) (string, error) {
	doc, err := b.store.ReadDocument(id)
	if err != nil {
		return "", fmt.Errorf("invoice %d: %w", id, ErrInvoiceNotFound)
	}
	return doc, nil
}
