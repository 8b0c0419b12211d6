package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// Item is a sellable entry of the catalog. The code (SKU) is free text and
// not enforced unique. Like customers, items are added and removed but
// never edited; invoices snapshot item data at creation time.
type Item struct {
	ID          int
	Code        string
	Description string
	UnitPrice   Money
	TaxPercent  Percent
}

// record returns the persisted form: id,code,description,unit_price,tax_percent.
// The unit price is persisted with two decimal places.
func (it Item) record() []string {
	return []string{strconv.Itoa(it.ID), it.Code, it.Description, it.UnitPrice.String(), it.TaxPercent.String()}
}

// decodeItem parses one persisted record.
func decodeItem(rec []string) (Item, error) {
	if len(rec) < 5 {
		return Item{}, fmt.Errorf("item record has %d fields, want 5", len(rec))
	}
	id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return Item{}, fmt.Errorf("invalid item id %q: %w", rec[0], err)
	}
	price, err := ParseMoney(rec[3])
	if err != nil {
		return Item{}, fmt.Errorf("invalid unit price %q: %w", rec[3], err)
	}
	tax, err := ParsePercent(rec[4])
	if err != nil {
		return Item{}, fmt.Errorf("invalid tax percent %q: %w", rec[4], err)
	}
	return Item{ID: id, Code: rec[1], Description: rec[2], UnitPrice: price, TaxPercent: tax}, nil
}

// searchText is the concatenation of the fields covered by SearchItems.
func (it Item) searchText() string { return it.Code + " " + it.Description }

// AddItem allocates the next item identifier, appends the record to storage
// and returns the stored item.
func (b *Books) AddItem(code, description string, unitPrice Money, taxPercent Percent) (Item, error) {
	it := Item{ID: b.nextItemID, Code: code, Description: description, UnitPrice: unitPrice, TaxPercent: taxPercent}
	if err := b.store.Append(ItemsFile, it.record()); err != nil {
		return Item{}, err
	}
	b.nextItemID++
	b.items = append(b.items, it)
	return it, nil
}

// Items returns all catalog items in storage order.
func (b *Books) Items() []Item { return b.items }

// Item returns the item with this identifier, or nil if unknown.
func (b *Books) Item(id int) *Item {
	for i := range b.items {
		if b.items[i].ID == id {
			return &b.items[i]
		}
	}
	return nil
}

// ItemByCode returns the first item with this code, or nil if unknown.
func (b *Books) ItemByCode(code string) *Item {
	for i := range b.items {
		if b.items[i].Code == code {
			return &b.items[i]
		}
	}
	return nil
}

// ResolveItem resolves a line key that may be a numeric item identifier or
// an item code. An all-digit key is tried as an identifier first, falling
// back to code lookup; any other key is looked up by code only.
func (b *Books) ResolveItem(key string) (*Item, error) {
	if id, err := strconv.Atoi(key); err == nil {
		if it := b.Item(id); it != nil {
			return it, nil
		}
	}
	if it := b.ItemByCode(key); it != nil {
		return it, nil
	}
	return nil, fmt.Errorf("item %q: %w", key, ErrItemNotFound)
}

// SearchItems returns the items whose code or description contains the
// query, case-insensitively, in storage order.
func (b *Books) SearchItems(query string) []Item {
	q := strings.ToLower(query)
	var found []Item
	for _, it := range b.items {
		if strings.Contains(strings.ToLower(it.searchText()), q) {
			found = append(found, it)
		}
	}
	return found
}

// RemoveItem deletes an item and rewrites the whole collection. Removing an
// unknown identifier returns ErrItemNotFound and performs no write.
// Existing invoices are unaffected: their lines carry snapshots.
func (b *Books) RemoveItem(id int) error {
	at := -1
	for i := range b.items {
		if b.items[i].ID == id {
			at = i
			break
		}
	}
	if at < 0 {
		return fmt.Errorf("item %d: %w", id, ErrItemNotFound)
	}
	kept := append(b.items[:at:at], b.items[at+1:]...)
	records := make([][]string, 0, len(kept))
	for _, it := range kept {
		records = append(records, it.record())
	}
	if err := b.store.Rewrite(ItemsFile, records); err != nil {
		return err
	}
	b.items = kept
	return nil
}
