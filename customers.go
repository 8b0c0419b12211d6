package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// Customer is one party invoices are issued to. All fields but the
// identifier are free text. Customers are never edited: they are added
// once and removed by identifier.
type Customer struct {
	ID      int
	Name    string
	Address string
	Email   string
	Phone   string
}

// record returns the persisted form: id,name,address,email,phone.
func (c Customer) record() []string {
	return []string{strconv.Itoa(c.ID), c.Name, c.Address, c.Email, c.Phone}
}

// decodeCustomer parses one persisted record.
func decodeCustomer(rec []string) (Customer, error) {
	if len(rec) < 5 {
		return Customer{}, fmt.Errorf("customer record has %d fields, want 5", len(rec))
	}
	id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return Customer{}, fmt.Errorf("invalid customer id %q: %w", rec[0], err)
	}
	return Customer{ID: id, Name: rec[1], Address: rec[2], Email: rec[3], Phone: rec[4]}, nil
}

// searchText is the concatenation of the fields covered by SearchCustomers.
func (c Customer) searchText() string { return c.Name + " " + c.Email }

// AddCustomer allocates the next customer identifier, appends the record to
// storage and returns the stored customer.
func (b *Books) AddCustomer(name, address, email, phone string) (Customer, error) {
	c := Customer{ID: b.nextCustomerID, Name: name, Address: address, Email: email, Phone: phone}
	if err := b.store.Append(CustomersFile, c.record()); err != nil {
		return Customer{}, err
	}
	b.nextCustomerID++
	b.customers = append(b.customers, c)
	return c, nil
}

// Customers returns all customers in storage order.
func (b *Books) Customers() []Customer { return b.customers }

// Customer returns the customer with this identifier, or nil if unknown.
func (b *Books) Customer(id int) *Customer {
	for i := range b.customers {
		if b.customers[i].ID == id {
			return &b.customers[i]
		}
	}
	return nil
}

// SearchCustomers returns the customers whose name or email contains the
// query, case-insensitively, in storage order.
func (b *Books) SearchCustomers(query string) []Customer {
	q := strings.ToLower(query)
	var found []Customer
	for _, c := range b.customers {
		if strings.Contains(strings.ToLower(c.searchText()), q) {
			found = append(found, c)
		}
	}
	return found
}

// RemoveCustomer deletes a customer and rewrites the whole collection.
// Removing an unknown identifier returns ErrCustomerNotFound and performs
// no write.
func (b *Books) RemoveCustomer(id int) error {
	at := -1
	for i := range b.customers {
		if b.customers[i].ID == id {
			at = i
			break
		}
	}
	if at < 0 {
		return fmt.Errorf("customer %d: %w", id, ErrCustomerNotFound)
	}
	kept := append(b.customers[:at:at], b.customers[at+1:]...)
	records := make([][]string, 0, len(kept))
	for _, c := range kept {
		records = append(records, c.record())
	}
	if err := b.store.Rewrite(CustomersFile, records); err != nil {
		return err
	}
	b.customers = kept
	return nil
}
