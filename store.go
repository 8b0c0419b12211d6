package billing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Collection names a persisted collection file inside the data directory.
type Collection string

const (
	// CustomersFile holds one customer record per line.
	CustomersFile Collection = "customers.csv"
	// ItemsFile holds one item record per line.
	ItemsFile Collection = "items.csv"
	// InvoicesMetaFile holds one invoice metadata record per line.
	InvoicesMetaFile Collection = "invoices_meta.csv"
)

// documentsFolder is the subdirectory holding the rendered invoice documents.
const documentsFolder = "invoices"

// Store persists collections as delimited text files in a single data
// directory, in a way that is still human-readable and diff-friendly.
//
// It only knows three mutations: append one record, rewrite a whole
// collection, and write one invoice document. There is no partial-record
// update and no locking; the store is meant for a single operator.
type Store struct {
	dir string
}

// NewStore opens (and creates if needed) the data directory and the
// invoice documents subdirectory within it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, documentsFolder), 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory this store operates on.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(c Collection) string { return filepath.Join(s.dir, string(c)) }

// ReadAll returns all records of a collection in file order.
//
// A missing or unreadable file reads as an empty collection. Individual
// lines that cannot be parsed are skipped, not fatal.
func (s *Store) ReadAll(c Collection) [][]string {
	f, err := os.Open(s.path(c))
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("warning: skipping malformed line in %s: %v", c, err)
			continue
		}
		if len(rec) == 0 {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Append adds one record at the end of a collection, creating the file if
// it does not exist yet.
func (s *Store) Append(c Collection, record []string) error {
	f, err := os.OpenFile(s.path(c), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", c, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(record); err != nil {
		return fmt.Errorf("could not append to %s: %w", c, err)
	}
	w.Flush()
	return w.Error()
}

// Rewrite replaces the whole content of a collection with the given records.
func (s *Store) Rewrite(c Collection, records [][]string) error {
	f, err := os.Create(s.path(c))
	if err != nil {
		return fmt.Errorf("could not rewrite %s: %w", c, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("could not rewrite %s: %w", c, err)
	}
	return w.Error()
}

// DocumentPath returns the path of the rendered document for an invoice id.
func (s *Store) DocumentPath(id int) string {
	return filepath.Join(s.dir, documentsFolder, fmt.Sprintf("invoice_%d.txt", id))
}

// WriteDocument stores the rendered text document of an invoice.
func (s *Store) WriteDocument(id int, text string) error {
	if err := os.MkdirAll(filepath.Join(s.dir, documentsFolder), 0755); err != nil {
		return fmt.Errorf("could not create documents directory: %w", err)
	}
	if err := os.WriteFile(s.DocumentPath(id), []byte(text), 0644); err != nil {
		return fmt.Errorf("could not write invoice document %d: %w", id, err)
	}
	return nil
}

// ReadDocument returns the rendered text document of an invoice.
// The error wraps fs.ErrNotExist when the document is missing.
func (s *Store) ReadDocument(id int) (string, error) {
	b, err := os.ReadFile(s.DocumentPath(id))
	if err != nil {
		return "", fmt.Errorf("could not read invoice document %d: %w", id, err)
	}
	return string(b), nil
}
