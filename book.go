package finbook

import (
	"bytes"
	"fmt"
	"strings"
)

// Store keys for the three persisted values.
const (
	KeyTransactions = "transactions.jsonl"
	KeyEmployees    = "employees.jsonl"
	KeyCurrency     = "currency"
)

// DefaultCurrency is used until a preference is persisted.
const DefaultCurrency = "USD"

// Book holds the two collections and the currency preference. It is the
// only mutable state of the system: the engine treats its fields as value
// snapshots and every change is persisted wholesale through the store.
type Book struct {
	Ledger   *Ledger
	Roster   *Roster
	Currency string
}

// NewBook creates an empty book with the default currency.
func NewBook() *Book {
	return &Book{Ledger: NewLedger(), Roster: NewRoster(), Currency: DefaultCurrency}
}

// LoadBook loads the persisted collections and currency preference from the
// store. Absent keys leave the corresponding part empty or defaulted.
func LoadBook(store Store) (*Book, error) {
	book := NewBook()

	if data, ok, err := store.Load(KeyTransactions); err != nil {
		return nil, err
	} else if ok {
		ledger, err := DecodeLedger(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", KeyTransactions, err)
		}
		book.Ledger = ledger
	}

	if data, ok, err := store.Load(KeyEmployees); err != nil {
		return nil, err
	} else if ok {
		roster, err := DecodeRoster(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("cannot decode %s: %w", KeyEmployees, err)
		}
		book.Roster = roster
	}

	if data, ok, err := store.Load(KeyCurrency); err != nil {
		return nil, err
	} else if ok {
		if cur := strings.TrimSpace(string(data)); cur != "" {
			book.Currency = cur
		}
	}

	return book, nil
}

// Save persists the whole book through the store.
func (b *Book) Save(store Store) error {
	var ledgerBuf bytes.Buffer
	if err := EncodeLedger(&ledgerBuf, b.Ledger); err != nil {
		return err
	}
	if err := store.Save(KeyTransactions, ledgerBuf.Bytes()); err != nil {
		return err
	}

	var rosterBuf bytes.Buffer
	if err := EncodeRoster(&rosterBuf, b.Roster); err != nil {
		return err
	}
	if err := store.Save(KeyEmployees, rosterBuf.Bytes()); err != nil {
		return err
	}

	return store.Save(KeyCurrency, []byte(b.Currency+"\n"))
}

// Summary derives every view from the book's current state at the given
// evaluation date.
func (b *Book) Summary(on Date) *Report {
	return Summarize(b.Ledger, b.Roster, on, b.Currency)
}
