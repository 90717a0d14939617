package finbook

import "github.com/google/uuid"

// Upload contract: zero, one or two text blobs per action. When both are
// given each is normalized against its own schema; when only the
// transactions blob is given the classifier decides its role; an employees
// blob alone is always a roster. Parsing begins only once every requested
// blob has been read; partial uploads are the caller's concern.

// ImportTables parses and normalizes the uploaded blobs. A nil result means
// "collection not replaced" so callers keep their current one.
func ImportTables(txText, empText string, diag *Diagnostics) (*Ledger, *Roster) {
	if txText != "" && empText != "" {
		return normalizeLedger(ParseCSV(txText), diag), normalizeRoster(ParseCSV(empText), diag)
	}
	if empText != "" {
		return nil, normalizeRoster(ParseCSV(empText), diag)
	}
	if txText == "" {
		return nil, nil
	}

	rows := ParseCSV(txText)
	if Classify(rows).Kind == Employees {
		return nil, normalizeRoster(rows, diag)
	}
	return normalizeLedger(rows, diag), nil
}

// NewEntry normalizes a single user-entered row-like mapping into a
// Transaction carrying a fresh identifier, ready to be prepended to the
// ledger.
func NewEntry(fields Record, diag *Diagnostics) Transaction {
	tx := NormalizeTransaction(fields, diag)
	tx.ID = uuid.NewString()
	return tx
}

func normalizeLedger(rows []Record, diag *Diagnostics) *Ledger {
	ledger := NewLedger()
	for i, rec := range rows {
		diag.SetRow(i + 1)
		tx := NormalizeTransaction(rec, diag)
		tx.ID = uuid.NewString()
		ledger.transactions = append(ledger.transactions, tx)
	}
	diag.SetRow(0)
	return ledger
}

func normalizeRoster(rows []Record, diag *Diagnostics) *Roster {
	roster := NewRoster()
	for i, rec := range rows {
		diag.SetRow(i + 1)
		roster.employees = append(roster.employees, NormalizeEmployee(rec, diag))
	}
	diag.SetRow(0)
	return roster
}
