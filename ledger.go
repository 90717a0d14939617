package finbook

import (
	"iter"
	"slices"
)

// Ledger represents the transaction collection.
//
// New entries are prepended, so the stored order is newest-first for manual
// entries while bulk uploads keep their file order. Entries are never
// individually edited or deleted; the collection is replaced or appended-to
// and persisted in its entirety.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(transactions ...Transaction) *Ledger {
	return &Ledger{transactions: transactions}
}

// Prepend inserts a transaction at the head of the ledger.
func (l *Ledger) Prepend(tx Transaction) {
	l.transactions = append([]Transaction{tx}, l.transactions...)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions iterates over transactions in stored order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return slices.Values(l.transactions)
}

// Recent returns the transactions sorted most recent first, with undated
// entries last. The ledger itself is left untouched.
func (l *Ledger) Recent() []Transaction {
	sorted := slices.Clone(l.transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		switch {
		case a.Date == b.Date:
			return 0
		case a.Date.IsZero():
			return 1
		case b.Date.IsZero():
			return -1
		case a.Date.After(b.Date):
			return -1
		default:
			return 1
		}
	})
	return sorted
}

// Roster represents the employee collection. It is created only via bulk
// upload; there is no incremental single-employee creation.
type Roster struct {
	employees []Employee
}

// NewRoster creates a roster from the given employees.
func NewRoster(employees ...Employee) *Roster {
	return &Roster{employees: employees}
}

// Len returns the number of employees.
func (r *Roster) Len() int { return len(r.employees) }

// Employees iterates over employees in roster order.
func (r *Roster) Employees() iter.Seq[Employee] {
	return slices.Values(r.employees)
}
