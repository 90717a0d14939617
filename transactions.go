package finbook

import (
	"github.com/shopspring/decimal"
)

// TxType is the direction of a transaction. Sign is carried only here,
// never by a negative amount.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType maps the raw type literals onto a canonical TxType.
// It reports ok=false for anything outside the recognized set; callers then
// infer the type from the amount's sign.
func ParseTxType(raw string) (TxType, bool) {
	switch raw {
	case "in", "income":
		return Income, true
	case "out", "expense":
		return Expense, true
	default:
		return "", false
	}
}

// Transaction is a canonical ledger record. It is immutable once created.
type Transaction struct {
	ID          string          `json:"id,omitempty"`
	Date        Date            `json:"date"` // zero when the date is unknown
	Type        TxType          `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // non-negative magnitude
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	EmployeeID  string          `json:"employeeId,omitempty"`
}

// Signed returns the transaction's contribution to a running total:
// +Amount for income, -Amount for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Employee is a canonical roster record.
type Employee struct {
	EmployeeID string          `json:"employeeId,omitempty"`
	Name       string          `json:"name,omitempty"`
	Role       string          `json:"role,omitempty"`
	Salary     decimal.Decimal `json:"salary"` // non-negative monthly rate
	Active     bool            `json:"active"`
}

// DisplayID is the key shown for the employee: its id, degrading to the
// name, and to "N/A" when neither is present.
func (e Employee) DisplayID() string {
	if e.EmployeeID != "" {
		return e.EmployeeID
	}
	if e.Name != "" {
		return e.Name
	}
	return "N/A"
}

// DisplayName is the name shown for the employee, synthesized from the id
// when the roster carried none.
func (e Employee) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return "Employee " + e.EmployeeID
}
