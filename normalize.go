package finbook

import "strings"

// Record normalization: maps arbitrary header spellings onto the two
// canonical record shapes. Aliasing is first-match-wins over the listed
// spellings; missing fields degrade to their documented defaults.

// pick returns the first non-empty value among the aliased keys.
func pick(rec Record, aliases ...string) string {
	for _, key := range aliases {
		if v := rec[key]; v != "" {
			return v
		}
	}
	return ""
}

// NormalizeTransaction builds a canonical Transaction from a raw row.
//
// Date comes from date/Date/timestamp/Timestamp, amount from amount/Amount
// through ParseAmount, category from category/Category (left empty here;
// "Uncategorized" is an aggregation-time default), description from
// description/Details/Description and the employee link from
// employeeId/EmployeeID/employee.
//
// If the lower-cased type literal is not one of in/income/out/expense, the
// type is inferred from the coerced amount's sign (non-negative means
// income) and the amount is replaced with its absolute value. A negative
// amount with no explicit type therefore becomes a positive-magnitude
// expense.
func NormalizeTransaction(rec Record, diag *Diagnostics) Transaction {
	rawDate := pick(rec, "date", "Date", "timestamp", "Timestamp")
	rawType := strings.ToLower(pick(rec, "type", "Type"))
	rawAmount := pick(rec, "amount", "Amount")

	day, ok := ParseFlexDate(rawDate)
	if !ok && rawDate != "" {
		diag.note("date", "unparseable date %q, record excluded from date-keyed views", rawDate)
	}

	amount := ParseAmount(rawAmount)
	// a coerced zero is indistinguishable from a genuine zero downstream,
	// so only digit-free raw text is reported
	if rawAmount != "" && amount.IsZero() && !strings.ContainsAny(rawAmount, "0123456789") {
		diag.note("amount", "unparseable amount %q coerced to 0", rawAmount)
	}

	txType, ok := ParseTxType(rawType)
	if !ok {
		if rawType != "" {
			diag.note("type", "unrecognized type %q, inferred from amount sign", rawType)
		}
		if amount.Sign() >= 0 {
			txType = Income
		} else {
			txType = Expense
		}
		amount = amount.Abs()
	}

	return Transaction{
		Date:        day,
		Type:        txType,
		Amount:      amount,
		Category:    pick(rec, "category", "Category"),
		Description: pick(rec, "description", "Details", "Description"),
		EmployeeID:  strings.TrimSpace(pick(rec, "employeeId", "EmployeeID", "employee")),
	}
}

// NormalizeEmployee builds a canonical Employee from a raw row.
//
// Id comes from employeeId/EmployeeID/id/ID, name from name/Name, role from
// role/Role and salary from salary/Salary/monthlySalary through
// ParseAmount. The active flag accepts true/active/1/yes and
// false/inactive/0/no case-insensitively; anything else, including an
// absent value, defaults the record to active.
func NormalizeEmployee(rec Record, diag *Diagnostics) Employee {
	rawSalary := pick(rec, "salary", "Salary", "monthlySalary")
	salary := ParseAmount(rawSalary)
	if rawSalary != "" && !strings.ContainsAny(rawSalary, "0123456789") {
		diag.note("salary", "unparseable salary %q coerced to 0", rawSalary)
	}

	rawActive := pick(rec, "active", "Active", "status", "Status")
	active := true
	if rawActive != "" {
		var recognized bool
		active, recognized = ParseActive(rawActive)
		if !recognized {
			diag.note("active", "unrecognized literal %q, defaulting to active", rawActive)
		}
	}

	return Employee{
		EmployeeID: strings.TrimSpace(pick(rec, "employeeId", "EmployeeID", "id", "ID")),
		Name:       pick(rec, "name", "Name"),
		Role:       pick(rec, "role", "Role"),
		Salary:     salary,
		Active:     active,
	}
}
