package finbook

// Dataset classification: when a single table is uploaded without an
// explicit second table, a heuristic decides whether it is an employee
// roster or a transaction ledger. The decision is returned as an explicit
// tagged value so callers (and tests) can see which fields drove it.

// DatasetKind tags the outcome of Classify.
type DatasetKind int

const (
	Transactions DatasetKind = iota
	Employees
)

func (k DatasetKind) String() string {
	switch k {
	case Employees:
		return "employees"
	default:
		return "transactions"
	}
}

// Classification is the result of sniffing a table's schema.
type Classification struct {
	Kind DatasetKind
	// NameField and SalaryField are the header spellings that satisfied the
	// roster heuristic; empty when Kind is Transactions.
	NameField   string
	SalaryField string
}

var (
	nameAliases   = []string{"name", "Name"}
	salaryAliases = []string{"salary", "Salary"}
)

// fieldCoveringAll returns the first alias for which every row has a
// non-empty value, or "".
func fieldCoveringAll(rows []Record, aliases []string) string {
	for _, alias := range aliases {
		covered := true
		for _, rec := range rows {
			if rec[alias] == "" {
				covered = false
				break
			}
		}
		if covered {
			return alias
		}
	}
	return ""
}

// Classify decides whether rows look like an employee roster: the set must
// be non-empty and every row must carry a non-empty name-like AND a
// non-empty salary-like value. This is a heuristic, not a guarantee:
// transactions that happen to also carry name and salary columns are
// misclassified, and callers needing certainty must supply both tables
// explicitly.
func Classify(rows []Record) Classification {
	if len(rows) == 0 {
		return Classification{Kind: Transactions}
	}
	nameField := fieldCoveringAll(rows, nameAliases)
	if nameField == "" {
		return Classification{Kind: Transactions}
	}
	salaryField := fieldCoveringAll(rows, salaryAliases)
	if salaryField == "" {
		return Classification{Kind: Transactions}
	}
	return Classification{Kind: Employees, NameField: nameField, SalaryField: salaryField}
}
