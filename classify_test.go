package finbook

import "testing"

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []Record
		wantKind DatasetKind
	}{
		{
			name: "roster with lowercase headers",
			rows: []Record{
				{"name": "Ada", "salary": "4000"},
				{"name": "Bob", "salary": "3000"},
			},
			wantKind: Employees,
		},
		{
			name: "roster with capitalized headers",
			rows: []Record{
				{"Name": "Ada", "Salary": "4000"},
			},
			wantKind: Employees,
		},
		{
			name: "transactions",
			rows: []Record{
				{"date": "2024-01-05", "amount": "100"},
			},
			wantKind: Transactions,
		},
		{
			name: "one row missing a salary breaks the roster shape",
			rows: []Record{
				{"name": "Ada", "salary": "4000"},
				{"name": "Bob", "salary": ""},
			},
			wantKind: Transactions,
		},
		{
			name:     "empty set is never a roster",
			rows:     nil,
			wantKind: Transactions,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.rows)
			if got.Kind != tc.wantKind {
				t.Errorf("Classify() kind = %v, want %v", got.Kind, tc.wantKind)
			}
		})
	}
}

func TestClassify_ReportsMatchedFields(t *testing.T) {
	got := Classify([]Record{{"Name": "Ada", "salary": "4000"}})
	if got.Kind != Employees {
		t.Fatalf("kind = %v, want employees", got.Kind)
	}
	if got.NameField != "Name" || got.SalaryField != "salary" {
		t.Errorf("matched fields = (%q, %q), want (Name, salary)", got.NameField, got.SalaryField)
	}
}

func TestClassify_AmbiguousTableIsMisclassified(t *testing.T) {
	// a transaction table that happens to carry name and salary columns is
	// read as a roster; callers needing certainty supply both tables
	rows := []Record{{"date": "2024-01-05", "amount": "100", "name": "Ada", "salary": "10"}}
	if got := Classify(rows); got.Kind != Employees {
		t.Errorf("kind = %v, want employees (documented heuristic limit)", got.Kind)
	}
}
