package finbook

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategory labels transactions whose category is empty, at
// aggregation time only; the stored record keeps its empty string.
const DefaultCategory = "Uncategorized"

// TrailingMonths is the fixed size of the charting window.
const TrailingMonths = 6

// payrollMarkers flag a payroll-like category: one whose lower-cased text
// contains any of them.
var payrollMarkers = []string{"salary", "payroll", "wage"}

// IsPayrollCategory reports whether the category is payroll-like.
func IsPayrollCategory(category string) bool {
	c := strings.ToLower(category)
	for _, marker := range payrollMarkers {
		if strings.Contains(c, marker) {
			return true
		}
	}
	return false
}

// CategoryTotal is a category's signed running total: income contributes
// +amount, expense contributes -amount.
type CategoryTotal struct {
	Category string
	Total    Money
}

// MonthlyFlow is one month's income and expense sums.
type MonthlyFlow struct {
	Month string // period key, "YYYY-MM"
	In    Money
	Out   Money
}

// EmployeeDue is the unpaid remainder of an employee's monthly salary after
// subtracting the payroll-like expenses linked to them this period.
type EmployeeDue struct {
	ID     string // display key: id, degrading to name, then "N/A"
	Name   string
	Role   string
	Active bool
	Salary Money
	Paid   Money
	Due    Money // max(0, Salary-Paid), never negative
}

// Report is the full set of derived views. It is never persisted: it is
// recomputed wholesale from the current collections on every change.
type Report struct {
	Date         Date   // the evaluation instant, driving the dues period
	Currency     string // reporting currency code for all Money fields
	Balance      Money
	IncomeTotal  Money
	ExpenseTotal Money
	Categories   []CategoryTotal // first-seen category order
	Monthly      []MonthlyFlow   // ascending by period key
	Window       []MonthlyFlow   // trailing TrailingMonths months ending at Date
	Dues         []EmployeeDue   // roster order
}

// Summarize derives every view from the current collections. It is a pure
// function: deterministic given the same collections, evaluation date and
// currency, with no hidden state and no errors. A nil ledger or roster is
// treated as empty.
func Summarize(ledger *Ledger, roster *Roster, on Date, currency string) *Report {
	if ledger == nil {
		ledger = NewLedger()
	}
	if roster == nil {
		roster = NewRoster()
	}

	report := &Report{Date: on, Currency: currency}

	income := decimal.Zero
	expense := decimal.Zero
	categoryIndex := make(map[string]int)
	monthly := make(map[string]*MonthlyFlow)
	paid := make(map[string]decimal.Decimal)
	periodKey := on.MonthKey()

	for tx := range ledger.Transactions() {
		if tx.Type == Income {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}

		category := tx.Category
		if category == "" {
			category = DefaultCategory
		}
		i, ok := categoryIndex[category]
		if !ok {
			i = len(report.Categories)
			categoryIndex[category] = i
			report.Categories = append(report.Categories, CategoryTotal{Category: category})
		}
		report.Categories[i].Total = report.Categories[i].Total.Add(M(tx.Signed(), currency))

		if tx.Date.IsZero() {
			continue // unknown date: counted above, excluded from date-keyed views
		}
		key := tx.Date.MonthKey()
		flow, ok := monthly[key]
		if !ok {
			flow = &MonthlyFlow{Month: key, In: M(0, currency), Out: M(0, currency)}
			monthly[key] = flow
		}
		if tx.Type == Income {
			flow.In = flow.In.Add(M(tx.Amount, currency))
		} else {
			flow.Out = flow.Out.Add(M(tx.Amount, currency))
		}

		if key == periodKey && tx.Type == Expense && tx.EmployeeID != "" && IsPayrollCategory(tx.Category) {
			paid[tx.EmployeeID] = paid[tx.EmployeeID].Add(tx.Amount)
		}
	}

	report.IncomeTotal = M(income, currency)
	report.ExpenseTotal = M(expense, currency)
	report.Balance = M(income.Sub(expense), currency)

	for _, flow := range monthly {
		report.Monthly = append(report.Monthly, *flow)
	}
	sort.Slice(report.Monthly, func(i, j int) bool {
		return report.Monthly[i].Month < report.Monthly[j].Month
	})

	report.Window = trailingWindow(monthly, on, currency)

	for e := range roster.Employees() {
		paidAmount := paid[e.EmployeeID]
		if e.EmployeeID == "" {
			// no resolvable id: the employee cannot be matched against
			// payroll transactions, dues stay at full salary
			paidAmount = decimal.Zero
		}
		due := e.Salary.Sub(paidAmount)
		if due.IsNegative() {
			due = decimal.Zero
		}
		report.Dues = append(report.Dues, EmployeeDue{
			ID:     e.DisplayID(),
			Name:   e.DisplayName(),
			Role:   e.Role,
			Active: e.Active,
			Salary: M(e.Salary, currency),
			Paid:   M(paidAmount, currency),
			Due:    M(due, currency),
		})
	}

	return report
}

// trailingWindow produces the fixed window of the last TrailingMonths
// months ending at on's month, inclusive. Months with no transactions
// report zero in and out.
func trailingWindow(monthly map[string]*MonthlyFlow, on Date, currency string) []MonthlyFlow {
	window := make([]MonthlyFlow, 0, TrailingMonths)
	first := on.StartOfMonth()
	for i := TrailingMonths - 1; i >= 0; i-- {
		key := first.AddMonth(-i).MonthKey()
		if flow, ok := monthly[key]; ok {
			window = append(window, *flow)
			continue
		}
		window = append(window, MonthlyFlow{Month: key, In: M(0, currency), Out: M(0, currency)})
	}
	return window
}
