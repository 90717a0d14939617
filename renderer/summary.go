// Package renderer turns derived views into markdown for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the balance, totals and category ledger.
func SummaryMarkdown(r *finbook.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Book Summary on %s", r.Date))

	doc.Table(md.TableSet{
		Header: []string{md.Bold("Balance"), md.Bold(r.Balance.String())},
		Rows: [][]string{
			{"Total Income", r.IncomeTotal.String()},
			{"Total Expense", r.ExpenseTotal.String()},
		},
	})

	if len(r.Categories) > 0 {
		doc.H2("By Category")
		table := md.TableSet{Header: []string{"Category", "Total"}}
		for _, c := range r.Categories {
			table.Rows = append(table.Rows, []string{c.Category, c.Total.SignedString()})
		}
		doc.Table(table)
	}

	return doc.String()
}

// MonthlyMarkdown renders the monthly income/expense rollup, ascending by
// period key.
func MonthlyMarkdown(r *finbook.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Rollup")
	if len(r.Monthly) == 0 {
		doc.PlainText("No dated transactions yet.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Month", "In", "Out"}}
	for _, flow := range r.Monthly {
		table.Rows = append(table.Rows, []string{flow.Month, flow.In.String(), flow.Out.String()})
	}
	doc.Table(table)

	return doc.String()
}

// DuesMarkdown renders the per-employee payroll dues for the report's
// period.
func DuesMarkdown(r *finbook.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Payroll Dues for %s", r.Date.MonthKey()))
	if len(r.Dues) == 0 {
		doc.PlainText("No employees on the roster.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Employee", "Role", "Salary", "Paid", "Due", "Status"}}
	for _, due := range r.Dues {
		status := "active"
		if !due.Active {
			status = "inactive"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%s (%s)", due.Name, due.ID),
			due.Role,
			due.Salary.String(),
			due.Paid.String(),
			due.Due.String(),
			status,
		})
	}
	doc.Table(table)

	return doc.String()
}
