package renderer

import (
	"bytes"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// Transactions renders a transaction listing as a markdown table, in the
// order given.
func Transactions(transactions []finbook.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(transactions) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{Header: []string{"Date", "Type", "Amount", "Category", "Description", "Employee"}}
	for _, tx := range transactions {
		day := tx.Date.String()
		if day == "" {
			day = "unknown"
		}
		amount := finbook.M(tx.Amount, currency).String()
		if tx.Type == finbook.Expense {
			amount = "-" + amount
		} else {
			amount = "+" + amount
		}
		table.Rows = append(table.Rows, []string{
			day,
			string(tx.Type),
			amount,
			orDash(tx.Category),
			orDash(tx.Description),
			orDash(tx.EmployeeID),
		})
	}
	doc.Table(table)

	return doc.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
