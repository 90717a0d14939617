package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type addCmd struct {
	date        string
	txType      string
	amount      string
	category    string
	description string
	employeeID  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a single transaction to the ledger" }
func (*addCmd) Usage() string {
	return `fbk add -d <date> -a <amount> [-t in|out] [-cat <category>] [-desc <text>] [-e <employeeId>]

  Adds one transaction through the same normalization as bulk imports and
  prepends it to the ledger. Without -t, the type is inferred from the
  amount's sign.

Usage Examples:
$ fbk add -d 2024-01-05 -t in -a 1000 -cat Sales
$ fbk add -d 2024-01-31 -a -400 -cat Payroll -e E1
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Transaction date.")
	f.StringVar(&p.txType, "t", "", "Type: in or out (inferred from the amount's sign when omitted).")
	f.StringVar(&p.amount, "a", "", "Amount; symbols and separators are tolerated.")
	f.StringVar(&p.category, "cat", "", "Free-text category, e.g. Sales, Salary, Rent.")
	f.StringVar(&p.description, "desc", "", "Free-text description.")
	f.StringVar(&p.employeeID, "e", "", "Employee id, linking the entry for payroll dues.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := openBook()
	if err != nil {
		return fail(err)
	}

	var diag finbook.Diagnostics
	entry := finbook.NewEntry(finbook.Record{
		"date":        p.date,
		"type":        p.txType,
		"amount":      p.amount,
		"category":    p.category,
		"description": p.description,
		"employeeId":  p.employeeID,
	}, &diag)

	book.Ledger.Prepend(entry)
	if err := book.Save(store); err != nil {
		return fail(err)
	}

	for _, note := range diag.Notes() {
		fmt.Println("note:", note)
	}
	amount := finbook.M(entry.Amount, book.Currency)
	fmt.Printf("Added %s %s in %q.\n", entry.Type, amount, entry.Category)
	return subcommands.ExitSuccess
}
