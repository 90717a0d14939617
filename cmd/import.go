package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type importCmd struct {
	txFile   string
	empFile  string
	currency string
	verbose  bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions and employees from delimited text files" }
func (*importCmd) Usage() string {
	return `fbk import [-tx <transactions.csv>] [-emp <employees.csv>] [-c <currency>]

  Parses the given files and replaces the matching collections of the book.
  With only -tx, the table's shape decides whether it is a transaction
  ledger or an employee roster (see 'fbk topic classification'). The -emp
  file is always read as a roster. Rows are never rejected: unparseable
  fields degrade to documented defaults, reported with -v.

Usage Examples:
# Import both files and set the currency preference.
$ fbk import -tx transactions.csv -emp employees.csv -c EUR

# Let the classifier decide what a single file is.
$ fbk import -tx upload.csv
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.txFile, "tx", "", "Transactions file (or a single file to classify).")
	f.StringVar(&p.empFile, "emp", "", "Employees file, always read as a roster.")
	f.StringVar(&p.currency, "c", "", "Currency preference to persist (e.g. USD, EUR).")
	f.BoolVar(&p.verbose, "v", false, "Report every field that was defaulted during normalization.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.txFile == "" && p.empFile == "" && p.currency == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to import, give -tx, -emp or -c.")
		return subcommands.ExitUsageError
	}

	// read every requested blob before any parsing starts
	txText, err := readFile(p.txFile)
	if err != nil {
		return fail(err)
	}
	empText, err := readFile(p.empFile)
	if err != nil {
		return fail(err)
	}

	book, store, err := openBook()
	if err != nil {
		return fail(err)
	}

	var diag finbook.Diagnostics
	ledger, roster := finbook.ImportTables(txText, empText, &diag)
	if ledger != nil {
		book.Ledger = ledger
	}
	if roster != nil {
		book.Roster = roster
	}
	if p.currency != "" {
		book.Currency = p.currency
	}

	if err := book.Save(store); err != nil {
		return fail(err)
	}

	if p.verbose {
		for _, note := range diag.Notes() {
			fmt.Fprintln(os.Stderr, note)
		}
	}
	fmt.Printf("Imported %d transactions and %d employees (%d fields defaulted).\n",
		book.Ledger.Len(), book.Roster.Len(), len(diag.Notes()))
	return subcommands.ExitSuccess
}

// readFile resolves a file into text; an empty name resolves to no text.
func readFile(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("cannot read %q: %w", name, err)
	}
	return string(data), nil
}
