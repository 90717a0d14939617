package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// useTempBook points the global -book-dir at a temporary directory for the
// duration of a test.
func useTempBook(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := bookDir
	bookDir = &dir
	t.Cleanup(func() { bookDir = old })
	return dir
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestImportBothFiles(t *testing.T) {
	dir := useTempBook(t)

	txFile := writeTempFile(t, t.TempDir(), "transactions.csv",
		"date,type,amount,category\n2024-01-05,in,1000,Sales\n2024-01-10,out,200,Rent\n")
	empFile := writeTempFile(t, t.TempDir(), "employees.csv",
		"employeeId,name,salary\nE1,Ada,1000\n")

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	cmd.txFile = txFile
	cmd.empFile = empFile
	cmd.currency = "EUR"

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	book, err := finbook.LoadBook(finbook.NewDirStore(dir))
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if book.Ledger.Len() != 2 {
		t.Errorf("Ledger.Len() = %d, want 2", book.Ledger.Len())
	}
	if book.Roster.Len() != 1 {
		t.Errorf("Roster.Len() = %d, want 1", book.Roster.Len())
	}
	if book.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", book.Currency)
	}
}

func TestImportSingleFileClassifiesRoster(t *testing.T) {
	dir := useTempBook(t)

	txFile := writeTempFile(t, t.TempDir(), "upload.csv",
		"employeeId,name,salary\nE1,Ada,1000\nE2,Grace,1200\n")

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	cmd.txFile = txFile

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	book, err := finbook.LoadBook(finbook.NewDirStore(dir))
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if book.Ledger.Len() != 0 {
		t.Errorf("Ledger.Len() = %d, want 0", book.Ledger.Len())
	}
	if book.Roster.Len() != 2 {
		t.Errorf("Roster.Len() = %d, want 2", book.Roster.Len())
	}
}

func TestImportWithoutArguments(t *testing.T) {
	useTempBook(t)

	cmd := &importCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError, got %v", status)
	}
}

func TestAddPrependsEntry(t *testing.T) {
	dir := useTempBook(t)

	first := &addCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	first.SetFlags(f)
	first.date = "2024-01-05"
	first.txType = "in"
	first.amount = "1000"
	first.category = "Sales"
	if status := first.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	second := &addCmd{}
	f = flag.NewFlagSet("test", flag.ContinueOnError)
	second.SetFlags(f)
	second.date = "31/01/2024"
	second.amount = "-400"
	second.category = "Payroll"
	second.employeeID = "E1"
	if status := second.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	book, err := finbook.LoadBook(finbook.NewDirStore(dir))
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if book.Ledger.Len() != 2 {
		t.Fatalf("Ledger.Len() = %d, want 2", book.Ledger.Len())
	}

	var head finbook.Transaction
	for tx := range book.Ledger.Transactions() {
		head = tx
		break
	}
	if head.Type != finbook.Expense {
		t.Errorf("head.Type = %q, want expense (inferred from the negative amount)", head.Type)
	}
	if got := head.Date.String(); got != "2024-01-31" {
		t.Errorf("head.Date = %q, want 2024-01-31", got)
	}
	if head.EmployeeID != "E1" {
		t.Errorf("head.EmployeeID = %q, want E1", head.EmployeeID)
	}
}

func TestCurrencySetAndShow(t *testing.T) {
	dir := useTempBook(t)

	cmd := &currencyCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{"chf"}); err != nil {
		t.Fatal(err)
	}
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	book, err := finbook.LoadBook(finbook.NewDirStore(dir))
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if book.Currency != "CHF" {
		t.Errorf("Currency = %q, want CHF (uppercased)", book.Currency)
	}
}

func TestEvalDate(t *testing.T) {
	on, err := evalDate("2024-02-10")
	if err != nil {
		t.Fatalf("evalDate: %v", err)
	}
	if got := on.String(); got != "2024-02-10" {
		t.Errorf("evalDate = %q, want 2024-02-10", got)
	}

	today, err := evalDate("")
	if err != nil {
		t.Fatalf("evalDate(\"\"): %v", err)
	}
	if today.IsZero() {
		t.Error("evalDate(\"\") returned the zero date, want today")
	}
}
