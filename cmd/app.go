// Package cmd implements the CLI application to manage a financial book.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/finbook/finbook"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "data")
	c.Register(&addCmd{}, "data")
	c.Register(&currencyCmd{}, "data")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&duesCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookDir = flag.String("book-dir", "", "Path to the book directory (overrides FINBOOK_DIR)")

// envSettings are the environment defaults, loaded from the process
// environment and an optional .env file.
type envSettings struct {
	Dir      string `envconfig:"DIR" default:".finbook"`
	Currency string `envconfig:"CURRENCY"`
}

func loadSettings() envSettings {
	_ = godotenv.Load() // a missing .env file is fine
	var cfg envSettings
	if err := envconfig.Process("finbook", &cfg); err != nil {
		log.Println("warning, cannot read environment settings:", err)
		cfg = envSettings{Dir: ".finbook"}
	}
	return cfg
}

// openBook loads the persisted book from the configured store. A missing
// store yields an empty book, so every command works on a fresh directory.
func openBook() (*finbook.Book, finbook.Store, error) {
	cfg := loadSettings()
	dir := *bookDir
	if dir == "" {
		dir = cfg.Dir
	}
	store := finbook.NewDirStore(dir)
	book, err := finbook.LoadBook(store)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load book from %q: %w", dir, err)
	}
	if _, ok, _ := store.Load(finbook.KeyCurrency); !ok && cfg.Currency != "" {
		book.Currency = cfg.Currency
	}
	return book, store, nil
}

// evalDate resolves the -d flag of report commands, defaulting to today.
func evalDate(flagValue string) (finbook.Date, error) {
	if flagValue == "" {
		return finbook.Today(), nil
	}
	return finbook.ParseDate(flagValue)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the terminal renderer is unavailable.
func printMarkdown(md string) {
	out, err := glamour.RenderWithEnvironmentConfig(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and maps it onto an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
