package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or set the reporting currency" }
func (*currencyCmd) Usage() string {
	return `fbk currency [<code>]

  Without argument, prints the current reporting currency. With an ISO 4217
  code, persists it as the new preference.
`
}

func (p *currencyCmd) SetFlags(f *flag.FlagSet) {}

func (p *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, store, err := openBook()
	if err != nil {
		return fail(err)
	}
	if f.NArg() == 0 {
		fmt.Println(book.Currency)
		return subcommands.ExitSuccess
	}
	code := strings.ToUpper(strings.TrimSpace(f.Arg(0)))
	if code == "" {
		return fail(fmt.Errorf("empty currency code"))
	}
	book.Currency = code
	if err := book.Save(store); err != nil {
		return fail(err)
	}
	fmt.Println("Currency set to", code)
	return subcommands.ExitSuccess
}
