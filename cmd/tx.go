package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	head int
	all  bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, most recent first" }
func (*txCmd) Usage() string {
	return `fbk tx [-n <count>] [-all]

  Lists transactions sorted most recent first. Entries without a usable
  date sort last.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "n", 20, "Number of transactions to list.")
	f.BoolVar(&p.all, "all", false, "List every transaction.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := openBook()
	if err != nil {
		return fail(err)
	}
	transactions := book.Ledger.Recent()
	if !p.all && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	printMarkdown(renderer.Transactions(transactions, book.Currency))
	return subcommands.ExitSuccess
}
