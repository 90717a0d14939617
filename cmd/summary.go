package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display balance, totals and category ledger" }
func (*summaryCmd) Usage() string {
	return `fbk summary [-d <date>]

  Displays the running balance, the income and expense totals, and the
  signed per-category ledger.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Evaluation date (defaults to today).")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := evalDate(p.date)
	if err != nil {
		return fail(err)
	}
	book, _, err := openBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(book.Summary(on)))
	return subcommands.ExitSuccess
}
