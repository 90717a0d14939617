package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct {
	date string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly income/expense rollup" }
func (*monthlyCmd) Usage() string {
	return `fbk monthly [-d <date>]

  Displays income and expense sums per calendar month, ascending. Only
  transactions with a resolvable date are counted.
`
}

func (p *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Evaluation date (defaults to today).")
}

func (p *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := evalDate(p.date)
	if err != nil {
		return fail(err)
	}
	book, _, err := openBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.MonthlyMarkdown(book.Summary(on)))
	return subcommands.ExitSuccess
}
