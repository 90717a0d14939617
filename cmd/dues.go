package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

type duesCmd struct {
	date string
}

func (*duesCmd) Name() string     { return "dues" }
func (*duesCmd) Synopsis() string { return "display per-employee payroll dues for the period" }
func (*duesCmd) Usage() string {
	return `fbk dues [-d <date>]

  Displays, for every employee, the monthly salary, what was paid through
  payroll-like expenses this period, and the remaining due.
`
}

func (p *duesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Evaluation date, driving the period (defaults to today).")
}

func (p *duesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := evalDate(p.date)
	if err != nil {
		return fail(err)
	}
	book, _, err := openBook()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DuesMarkdown(book.Summary(on)))
	return subcommands.ExitSuccess
}
