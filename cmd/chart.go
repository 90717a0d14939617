package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook/charts"
	"github.com/google/subcommands"
)

type chartCmd struct {
	date   string
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the trailing-window cash flow chart as a PNG" }
func (*chartCmd) Usage() string {
	return `fbk chart [-d <date>] [-o <file>]

  Renders income and expenses over the trailing six months as a PNG image.
`
}

func (p *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Evaluation date, driving the window (defaults to today).")
	f.StringVar(&p.output, "o", "flows.png", "Output file.")
}

func (p *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := evalDate(p.date)
	if err != nil {
		return fail(err)
	}
	book, _, err := openBook()
	if err != nil {
		return fail(err)
	}
	png, err := charts.TrailingWindowPNG(book.Summary(on))
	if err != nil {
		return fail(fmt.Errorf("rendering chart: %w", err))
	}
	if err := os.WriteFile(p.output, png, 0644); err != nil {
		return fail(fmt.Errorf("writing %q: %w", p.output, err))
	}
	fmt.Printf("Wrote %s\n", p.output)
	return subcommands.ExitSuccess
}
