package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finbook/finbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, active only when invoked by the shell's completion
	// hook. Install with: COMP_INSTALL=1 fbk
	complete.Complete("fbk", &complete.Command{
		Flags: map[string]complete.Predictor{
			"book-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"import": {Flags: map[string]complete.Predictor{
				"tx":  predict.Files("*.csv"),
				"emp": predict.Files("*.csv"),
			}},
			"add":      {},
			"currency": {},
			"summary":  {},
			"monthly":  {},
			"dues":     {},
			"tx":       {},
			"chart":    {Flags: map[string]complete.Predictor{"o": predict.Files("*.png")}},
			"topic":    {Args: predict.Set{"readme", "formats", "classification", "dues", "*"}},
		},
	})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
