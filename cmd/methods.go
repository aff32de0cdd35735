package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fundcalc/renderer"
	"github.com/google/subcommands"
)

type methodsCmd struct{}

func (*methodsCmd) Name() string     { return "methods" }
func (*methodsCmd) Synopsis() string { return "list the charge calculation methods" }
func (*methodsCmd) Usage() string {
	return `fundcalc methods

  Lists every charge calculation method with the parameters it requires.
`
}

func (*methodsCmd) SetFlags(f *flag.FlagSet) {}

func (*methodsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.MethodsMarkdown())
	return subcommands.ExitSuccess
}
