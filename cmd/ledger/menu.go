package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/vfg2006/sales-ledger-api/internal/session"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run a main menu selection" }
func (*menuCmd) Usage() string {
	var b strings.Builder
	b.WriteString("menu [<selection> [<param>]]\n\n  Without arguments lists the options. Options 1 and 2 need add-branch and add-sale.\n\n")
	for _, item := range session.Menu() {
		fmt.Fprintf(&b, "  %s. %s\n", item.Selection, item.Label)
	}
	return b.String()
}
func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)

	if f.NArg() == 0 {
		for _, item := range session.Menu() {
			fmt.Fprintf(e.out, "%s. %s\n", item.Selection, item.Label)
		}
		return subcommands.ExitSuccess
	}

	action, err := session.ParseSelection(f.Arg(0), f.Arg(1), session.Payload{})
	if err != nil {
		fmt.Fprintf(e.errOut, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return e.dispatch(ctx, action)
}
