package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/vfg2006/sales-ledger-api/internal/session"
)

// firstArg devolve o argumento posicional obrigatório do comando
func firstArg(e *env, f *flag.FlagSet, what string) (string, bool) {
	if f.NArg() != 1 {
		fmt.Fprintf(e.errOut, "Error: expected exactly one %s.\n", what)
		return "", false
	}
	return f.Arg(0), true
}

type branchSalesCmd struct{}

func (*branchSalesCmd) Name() string           { return "branch-sales" }
func (*branchSalesCmd) Synopsis() string       { return "monthly sales analysis of one branch" }
func (*branchSalesCmd) Usage() string          { return "branch-sales <branch-id>\n" }
func (*branchSalesCmd) SetFlags(*flag.FlagSet) {}

func (*branchSalesCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	id, ok := firstArg(e, f, "Branch ID")
	if !ok {
		return subcommands.ExitUsageError
	}
	return e.dispatch(ctx, session.BranchSalesAnalysis{BranchID: id})
}

type productPriceCmd struct{}

func (*productPriceCmd) Name() string           { return "product-price" }
func (*productPriceCmd) Synopsis() string       { return "price analysis of one product" }
func (*productPriceCmd) Usage() string          { return "product-price <product-id>\n" }
func (*productPriceCmd) SetFlags(*flag.FlagSet) {}

func (*productPriceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	id, ok := firstArg(e, f, "Product ID")
	if !ok {
		return subcommands.ExitUsageError
	}
	return e.dispatch(ctx, session.ProductPriceAnalysis{ProductID: id})
}

type weeklyCmd struct {
	date string
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "weekly sales analysis of the whole network" }
func (*weeklyCmd) Usage() string {
	return `weekly [-date YYYY-MM-DD]

  Analyses the Monday to Sunday week containing -date (default: today).
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Any day of the week to analyse, YYYY-MM-DD")
}

func (c *weeklyCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	action, err := session.ParseSelection("5", c.date, session.Payload{})
	if err != nil {
		fmt.Fprintf(e.errOut, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return e.dispatch(ctx, action)
}

type totalCmd struct{}

func (*totalCmd) Name() string           { return "total" }
func (*totalCmd) Synopsis() string       { return "total of all sales amounts" }
func (*totalCmd) Usage() string          { return "total\n" }
func (*totalCmd) SetFlags(*flag.FlagSet) {}

func (*totalCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return envFrom(args).dispatch(ctx, session.TotalSalesAnalysis{})
}

type allBranchesCmd struct{}

func (*allBranchesCmd) Name() string           { return "all-branches" }
func (*allBranchesCmd) Synopsis() string       { return "sales totals of every branch" }
func (*allBranchesCmd) Usage() string          { return "all-branches\n" }
func (*allBranchesCmd) SetFlags(*flag.FlagSet) {}

func (*allBranchesCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return envFrom(args).dispatch(ctx, session.AllBranchesSalesAnalysis{})
}
