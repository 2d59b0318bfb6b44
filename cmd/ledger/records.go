package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/session"
)

type addBranchCmd struct {
	id       string
	name     string
	location string
}

func (*addBranchCmd) Name() string     { return "add-branch" }
func (*addBranchCmd) Synopsis() string { return "add a new branch" }
func (*addBranchCmd) Usage() string {
	return `add-branch -name <name> -location <location> [-id <id>]

  Appends a branch. Without -id a random 6 character ID is generated.
`
}

func (c *addBranchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Branch ID (generated when empty)")
	f.StringVar(&c.name, "name", "", "Branch name (required)")
	f.StringVar(&c.location, "location", "", "Branch location (required)")
}

func (c *addBranchCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return envFrom(args).dispatch(ctx, session.AddBranch{
		Branch: domain.Branch{ID: c.id, Name: c.name, Location: c.location},
	})
}

type addProductCmd struct {
	id   string
	name string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "add a new product" }
func (*addProductCmd) Usage() string {
	return `add-product -name <name> [-id <id>]
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Product ID (generated when empty)")
	f.StringVar(&c.name, "name", "", "Product name (required)")
}

func (c *addProductCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)
	if status := e.login(ctx); status != subcommands.ExitSuccess {
		return status
	}

	product, err := e.app.Recorder.AddProduct(ctx, domain.Product{ID: c.id, Name: c.name})
	if err != nil {
		fmt.Fprintf(e.errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return e.print("Product "+product.Name+" added successfully.", product)
}

type addSaleCmd struct {
	branchID  string
	productID string
	amount    string
	date      string
}

func (*addSaleCmd) Name() string     { return "add-sale" }
func (*addSaleCmd) Synopsis() string { return "record a sale" }
func (*addSaleCmd) Usage() string {
	return `add-sale -branch <id> -product <id> -amount <amount> [-date YYYY-MM-DD]

  Appends a sale. Without -date the current day is used.
`
}

func (c *addSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.branchID, "branch", "", "Branch ID (required)")
	f.StringVar(&c.productID, "product", "", "Product ID (required)")
	f.StringVar(&c.amount, "amount", "", "Amount sold (required)")
	f.StringVar(&c.date, "date", "", "Sale date, YYYY-MM-DD")
}

func (c *addSaleCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return envFrom(args).dispatch(ctx, session.AddSale{
		Sale: domain.Sale{BranchID: c.branchID, ProductID: c.productID, Amount: c.amount, Date: c.date},
	})
}
