// Command ledger executa as operações do ledger de vendas pela linha de comando.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/vfg2006/sales-ledger-api/internal/app"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

var (
	username = flag.String("u", "", "Username")
	password = flag.String("p", "", "Password")
	asJSON   = flag.Bool("json", false, "Print results as indented JSON")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	register(commander)

	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	if err := log.Setup(cfg.App.LogLevel, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	e := newEnv(application, os.Stdout, os.Stderr)
	e.username, e.password, e.json = *username, *password, *asJSON

	status := commander.Execute(ctx, e)
	application.Close()
	os.Exit(int(status))
}

func register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&addBranchCmd{}, "records")
	c.Register(&addProductCmd{}, "records")
	c.Register(&addSaleCmd{}, "records")

	c.Register(&branchSalesCmd{}, "analysis")
	c.Register(&productPriceCmd{}, "analysis")
	c.Register(&weeklyCmd{}, "analysis")
	c.Register(&totalCmd{}, "analysis")
	c.Register(&allBranchesCmd{}, "analysis")

	c.Register(&menuCmd{}, "session")

	c.Register(&importCmd{}, "operations")
}
