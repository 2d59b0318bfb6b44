package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/vfg2006/sales-ledger-api/infrastructure/csvstore"
	"github.com/vfg2006/sales-ledger-api/infrastructure/records"
)

// importCmd copia uma pasta de CSVs para o armazenamento configurado.
// É ferramenta de operação e não passa pelo login.
type importCmd struct {
	dir         string
	collections string
}

func (*importCmd) Name() string     { return "import-csv" }
func (*importCmd) Synopsis() string { return "copy CSV collections into the configured store" }
func (*importCmd) Usage() string {
	return `import-csv -dir <folder> [-collections users,branches,products,sales]

  Replaces each collection of the configured store (STORE_DRIVER) with the
  rows read from <folder>/<collection>.csv. Missing files import as empty.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "Folder with the CSV files (required)")
	f.StringVar(&c.collections, "collections", "", "Comma separated collections (default: all)")
}

func (c *importCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envFrom(args)

	if c.dir == "" {
		fmt.Fprintln(e.errOut, "Error: -dir is required.")
		return subcommands.ExitUsageError
	}

	src, err := csvstore.New(c.dir)
	if err != nil {
		fmt.Fprintf(e.errOut, "Error opening %q: %v\n", c.dir, err)
		return subcommands.ExitFailure
	}

	var collections []records.Collection
	if c.collections != "" {
		for _, name := range strings.Split(c.collections, ",") {
			collections = append(collections, records.Collection(strings.TrimSpace(name)))
		}
	}

	copied, err := records.Copy(ctx, src, e.app.Store, collections...)
	if err != nil {
		fmt.Fprintf(e.errOut, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, col := range records.All() {
		if n, ok := copied[col]; ok {
			fmt.Fprintf(e.out, "%s: %d rows\n", col, n)
		}
	}
	return subcommands.ExitSuccess
}
