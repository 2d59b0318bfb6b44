package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/internal/app"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

type cli struct {
	env    *env
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{}
	cfg.Store.Driver = config.StoreCSV
	cfg.Store.DataDir = t.TempDir()
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.TokenTTL = time.Hour
	cfg.Ledger.JoinPolicy = "strict"
	cfg.Ledger.Currency = "LKR"
	cfg.Ledger.HistogramBins = 10

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	_, err = a.Authenticator.CreateUser(context.Background(), "admin", "secret123")
	require.NoError(t, err)

	c := &cli{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	c.env = newEnv(a, c.out, c.errOut)
	c.env.username, c.env.password = "admin", "secret123"
	return c
}

func (c *cli) run(args ...string) subcommands.ExitStatus {
	c.out.Reset()
	c.errOut.Reset()

	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "ledger")
	commander.Output = c.out
	commander.Error = c.errOut
	register(commander)

	if err := fs.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return commander.Execute(context.Background(), c.env)
}

func TestCommands(t *testing.T) {
	c := newCLI(t)

	require.Equal(t, subcommands.ExitSuccess, c.run("add-branch", "-id", "1", "-name", "Colombo", "-location", "Colombo 03"))
	assert.Contains(t, c.out.String(), "Branch Colombo added successfully.")
	require.Equal(t, subcommands.ExitSuccess, c.run("add-branch", "-id", "2", "-name", "Kandy", "-location", "Kandy"))

	require.Equal(t, subcommands.ExitSuccess, c.run("add-product", "-id", "P1", "-name", "Rice"))
	assert.Contains(t, c.out.String(), "Product Rice added successfully.")

	require.Equal(t, subcommands.ExitSuccess, c.run("add-sale", "-branch", "1", "-product", "P1", "-amount", "100", "-date", "2024-01-10"))
	require.Equal(t, subcommands.ExitSuccess, c.run("add-sale", "-branch", "2", "-product", "P1", "-amount", "50", "-date", "2024-01-11"))

	require.Equal(t, subcommands.ExitSuccess, c.run("total"))
	assert.Contains(t, c.out.String(), "Total: 150 LKR")

	require.Equal(t, subcommands.ExitSuccess, c.run("all-branches"))
	assert.Contains(t, c.out.String(), "Branch 1: 100 LKR")
	assert.Contains(t, c.out.String(), "Branch 2: 50 LKR")

	require.Equal(t, subcommands.ExitSuccess, c.run("product-price", "P1"))
	assert.Contains(t, c.out.String(), "Mean: 75.00 LKR")
	assert.Contains(t, c.out.String(), "Median: 75.00 LKR")

	require.Equal(t, subcommands.ExitSuccess, c.run("branch-sales", "9"))
	assert.Contains(t, c.out.String(), "No sales details found for Branch ID 9.")

	require.Equal(t, subcommands.ExitSuccess, c.run("weekly", "-date", "2024-01-10"))
	assert.Contains(t, c.out.String(), "Week: 2024-01-08 to 2024-01-14")
	assert.Contains(t, c.out.String(), "Total: 150 LKR")

	require.Equal(t, subcommands.ExitSuccess, c.run("menu", "8"))
	assert.Contains(t, c.out.String(), "Logged out!")
}

func TestCommands_JSON(t *testing.T) {
	c := newCLI(t)
	c.env.json = true

	require.Equal(t, subcommands.ExitSuccess, c.run("add-branch", "-id", "1", "-name", "Colombo", "-location", "Colombo 03"))
	require.Equal(t, subcommands.ExitSuccess, c.run("total"))
	assert.Contains(t, c.out.String(), `"total": 0`)
	assert.Contains(t, c.out.String(), `"message": "Total Of Sales Amount Analysis"`)
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(c *cli)
		args     []string
		want     subcommands.ExitStatus
		validate func(t *testing.T, c *cli)
	}{
		{
			name:  "senha incorreta",
			setup: func(c *cli) { c.env.password = "wrong" },
			args:  []string{"total"},
			want:  subcommands.ExitFailure,
			validate: func(t *testing.T, c *cli) {
				assert.Contains(t, c.errOut.String(), "Incorrect Username or Password.")
			},
		},
		{
			name:  "sem credenciais",
			setup: func(c *cli) { c.env.username = "" },
			args:  []string{"total"},
			want:  subcommands.ExitUsageError,
		},
		{
			name: "venda de filial desconhecida no modo estrito",
			setup: func(c *cli) {
				c.run("add-sale", "-branch", "9", "-product", "P1", "-amount", "10", "-date", "2024-01-10")
			},
			args: []string{"all-branches"},
			want: subcommands.ExitFailure,
			validate: func(t *testing.T, c *cli) {
				assert.Contains(t, c.errOut.String(), "unknown branch")
			},
		},
		{
			name: "valor não numérico",
			setup: func(c *cli) {
				c.run("add-sale", "-branch", "1", "-product", "P1", "-amount", "abc", "-date", "2024-01-10")
			},
			args: []string{"total"},
			want: subcommands.ExitFailure,
			validate: func(t *testing.T, c *cli) {
				assert.Contains(t, c.errOut.String(), "amount is not a valid integer")
			},
		},
		{
			name: "data de venda inválida não é gravada",
			args: []string{"add-sale", "-branch", "1", "-product", "P1", "-amount", "10", "-date", "tomorrow"},
			want: subcommands.ExitFailure,
			validate: func(t *testing.T, c *cli) {
				assert.Contains(t, c.errOut.String(), "sale date does not match any known format")
				require.Equal(t, subcommands.ExitSuccess, c.run("weekly", "-date", "2024-01-10"))
			},
		},
		{
			name: "opção de menu inválida",
			args: []string{"menu", "9"},
			want: subcommands.ExitUsageError,
		},
		{
			name: "análise de filial sem ID",
			args: []string{"branch-sales"},
			want: subcommands.ExitUsageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(t)
			if tt.setup != nil {
				tt.setup(c)
			}
			assert.Equal(t, tt.want, c.run(tt.args...))
			if tt.validate != nil {
				tt.validate(t, c)
			}
		})
	}
}

func TestImportCSV(t *testing.T) {
	c := newCLI(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "branches.csv"),
		[]byte("Branch ID,Branch Name,Location\n1,Colombo,Colombo 03\n2,Kandy,Kandy\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sales.csv"),
		[]byte("Branch ID,Product ID,Amount Sold,Date\n1,P1,100,2024-01-10\n2,P1,50,10/01/2024\n"), 0o644))

	require.Equal(t, subcommands.ExitSuccess, c.run("import-csv", "-dir", dir, "-collections", "branches, sales"))
	assert.Contains(t, c.out.String(), "branches: 2 rows")
	assert.Contains(t, c.out.String(), "sales: 2 rows")

	require.Equal(t, subcommands.ExitSuccess, c.run("total"))
	assert.Contains(t, c.out.String(), "Total: 150 LKR")

	assert.Equal(t, subcommands.ExitUsageError, c.run("import-csv"))
}
