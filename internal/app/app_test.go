package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/infrastructure/csvstore"
	"github.com/vfg2006/sales-ledger-api/infrastructure/sqlstore"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

func testConfig(driver string, dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Store.Driver = driver
	cfg.Store.DataDir = dir
	cfg.Store.SQLitePath = filepath.Join(dir, "db", "ledger.db")
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.TokenTTL = time.Hour
	cfg.Ledger.JoinPolicy = "strict"
	cfg.Ledger.Currency = "LKR"
	cfg.Ledger.HistogramBins = 10
	return cfg
}

func TestNew(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		driver   string
		validate func(t *testing.T, a *App, err error)
	}{
		{
			name:   "csv",
			driver: config.StoreCSV,
			validate: func(t *testing.T, a *App, err error) {
				require.NoError(t, err)
				assert.IsType(t, &csvstore.Store{}, a.Store)
			},
		},
		{
			name:   "sqlite com migrações",
			driver: config.StoreSQLite,
			validate: func(t *testing.T, a *App, err error) {
				require.NoError(t, err)
				assert.IsType(t, &sqlstore.Store{}, a.Store)
			},
		},
		{
			name:   "driver desconhecido",
			driver: "mongo",
			validate: func(t *testing.T, a *App, err error) {
				assert.ErrorContains(t, err, "unknown store driver")
				assert.Nil(t, a)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(context.Background(), testConfig(tt.driver, t.TempDir()))
			if a != nil {
				t.Cleanup(func() { _ = a.Close() })
			}
			tt.validate(t, a, err)
		})
	}
}

func TestNew_EndToEnd(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	for _, driver := range []string{config.StoreCSV, config.StoreSQLite} {
		t.Run(driver, func(t *testing.T) {
			a, err := New(ctx, testConfig(driver, t.TempDir()))
			require.NoError(t, err)
			t.Cleanup(func() { _ = a.Close() })

			_, err = a.Recorder.AddBranch(ctx, domain.Branch{ID: "1", Name: "Colombo", Location: "Colombo 03"})
			require.NoError(t, err)
			_, err = a.Recorder.AddBranch(ctx, domain.Branch{ID: "2", Name: "Kandy", Location: "Kandy"})
			require.NoError(t, err)

			for _, sale := range []domain.Sale{
				{BranchID: "1", ProductID: "P1", Amount: "100", Date: "2024-01-10"},
				{BranchID: "2", ProductID: "P1", Amount: "50", Date: "2024-01-11"},
			} {
				_, err = a.Recorder.AddSale(ctx, sale)
				require.NoError(t, err)
			}

			all, err := a.Reporter.AllBranchesSales(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string]int64{"1": 100, "2": 50}, all.Totals.AsMap())

			price, err := a.Reporter.ProductPrice(ctx, "P1")
			require.NoError(t, err)
			require.NotNil(t, price.Stats)
			assert.Equal(t, "75", price.Stats.Mean.String())
			assert.Equal(t, int64(100), price.Stats.Max)
			assert.Equal(t, int64(50), price.Stats.Min)

			_, err = a.Authenticator.CreateUser(ctx, "admin", "secret123")
			require.NoError(t, err)
			token, err := a.Authenticator.LoginUser(ctx, "admin", "secret123")
			require.NoError(t, err)
			claims, err := a.Authenticator.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Username)
		})
	}
}
