// Package app monta o armazenamento e os casos de uso a partir da configuração.
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/csvstore"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/migrations"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-ledger-api/infrastructure/records"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/infrastructure/sqlstore"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/recording"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/reporting"
)

type App struct {
	Config        *config.Config
	Store         records.Store
	Recorder      recording.Recorder
	Reporter      reporting.Reporter
	Authenticator authenticating.Authenticator

	closers []func() error
}

// New abre o armazenamento escolhido em STORE_DRIVER e constrói os serviços
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Store = store

	branchRepo := repository.NewBranchRepository(store)
	productRepo := repository.NewProductRepository(store)
	saleRepo := repository.NewSaleRepository(store)
	userRepo := repository.NewUserRepository(store)

	a.Recorder = recording.NewService(branchRepo, productRepo, saleRepo)
	a.Authenticator = authenticating.NewService(userRepo, cfg)

	a.Reporter, err = reporting.NewService(saleRepo, branchRepo, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) openStore(ctx context.Context) (records.Store, error) {
	cfg := a.Config.Store
	logger := logrus.WithField("driver", cfg.Driver)

	switch cfg.Driver {
	case config.StoreCSV:
		logger.WithField("data_dir", cfg.DataDir).Info("Usando armazenamento CSV")
		return csvstore.New(cfg.DataDir)

	case config.StorePostgres:
		if err := migrations.Up(database.Postgres, cfg.DatabaseURL); err != nil {
			return nil, err
		}
		conn, err := postgres.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, conn.Close)
		logger.Info("Usando armazenamento Postgres")
		return sqlstore.New(conn), nil

	case config.StoreSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, conn.Close)
		if err := migrations.Up(database.SQLite, cfg.SQLitePath); err != nil {
			return nil, err
		}
		logger.WithField("path", cfg.SQLitePath).Info("Usando armazenamento SQLite")
		return sqlstore.New(conn), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Close libera as conexões abertas, na ordem inversa
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
