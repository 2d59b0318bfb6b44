// Package migrations aplica o schema das coleções com golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

// Up aplica as migrações pendentes do dialeto. Usa uma conexão própria,
// fechada ao final, para não interferir na conexão principal.
func Up(dialect database.Dialect, dsn string) error {
	migrateDB, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	var driver migratedb.Driver
	switch dialect {
	case database.Postgres:
		driver, err = postgres.WithInstance(migrateDB, &postgres.Config{})
	case database.SQLite:
		driver, err = sqlite.WithInstance(migrateDB, &sqlite.Config{})
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err != nil {
		return fmt.Errorf("create %s driver: %w", dialect, err)
	}

	source, err := iofs.New(migrationsFS, string(dialect))
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(dialect), driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
