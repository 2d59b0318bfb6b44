package postgres

import (
	"context"

	_ "github.com/lib/pq"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database"
)

const driverName = "postgres"

// NewConnection abre a conexão com o PostgreSQL a partir da DSN
func NewConnection(ctx context.Context, dsn string) (*database.Connection, error) {
	return database.Open(ctx, driverName, dsn, database.Postgres)
}
