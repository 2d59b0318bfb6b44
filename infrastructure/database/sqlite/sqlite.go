package sqlite

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// NewConnection abre o arquivo SQLite, criando o diretório se preciso
func NewConnection(ctx context.Context, path string) (*database.Connection, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}

	conn, err := database.Open(ctx, driverName, path, database.SQLite)
	if err != nil {
		return nil, err
	}

	// SQLite serializa escritas; uma conexão evita SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	return conn, nil
}
