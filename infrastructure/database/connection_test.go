package database_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/sqlite"
)

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, squirrel.Dollar, database.Postgres.Placeholder())
	assert.Equal(t, squirrel.Question, database.SQLite.Placeholder())
}

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()
	conn, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.ExecContext(ctx, "CREATE TABLE t (v TEXT)")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO t (v) VALUES ('x')"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO t (v) VALUES ('y')")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM t").Scan(&count))
	assert.Equal(t, 1, count)
}
