// Package sqlstore implementa o records.Store sobre PostgreSQL ou SQLite.
// Cada coleção é uma tabela de colunas TEXT ordenada pela coluna seq.
package sqlstore

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database"
	"github.com/vfg2006/sales-ledger-api/infrastructure/records"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

type table struct {
	name    string
	columns []string
}

var tables = map[records.Collection]table{
	records.Users:    {name: "users", columns: []string{"username", "password"}},
	records.Branches: {name: "branches", columns: []string{"branch_id", "branch_name", "location"}},
	records.Products: {name: "products", columns: []string{"product_id", "product_name"}},
	records.Sales:    {name: "sales", columns: []string{"branch_id", "product_id", "amount_sold", "sale_date"}},
}

type Store struct {
	conn    *database.Connection
	builder squirrel.StatementBuilderType
}

var _ records.Store = (*Store)(nil)

func New(conn *database.Connection) *Store {
	return &Store{
		conn:    conn,
		builder: squirrel.StatementBuilder.PlaceholderFormat(conn.Dialect.Placeholder()),
	}
}

func tableFor(c records.Collection) (table, error) {
	t, ok := tables[c]
	if !ok {
		return table{}, errors.Wrapf(records.ErrUnknownCollection, "%q", c)
	}
	return t, nil
}

// Load devolve as linhas na ordem de inserção
func (s *Store) Load(ctx context.Context, c records.Collection) ([]records.Row, error) {
	t, err := tableFor(c)
	if err != nil {
		return nil, err
	}

	query, args, err := s.builder.
		Select(t.columns...).
		From(t.name).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, err
	}

	rs, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "sqlstore: load %s", c)
	}
	defer rs.Close()

	rows := []records.Row{}
	for rs.Next() {
		row, err := scanRow(rs, len(t.columns))
		if err != nil {
			return nil, errors.Wrapf(err, "sqlstore: scan %s", c)
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, errors.Wrapf(err, "sqlstore: iterate %s", c)
	}

	return rows, nil
}

func scanRow(rs *sql.Rows, n int) (records.Row, error) {
	row := make(records.Row, n)
	dest := make([]any, n)
	for i := range row {
		dest[i] = &row[i]
	}
	if err := rs.Scan(dest...); err != nil {
		return nil, err
	}
	return row, nil
}

// Append insere as linhas numa única transação
func (s *Store) Append(ctx context.Context, c records.Collection, rows ...records.Row) error {
	if err := records.Validate(c, rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	t, err := tableFor(c)
	if err != nil {
		return err
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return s.insert(ctx, tx, t, rows)
	})
	if err != nil {
		return errors.Wrapf(err, "sqlstore: append %s", c)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"collection": c,
		"rows":       len(rows),
	}).Debug("Linhas inseridas")

	return nil
}

// Rewrite apaga e reinsere a coleção inteira na mesma transação
func (s *Store) Rewrite(ctx context.Context, c records.Collection, rows []records.Row) error {
	if err := records.Validate(c, rows); err != nil {
		return err
	}
	t, err := tableFor(c)
	if err != nil {
		return err
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := s.builder.Delete(t.name).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return s.insert(ctx, tx, t, rows)
	})
	if err != nil {
		return errors.Wrapf(err, "sqlstore: rewrite %s", c)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"collection": c,
		"rows":       len(rows),
	}).Info("Coleção reescrita")

	return nil
}

// insertBatchSize limita as linhas por INSERT, mantendo os parâmetros
// abaixo do limite do SQLite (32766) e do PostgreSQL (65535)
const insertBatchSize = 500

// insert grava as linhas em lotes dentro da transação recebida
func (s *Store) insert(ctx context.Context, tx *sql.Tx, t table, rows []records.Row) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))

		insert := s.builder.Insert(t.name).Columns(t.columns...)
		for _, row := range rows[start:end] {
			values := make([]any, len(row))
			for i, v := range row {
				values[i] = v
			}
			insert = insert.Values(values...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "batch starting at row %d", start)
		}
	}
	return nil
}
