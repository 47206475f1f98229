// Package dbx holds the storage plumbing the repositories are built on: a
// query interface satisfied by both a connection pool and an open
// transaction, and a transaction runner.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the repositories need. *sql.DB and *sql.Tx both
// satisfy it, so the same repository code runs standalone or inside a
// transaction (seeding relies on this).
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs work inside a transaction: commit when work returns nil,
// rollback when it returns an error or panics. A panic is rethrown after the
// rollback.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, work func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = work(ctx, tx)
	return err
}
