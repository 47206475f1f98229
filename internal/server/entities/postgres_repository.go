package entities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/irlquest/server/internal/common"
	"github.com/irlquest/server/internal/dbx"
)

// PostgresRepository is the single SQL implementation shared by all entity
// kinds. Only this layer issues queries against entity tables.
type PostgresRepository[T any, P any] struct {
	db   dbx.DBTX
	kind *Kind[T, P]
}

func NewPostgresRepository[T any, P any](db dbx.DBTX, kind *Kind[T, P]) *PostgresRepository[T, P] {
	return &PostgresRepository[T, P]{db: db, kind: kind}
}

func (r *PostgresRepository[T, P]) List(ctx context.Context, ownerID *int64, skip, limit int) ([]*T, error) {

	query := fmt.Sprintf(`SELECT %s FROM %s`, r.kind.SelectColumns(), r.kind.Table)
	args := []any{}

	if ownerID != nil {
		args = append(args, *ownerID)
		query += fmt.Sprintf(` WHERE owner_id = $%d`, len(args))
	}

	args = append(args, skip)
	query += fmt.Sprintf(` ORDER BY id OFFSET $%d`, len(args))
	args = append(args, limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	records := []*T{}
	for rows.Next() {
		record := new(T)
		if err := r.kind.Scan(rows, record); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return records, nil
}

func (r *PostgresRepository[T, P]) Get(ctx context.Context, id int64) (*T, error) {

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.kind.SelectColumns(), r.kind.Table)

	record := new(T)
	err := r.kind.Scan(r.db.QueryRowContext(ctx, query, id), record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

func (r *PostgresRepository[T, P]) Create(ctx context.Context, record *T) (*T, error) {

	placeholders := make([]string, len(r.kind.Columns))
	for i := range r.kind.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		r.kind.Table,
		strings.Join(r.kind.Columns, ", "),
		strings.Join(placeholders, ", "),
		r.kind.SelectColumns())

	row := r.db.QueryRowContext(ctx, query, r.kind.Values(record)...)
	if err := r.kind.Scan(row, record); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

// Update sets only the columns present in the patch and returns the
// refreshed row. An empty patch degenerates into a plain read.
func (r *PostgresRepository[T, P]) Update(ctx context.Context, id int64, patch *P) (*T, error) {

	columns, args := r.kind.PatchColumns(patch)
	if len(columns) == 0 {
		return r.Get(ctx, id)
	}

	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		r.kind.Table,
		strings.Join(assignments, ", "),
		len(args),
		r.kind.SelectColumns())

	record := new(T)
	err := r.kind.Scan(r.db.QueryRowContext(ctx, query, args...), record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

func (r *PostgresRepository[T, P]) Delete(ctx context.Context, id int64) (bool, error) {

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.kind.Table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return affected > 0, nil
}
