package identities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/irlquest/server/internal/common"
	"github.com/irlquest/server/internal/dbx"
)

const selectColumns = "id, email, username, hashed_password, is_active, created_at"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) scanRow(row *sql.Row) (*Identity, error) {
	identity := &Identity{}
	err := row.Scan(&identity.ID, &identity.Email, &identity.Username,
		&identity.HashedPassword, &identity.IsActive, &identity.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return identity, nil
}

func (r *PostgresRepository) Create(ctx context.Context, identity *Identity) (*Identity, error) {

	query :=
		`INSERT INTO identities (email, username, hashed_password)
		 VALUES ($1, $2, $3)
		 RETURNING ` + selectColumns

	row := r.db.QueryRowContext(ctx, query,
		identity.Email, identity.Username, identity.HashedPassword)

	return r.scanRow(row)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*Identity, error) {
	query :=
		`SELECT ` + selectColumns + ` FROM identities
		 WHERE email = $1
		 `

	return r.scanRow(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*Identity, error) {
	query :=
		`SELECT ` + selectColumns + ` FROM identities
		 WHERE username = $1
		 `

	return r.scanRow(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Identity, error) {
	query :=
		`SELECT ` + selectColumns + ` FROM identities
		 WHERE id = $1
		 `

	return r.scanRow(r.db.QueryRowContext(ctx, query, id))
}

// Update sets only the provided fields and returns the refreshed row.
// A call with neither field set degenerates into a plain read.
func (r *PostgresRepository) Update(ctx context.Context, id int64, username *string, hashedPassword *string) (*Identity, error) {

	if username == nil && hashedPassword == nil {
		return r.GetByID(ctx, id)
	}

	set := ""
	args := []any{}
	if username != nil {
		args = append(args, *username)
		set += fmt.Sprintf("username = $%d", len(args))
	}
	if hashedPassword != nil {
		if set != "" {
			set += ", "
		}
		args = append(args, *hashedPassword)
		set += fmt.Sprintf("hashed_password = $%d", len(args))
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE identities SET %s WHERE id = $%d RETURNING %s`,
		set, len(args), selectColumns)

	return r.scanRow(r.db.QueryRowContext(ctx, query, args...))
}
