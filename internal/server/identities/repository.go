package identities

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, identity *Identity) (*Identity, error)
	GetByEmail(ctx context.Context, email string) (*Identity, error)
	GetByUsername(ctx context.Context, username string) (*Identity, error)
	GetByID(ctx context.Context, id int64) (*Identity, error)
	Update(ctx context.Context, id int64, username *string, hashedPassword *string) (*Identity, error)
}
