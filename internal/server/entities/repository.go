package entities

import (
	"context"
)

// Repository is pure persistence translation; it carries no authorization
// logic. The owner filter is optional so bootstrap code can inspect the
// whole table.
type Repository[T any, P any] interface {
	List(ctx context.Context, ownerID *int64, skip, limit int) ([]*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, record *T) (*T, error)
	Update(ctx context.Context, id int64, patch *P) (*T, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
