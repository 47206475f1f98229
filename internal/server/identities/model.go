package identities

import "time"

// Identity is one registered account. HashedPassword is never exposed
// outside the service and repository layers.
type Identity struct {
	ID             int64
	Email          string
	Username       string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
}
