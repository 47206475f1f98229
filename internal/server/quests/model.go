// Package quests instantiates the generic entity pipeline for Quest records.
package quests

import (
	"time"

	"github.com/irlquest/server/internal/dbx"
	"github.com/irlquest/server/internal/server/entities"
)

type Quest struct {
	ID          int64
	Title       string
	Description *string
	Difficulty  int
	CreatedAt   time.Time
	OwnerID     *int64
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Difficulty  *int
}

// Kind is the schema descriptor binding Quest to its table.
func Kind() *entities.Kind[Quest, Patch] {
	return &entities.Kind[Quest, Patch]{
		Table:   "quests",
		Columns: []string{"title", "description", "difficulty", "owner_id"},
		Values: func(q *Quest) []any {
			return []any{q.Title, q.Description, q.Difficulty, q.OwnerID}
		},
		Scan: func(row entities.Row, q *Quest) error {
			return row.Scan(&q.ID, &q.Title, &q.Description, &q.Difficulty, &q.OwnerID, &q.CreatedAt)
		},
		Owner: func(q *Quest) (int64, bool) {
			if q.OwnerID == nil {
				return 0, false
			}
			return *q.OwnerID, true
		},
		SetOwner: func(q *Quest, ownerID int64) { q.OwnerID = &ownerID },
		PatchColumns: func(p *Patch) ([]string, []any) {
			columns, args := []string{}, []any{}
			if p.Title != nil {
				columns = append(columns, "title")
				args = append(args, *p.Title)
			}
			if p.Description != nil {
				columns = append(columns, "description")
				args = append(args, *p.Description)
			}
			if p.Difficulty != nil {
				columns = append(columns, "difficulty")
				args = append(args, *p.Difficulty)
			}
			return columns, args
		},
	}
}

type Repository = entities.Repository[Quest, Patch]

type Service = entities.Service[Quest, Patch]

func NewPostgresRepository(db dbx.DBTX) *entities.PostgresRepository[Quest, Patch] {
	return entities.NewPostgresRepository(db, Kind())
}

func NewService(repo Repository) *Service {
	return entities.NewService(repo, Kind())
}
