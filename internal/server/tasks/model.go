// Package tasks instantiates the generic entity pipeline for Task records.
package tasks

import (
	"time"

	"github.com/irlquest/server/internal/dbx"
	"github.com/irlquest/server/internal/server/entities"
)

type Task struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	OwnerID     *int64
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Kind is the schema descriptor binding Task to its table.
func Kind() *entities.Kind[Task, Patch] {
	return &entities.Kind[Task, Patch]{
		Table:   "tasks",
		Columns: []string{"title", "description", "completed", "owner_id"},
		Values: func(t *Task) []any {
			return []any{t.Title, t.Description, t.Completed, t.OwnerID}
		},
		Scan: func(row entities.Row, t *Task) error {
			return row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerID, &t.CreatedAt)
		},
		Owner: func(t *Task) (int64, bool) {
			if t.OwnerID == nil {
				return 0, false
			}
			return *t.OwnerID, true
		},
		SetOwner: func(t *Task, ownerID int64) { t.OwnerID = &ownerID },
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
			if p.Completed != nil {
				columns = append(columns, "completed")
				args = append(args, *p.Completed)
			}
			return columns, args
		},
	}
}

type Repository = entities.Repository[Task, Patch]

type Service = entities.Service[Task, Patch]

func NewPostgresRepository(db dbx.DBTX) *entities.PostgresRepository[Task, Patch] {
	return entities.NewPostgresRepository(db, Kind())
}

func NewService(repo Repository) *Service {
	return entities.NewService(repo, Kind())
}
