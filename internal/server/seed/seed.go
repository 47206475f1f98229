// Package seed inserts the demo admin identity and a handful of sample
// tasks. Seeding is idempotent: it skips whenever rows already exist, so
// running against an already-seeded store is safe.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/irlquest/server/internal/common"
	"github.com/irlquest/server/internal/dbx"
	"github.com/irlquest/server/internal/logging"
	"github.com/irlquest/server/internal/server/auth"
	"github.com/irlquest/server/internal/server/identities"
	"github.com/irlquest/server/internal/server/tasks"
)

const (
	adminEmail    = "admin@example.com"
	adminUsername = "admin"
	adminPassword = "adminpass"
)

func sampleTasks(ownerID *int64) []*tasks.Task {
	str := func(s string) *string { return &s }
	return []*tasks.Task{
		{Title: "Create a profile", Description: str("Fill in your details"), OwnerID: ownerID},
		{Title: "Finish the tutorial", Description: str("Complete the first quest"), OwnerID: ownerID},
		{Title: "25 minute focus session", Description: str("Run one pomodoro"), OwnerID: ownerID},
	}
}

// Run seeds the demo data inside a single transaction.
func Run(ctx context.Context, db *sql.DB, logger logging.Logger) error {

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		identityRepo := identities.NewPostgresRepository(tx)

		admin, err := identityRepo.GetByEmail(ctx, adminEmail)
		if err != nil {
			if !errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("error checking admin identity: %w", err)
			}
			hash, err := auth.HashPassword(adminPassword)
			if err != nil {
				return fmt.Errorf("error hashing admin password: %w", err)
			}
			admin, err = identityRepo.Create(ctx, &identities.Identity{
				Email:          adminEmail,
				Username:       adminUsername,
				HashedPassword: hash,
			})
			if err != nil {
				return fmt.Errorf("error creating admin identity: %w", err)
			}
			logger.Info(ctx, "Seeded admin identity", "email", adminEmail)
		}

		taskRepo := tasks.NewPostgresRepository(tx)

		existing, err := taskRepo.List(ctx, nil, 0, 1)
		if err != nil {
			return fmt.Errorf("error checking sample tasks: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}

		for _, task := range sampleTasks(&admin.ID) {
			if _, err := taskRepo.Create(ctx, task); err != nil {
				return fmt.Errorf("error creating sample task: %w", err)
			}
		}
		logger.Info(ctx, "Seeded sample tasks")

		return nil
	})
}
