package db

import (
	"context"
	"database/sql"

	"github.com/irlquest/server/internal/server/identities"
	"github.com/irlquest/server/internal/server/quests"
	"github.com/irlquest/server/internal/server/tasks"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Identities() identities.Repository
	Tasks() tasks.Repository
	Quests() quests.Repository
}
