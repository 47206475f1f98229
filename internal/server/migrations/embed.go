// Package migrations embeds the goose SQL migrations that make sure the
// identities, tasks and quests tables exist before the server starts.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
