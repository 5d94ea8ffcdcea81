package repomanager

import (
	"context"
	"database/sql"

	"github.com/avelis/daybook/internal/dbx"
	"github.com/avelis/daybook/internal/server/repositories/entries"
	"github.com/avelis/daybook/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Entries(db dbx.DBTX) entries.Repository
}
