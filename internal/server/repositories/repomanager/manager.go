package repomanager

import (
	"context"
	"database/sql"

	"teamcal/internal/dbx"
	"teamcal/internal/server/repositories/events"
	"teamcal/internal/server/repositories/holidays"
	"teamcal/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run the same repository code against the pool or against an
// open transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Events(db dbx.DBTX) events.Repository
	Holidays(db dbx.DBTX) holidays.Repository
}
