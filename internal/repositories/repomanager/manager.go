package repomanager

import (
	"context"
	"database/sql"

	"github.com/azarovs/parkd/internal/dbx"
	"github.com/azarovs/parkd/internal/repositories/devices"
	"github.com/azarovs/parkd/internal/repositories/programs"
	"github.com/azarovs/parkd/internal/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX so one manager serves
// both plain connections and transactions.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Devices(db dbx.DBTX) devices.Repository
	Programs(db dbx.DBTX) programs.Repository
}
