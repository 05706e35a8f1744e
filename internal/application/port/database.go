package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the history database, opening it on first use
// so the vomnibar can paint before SQLite has compiled and migrated.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
