// Package store aggregates the per-collection repositories behind a Manager
// and owns backend selection: PostgreSQL in hosted mode, SQLite in local mode.
package store

import (
	"context"
	"database/sql"

	"github.com/nymphhq/nymph/internal/store/bugs"
	"github.com/nymphhq/nymph/internal/store/features"
	"github.com/nymphhq/nymph/internal/store/messages"
)

// Manager gives access to one backend's repositories. Implementations run
// their own migrations on construction.
type Manager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Bugs() bugs.Repository
	Features() features.Repository
	Messages() messages.Repository
	Close() error
}
