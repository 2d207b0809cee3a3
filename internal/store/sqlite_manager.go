package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/nymphhq/nymph/internal/store/bugs"
	"github.com/nymphhq/nymph/internal/store/features"
	"github.com/nymphhq/nymph/internal/store/litemigrations"
	"github.com/nymphhq/nymph/internal/store/messages"
)

// SQLiteManager backs the local mode: a single database file on disk, the
// stand-in for the original's browser storage.
type SQLiteManager struct {
	db       *sql.DB
	bugs     bugs.Repository
	features features.Repository
	messages messages.Repository
}

func (m *SQLiteManager) Conn() *sql.DB                 { return m.db }
func (m *SQLiteManager) Bugs() bugs.Repository         { return m.bugs }
func (m *SQLiteManager) Features() features.Repository { return m.features }
func (m *SQLiteManager) Messages() messages.Repository { return m.messages }
func (m *SQLiteManager) Close() error                  { return m.db.Close() }

func (m *SQLiteManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(litemigrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, m.db, ".")
}

// NewSQLiteManager opens (or creates) the database file, runs migrations and
// wires the repositories.
func NewSQLiteManager(ctx context.Context, path string) (*SQLiteManager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &SQLiteManager{
		db:       db,
		bugs:     bugs.NewSQLiteRepository(db),
		features: features.NewSQLiteRepository(db),
		messages: messages.NewSQLiteRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
