package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/nymphhq/nymph/internal/store/bugs"
	"github.com/nymphhq/nymph/internal/store/features"
	"github.com/nymphhq/nymph/internal/store/messages"
	"github.com/nymphhq/nymph/internal/store/pgmigrations"
)

// PostgresManager backs the hosted mode: the relational collaborator with
// snake_case tables and server-assigned ids.
type PostgresManager struct {
	db       *sql.DB
	bugs     bugs.Repository
	features features.Repository
	messages messages.Repository
}

func (m *PostgresManager) Conn() *sql.DB                 { return m.db }
func (m *PostgresManager) Bugs() bugs.Repository         { return m.bugs }
func (m *PostgresManager) Features() features.Repository { return m.features }
func (m *PostgresManager) Messages() messages.Repository { return m.messages }
func (m *PostgresManager) Close() error                  { return m.db.Close() }

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(pgmigrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, m.db, ".")
}

// NewPostgresManager opens the DSN, runs migrations and wires the
// repositories.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{
		db:       db,
		bugs:     bugs.NewPostgresRepository(db),
		features: features.NewPostgresRepository(db),
		messages: messages.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
