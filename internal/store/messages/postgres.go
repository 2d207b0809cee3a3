package messages

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nymphhq/nymph/internal/common"
	"github.com/nymphhq/nymph/internal/dbx"
	"github.com/nymphhq/nymph/internal/models"
)

// PostgresRepository implements message storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, m models.Message) (models.Message, error) {
	query := `
		INSERT INTO user_communications
			(item_type, item_id, message_type, subject, message, priority, from_admin, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false)
		RETURNING id, created_at;
	`
	err := r.db.QueryRowContext(ctx, query,
		m.RelatedEntryKind, m.RelatedEntryID, m.Type, m.Subject, m.Body, m.Priority, m.FromAdmin,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: insert message: %w", common.ErrStoreUnavailable, err)
	}
	m.IsRead = false
	m.ReadAt = nil
	return m, nil
}

func (r *PostgresRepository) ListOrderedByCreatedDesc(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, item_type, item_id, message_type, subject, message, priority,
			from_admin, is_read, created_at, read_at
		FROM user_communications
		ORDER BY created_at DESC;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: select messages: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make([]models.Message, 0)
	for rows.Next() {
		var item models.Message
		var readAt sql.NullTime
		if err := rows.Scan(
			&item.ID, &item.RelatedEntryKind, &item.RelatedEntryID, &item.Type,
			&item.Subject, &item.Body, &item.Priority, &item.FromAdmin, &item.IsRead,
			&item.CreatedAt, &readAt,
		); err != nil {
			return nil, err
		}
		if readAt.Valid {
			t := readAt.Time
			item.ReadAt = &t
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkRead is idempotent; re-reading keeps the original read_at.
func (r *PostgresRepository) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	query := `
		UPDATE user_communications
		SET is_read = true, read_at = COALESCE(read_at, $2)
		WHERE id = $1;
	`
	_, err := r.db.ExecContext(ctx, query, id, readAt)
	if err != nil {
		return fmt.Errorf("%w: mark message read: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteByID is idempotent: a missing row is treated as success.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_communications WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("%w: delete message: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_communications WHERE id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("%w: delete messages: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}
