package messages

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nymphhq/nymph/internal/common"
	"github.com/nymphhq/nymph/internal/dbx"
	"github.com/nymphhq/nymph/internal/models"
)

// SQLiteRepository is the local-mode backend for messages.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, m models.Message) (models.Message, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	m.IsRead = false
	m.ReadAt = nil
	query := `
		INSERT INTO user_communications
			(id, item_type, item_id, message_type, subject, message, priority, from_admin, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, string(m.RelatedEntryKind), m.RelatedEntryID, string(m.Type),
		m.Subject, m.Body, string(m.Priority), m.FromAdmin, m.CreatedAt.Format(dbx.TimeLayout),
	)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: insert message: %w", common.ErrStoreUnavailable, err)
	}
	return m, nil
}

func (r *SQLiteRepository) ListOrderedByCreatedDesc(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, item_type, item_id, message_type, subject, message, priority,
			from_admin, is_read, created_at, read_at
		FROM user_communications
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: select messages: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make([]models.Message, 0)
	for rows.Next() {
		var item models.Message
		var createdAt string
		var readAt sql.NullString
		if err := rows.Scan(
			&item.ID, &item.RelatedEntryKind, &item.RelatedEntryID, &item.Type,
			&item.Subject, &item.Body, &item.Priority, &item.FromAdmin, &item.IsRead,
			&createdAt, &readAt,
		); err != nil {
			return nil, err
		}
		item.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("bad created_at for %s: %w", item.ID, err)
		}
		if readAt.Valid && readAt.String != "" {
			t, err := time.Parse(time.RFC3339Nano, readAt.String)
			if err != nil {
				return nil, fmt.Errorf("bad read_at for %s: %w", item.ID, err)
			}
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
func (r *SQLiteRepository) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	query := `
		UPDATE user_communications
		SET is_read = 1, read_at = COALESCE(read_at, ?)
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, readAt.Format(dbx.TimeLayout), id)
	if err != nil {
		return fmt.Errorf("%w: mark message read: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteByID is idempotent: a missing row is treated as success.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_communications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: delete message: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteByIDs removes the rows one statement at a time, inside a single
// transaction when the repository holds a *sql.DB.
func (r *SQLiteRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	del := func(ctx context.Context, db dbx.DBTX) error {
		for _, id := range ids {
			if _, err := db.ExecContext(ctx, `DELETE FROM user_communications WHERE id = ?`, id); err != nil {
				return fmt.Errorf("%w: delete messages: %w", common.ErrStoreUnavailable, err)
			}
		}
		return nil
	}

	if db, ok := r.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, del)
	}
	return del(ctx, r.db)
}
