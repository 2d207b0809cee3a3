package features

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

// SQLiteRepository is the local-mode backend for feature requests. Inserts
// generate the UUID client-side.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, e models.Entry) (models.Entry, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	query := `
		INSERT INTO feature_requests
			(id, feature_name, expected_behavior, feature_importance, desirability, priority, status, converted_from, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, e.ExpectedBehavior, e.Importance, e.Desirability,
		string(e.Priority), string(e.Status), e.ConvertedFrom, e.CreatedAt.Format(dbx.TimeLayout),
	)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: insert feature request: %w", common.ErrStoreUnavailable, err)
	}
	e.Kind = models.KindFeature
	return e, nil
}

func (r *SQLiteRepository) ListOrderedByCreatedDesc(ctx context.Context) ([]models.Entry, error) {
	query := `
		SELECT id, feature_name, expected_behavior, feature_importance, desirability,
			priority, status, converted_from, created_at
		FROM feature_requests
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: select feature requests: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make([]models.Entry, 0)
	for rows.Next() {
		var item models.Entry
		var createdAt string
		if err := rows.Scan(
			&item.ID, &item.Title, &item.ExpectedBehavior, &item.Importance,
			&item.Desirability, &item.Priority, &item.Status,
			&item.ConvertedFrom, &createdAt,
		); err != nil {
			return nil, err
		}
		item.Kind = models.KindFeature
		item.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("bad created_at for %s: %w", item.ID, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) UpdateFields(ctx context.Context, id string, patch models.EntryPatch) error {
	query := `
		UPDATE feature_requests
		SET priority = COALESCE(?, priority), status = COALESCE(?, status)
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query, patch.Priority, patch.Status, id)
	if err != nil {
		return fmt.Errorf("%w: update feature request: %w", common.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteByID is idempotent: a missing row is treated as success.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM feature_requests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: delete feature request: %w", common.ErrStoreUnavailable, err)
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
			if _, err := db.ExecContext(ctx, `DELETE FROM feature_requests WHERE id = ?`, id); err != nil {
				return fmt.Errorf("%w: delete feature requests: %w", common.ErrStoreUnavailable, err)
			}
		}
		return nil
	}

	if db, ok := r.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, del)
	}
	return del(ctx, r.db)
}
