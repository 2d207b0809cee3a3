package features

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nymphhq/nymph/internal/common"
	"github.com/nymphhq/nymph/internal/dbx"
	"github.com/nymphhq/nymph/internal/models"
)

// PostgresRepository implements feature request storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, e models.Entry) (models.Entry, error) {
	query := `
		INSERT INTO feature_requests
			(feature_name, expected_behavior, feature_importance, desirability, priority, status, converted_from)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id, created_at;
	`
	err := r.db.QueryRowContext(ctx, query,
		e.Title, e.ExpectedBehavior, e.Importance, e.Desirability,
		e.Priority, e.Status, e.ConvertedFrom,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: insert feature request: %w", common.ErrStoreUnavailable, err)
	}
	e.Kind = models.KindFeature
	return e, nil
}

func (r *PostgresRepository) ListOrderedByCreatedDesc(ctx context.Context) ([]models.Entry, error) {
	query := `
		SELECT id, feature_name, expected_behavior, feature_importance, desirability,
			priority, status, converted_from, created_at
		FROM feature_requests
		ORDER BY created_at DESC;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: select feature requests: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make([]models.Entry, 0)
	for rows.Next() {
		var item models.Entry
		var convertedFrom sql.NullString
		if err := rows.Scan(
			&item.ID, &item.Title, &item.ExpectedBehavior, &item.Importance,
			&item.Desirability, &item.Priority, &item.Status,
			&convertedFrom, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Kind = models.KindFeature
		item.ConvertedFrom = convertedFrom.String
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdateFields(ctx context.Context, id string, patch models.EntryPatch) error {
	query := `
		UPDATE feature_requests
		SET priority = COALESCE($2, priority), status = COALESCE($3, status)
		WHERE id = $1;
	`
	res, err := r.db.ExecContext(ctx, query, id, patch.Priority, patch.Status)
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
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM feature_requests WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("%w: delete feature request: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM feature_requests WHERE id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("%w: delete feature requests: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}
