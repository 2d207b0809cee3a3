package bugs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nymphhq/nymph/internal/common"
	"github.com/nymphhq/nymph/internal/dbx"
	"github.com/nymphhq/nymph/internal/models"
)

// PostgresRepository implements bug report storage over a dbx.DBTX
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
		INSERT INTO bug_reports
			(feature_name, expected_behavior, actual_behavior, error_code, error_message, priority, status, converted_from)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		RETURNING id, created_at;
	`
	err := r.db.QueryRowContext(ctx, query,
		e.Title, e.ExpectedBehavior, e.ActualBehavior, e.ErrorCode, e.ErrorMessage,
		e.Priority, e.Status, e.ConvertedFrom,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: insert bug report: %w", common.ErrStoreUnavailable, err)
	}
	e.Kind = models.KindBug
	return e, nil
}

func (r *PostgresRepository) ListOrderedByCreatedDesc(ctx context.Context) ([]models.Entry, error) {
	query := `
		SELECT id, feature_name, expected_behavior, actual_behavior, error_code, error_message,
			priority, status, converted_from, created_at
		FROM bug_reports
		ORDER BY created_at DESC;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: select bug reports: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	result := make([]models.Entry, 0)
	for rows.Next() {
		var item models.Entry
		var convertedFrom sql.NullString
		if err := rows.Scan(
			&item.ID, &item.Title, &item.ExpectedBehavior, &item.ActualBehavior,
			&item.ErrorCode, &item.ErrorMessage, &item.Priority, &item.Status,
			&convertedFrom, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Kind = models.KindBug
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
		UPDATE bug_reports
		SET priority = COALESCE($2, priority), status = COALESCE($3, status)
		WHERE id = $1;
	`
	res, err := r.db.ExecContext(ctx, query, id, patch.Priority, patch.Status)
	if err != nil {
		return fmt.Errorf("%w: update bug report: %w", common.ErrStoreUnavailable, err)
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
	_, err := r.db.ExecContext(ctx, `DELETE FROM bug_reports WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("%w: delete bug report: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM bug_reports WHERE id = ANY($1);`, ids)
	if err != nil {
		return fmt.Errorf("%w: delete bug reports: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}
