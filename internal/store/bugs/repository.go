// Package bugs provides repositories for the bug_reports table.
package bugs

import (
	"context"

	"github.com/nymphhq/nymph/internal/models"
)

// Repository describes the persistence operations for bug reports.
type Repository interface {
	// Insert stores the entry and returns it with the store-assigned ID and
	// CreatedAt filled in.
	Insert(ctx context.Context, e models.Entry) (models.Entry, error)

	// ListOrderedByCreatedDesc returns all bug reports, newest first. An
	// empty table yields an empty slice, never an error.
	ListOrderedByCreatedDesc(ctx context.Context) ([]models.Entry, error)

	// UpdateFields applies the non-nil parts of the patch to the row with the
	// given id. A missing row is common.ErrNotFound.
	UpdateFields(ctx context.Context, id string, patch models.EntryPatch) error

	// DeleteByID removes a row. Deleting a nonexistent id is a success.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByIDs removes the given rows. A nonexistent id is skipped.
	DeleteByIDs(ctx context.Context, ids []string) error
}
