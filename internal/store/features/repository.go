// Package features provides repositories for the feature_requests table.
package features

import (
	"context"

	"github.com/nymphhq/nymph/internal/models"
)

// Repository describes the persistence operations for feature requests.
// It mirrors the bug report contract over the feature_requests table.
type Repository interface {
	Insert(ctx context.Context, e models.Entry) (models.Entry, error)
	ListOrderedByCreatedDesc(ctx context.Context) ([]models.Entry, error)
	UpdateFields(ctx context.Context, id string, patch models.EntryPatch) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) error
}
