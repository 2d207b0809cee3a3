// Package messages provides repositories for the user_communications table.
package messages

import (
	"context"
	"time"

	"github.com/nymphhq/nymph/internal/models"
)

// Repository describes the persistence operations for admin/user messages.
type Repository interface {
	// Insert stores the message and returns it with the store-assigned ID
	// and CreatedAt filled in.
	Insert(ctx context.Context, m models.Message) (models.Message, error)

	// ListOrderedByCreatedDesc returns all messages, newest first.
	ListOrderedByCreatedDesc(ctx context.Context) ([]models.Message, error)

	// MarkRead sets is_read and read_at. Marking an already-read or missing
	// message is a success; the transition is one-way.
	MarkRead(ctx context.Context, id string, readAt time.Time) error

	// DeleteByID removes a message. Deleting a nonexistent id is a success.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByIDs removes the given messages.
	DeleteByIDs(ctx context.Context, ids []string) error
}
