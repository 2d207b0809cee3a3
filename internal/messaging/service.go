// Package messaging implements the admin/user communication feature: an
// append-only list of messages tied to entries, with an unread badge and
// read/dismiss mutations. It is a smaller copy of the tracker's
// repository-service pattern.
package messaging

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nymphhq/nymph/internal/common"
	"github.com/nymphhq/nymph/internal/logging"
	"github.com/nymphhq/nymph/internal/models"
	"github.com/nymphhq/nymph/internal/store/messages"
)

// VisibleLimit caps the rendered message list; the unread badge still counts
// the full set.
const VisibleLimit = 10

// Service owns the loaded message list.
type Service struct {
	repo messages.Repository
	log  logging.Logger
}

// NewService wires the messaging feature.
func NewService(repo messages.Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns all messages, newest first. A store failure degrades to an
// empty list, mirroring the tracker's graceful degradation.
func (s *Service) List(ctx context.Context) []models.Message {
	all, err := s.repo.ListOrderedByCreatedDesc(ctx)
	if err != nil {
		s.log.Error(ctx, "loading messages failed", "error", err)
		return nil
	}
	return all
}

// UnreadCount counts unread messages across the full list.
func UnreadCount(all []models.Message) int {
	n := 0
	for _, m := range all {
		if !m.IsRead {
			n++
		}
	}
	return n
}

// Visible returns the slice the UI renders: the newest VisibleLimit messages.
func Visible(all []models.Message) []models.Message {
	if len(all) > VisibleLimit {
		return all[:VisibleLimit]
	}
	return all
}

// Send validates the draft and inserts it. The subject gets the message
// type's prefix when the caller passed only the bare entry title.
func (s *Service) Send(ctx context.Context, draft models.NewMessageInput) (models.Message, error) {
	var missing []string
	if !draft.RelatedEntryKind.Valid() {
		missing = append(missing, "item type")
	}
	if strings.TrimSpace(draft.RelatedEntryID) == "" {
		missing = append(missing, "item id")
	}
	if strings.TrimSpace(draft.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(draft.Body) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return models.Message{}, fmt.Errorf("%w: missing %s", common.ErrValidation, strings.Join(missing, ", "))
	}

	m := models.Message{
		RelatedEntryID:   draft.RelatedEntryID,
		RelatedEntryKind: draft.RelatedEntryKind,
		Type:             draft.Type,
		Subject:          draft.Subject,
		Body:             draft.Body,
		Priority:         draft.Priority,
		FromAdmin:        true,
	}
	if m.Type == "" {
		m.Type = models.MessageGeneral
	}
	if m.Priority == "" {
		m.Priority = models.MessagePriorityNormal
	}

	return s.repo.Insert(ctx, m)
}

// MarkRead transitions a message to read. Idempotent: a second call succeeds
// and keeps the original read timestamp.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id, time.Now().UTC())
}

// Dismiss deletes a message. The caller confirms with the user first;
// dismissing an already-deleted message is a success.
func (s *Service) Dismiss(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
