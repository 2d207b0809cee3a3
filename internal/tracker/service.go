// Package tracker owns the session's entry list: the single authoritative,
// most-recent-first slice of bugs and features, kept consistent with the
// backing store by every mutation.
package tracker

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/nymphhq/nymph/internal/common"
	"github.com/nymphhq/nymph/internal/logging"
	"github.com/nymphhq/nymph/internal/models"
	"github.com/nymphhq/nymph/internal/store/bugs"
	"github.com/nymphhq/nymph/internal/store/features"
	"github.com/nymphhq/nymph/internal/validation"
)

// Snapshotter is the disk cache the service falls back to when the store is
// unreachable. May be absent.
type Snapshotter interface {
	Write(entries []models.Entry) error
	Read() ([]models.Entry, bool, error)
	Erase() error
}

// Service is the entry repository. All exported methods are safe for
// concurrent use, though the REPL drives them sequentially.
type Service struct {
	mu      sync.Mutex
	entries []models.Entry

	bugs     bugs.Repository
	features features.Repository
	cache    Snapshotter
	log      logging.Logger
}

// NewService wires the entry repository. cache may be nil.
func NewService(b bugs.Repository, f features.Repository, cache Snapshotter, log logging.Logger) *Service {
	return &Service{bugs: b, features: f, cache: cache, log: log}
}

// All returns a copy of the current session list.
func (s *Service) All() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given id.
func (s *Service) Get(id string) (models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return models.Entry{}, common.ErrNotFound
	}
	return s.entries[i], nil
}

// index returns the position of id in the list, or -1. Callers hold s.mu.
func (s *Service) index(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// LoadAll lists both collections, replaces the session list with the merged
// result (newest first) and refreshes the snapshot. A store failure degrades
// to the cached snapshot when one exists, otherwise to an empty list; the UI
// shows "no data" instead of crashing, so no error is returned.
func (s *Service) LoadAll(ctx context.Context) []models.Entry {
	bugList, err := s.bugs.ListOrderedByCreatedDesc(ctx)
	if err != nil {
		return s.degrade(ctx, err)
	}
	featureList, err := s.features.ListOrderedByCreatedDesc(ctx)
	if err != nil {
		return s.degrade(ctx, err)
	}

	merged := append(bugList, featureList...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	merged = s.sweepConversions(ctx, merged)

	s.mu.Lock()
	s.entries = merged
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Write(merged); err != nil {
			s.log.Warn(ctx, "snapshot write failed", "error", err)
		}
	}

	return s.All()
}

func (s *Service) degrade(ctx context.Context, cause error) []models.Entry {
	s.log.Error(ctx, "loading entries failed", "error", cause)

	var fallback []models.Entry
	if s.cache != nil {
		cached, ok, err := s.cache.Read()
		if err != nil {
			s.log.Warn(ctx, "snapshot read failed", "error", err)
		} else if ok {
			s.log.Info(ctx, "serving cached snapshot", "count", len(cached))
			fallback = cached
		}
	}

	s.mu.Lock()
	s.entries = fallback
	s.mu.Unlock()
	return s.All()
}

// sweepConversions drops stale conversion originals: any row whose id is
// referenced by another row's converted_from was already replaced, so its
// deletion is retried and the row removed from the session list. This makes
// the insert-then-delete conversion idempotent across sessions.
func (s *Service) sweepConversions(ctx context.Context, entries []models.Entry) []models.Entry {
	replaced := make(map[string]struct{})
	for _, e := range entries {
		if e.ConvertedFrom != "" {
			replaced[e.ConvertedFrom] = struct{}{}
		}
	}
	if len(replaced) == 0 {
		return entries
	}

	kept := entries[:0]
	for _, e := range entries {
		if _, stale := replaced[e.ID]; !stale {
			kept = append(kept, e)
			continue
		}
		s.log.Warn(ctx, "removing stale conversion original", "id", e.ID, "kind", e.Kind)
		if err := s.repoFor(e.Kind).DeleteByID(ctx, e.ID); err != nil {
			s.log.Warn(ctx, "stale original delete failed", "id", e.ID, "error", err)
		}
	}
	return kept
}

// entryRepo is the operation subset shared by both entry tables.
type entryRepo interface {
	Insert(ctx context.Context, e models.Entry) (models.Entry, error)
	UpdateFields(ctx context.Context, id string, patch models.EntryPatch) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

func (s *Service) repoFor(k models.Kind) entryRepo {
	if k == models.KindBug {
		return s.bugs
	}
	return s.features
}

// Create validates the draft and inserts it into the kind's collection. The
// new entry is prepended to the session list; a store failure leaves the list
// untouched.
func (s *Service) Create(ctx context.Context, draft models.NewEntryInput) (models.Entry, error) {
	if verr := validation.ValidateDraft(draft); verr != nil {
		return models.Entry{}, verr
	}

	stored, err := s.repoFor(draft.Kind).Insert(ctx, draft.Entry())
	if err != nil {
		return models.Entry{}, err
	}

	s.mu.Lock()
	s.entries = append([]models.Entry{stored}, s.entries...)
	s.mu.Unlock()

	s.writeSnapshot(ctx)
	return stored, nil
}

// SetPriority updates the entry's priority optimistically and reverts the
// in-memory value when the store write fails. Both mutation types share this
// rollback contract.
func (s *Service) SetPriority(ctx context.Context, id string, p models.Priority) error {
	if !p.Valid() {
		return fmt.Errorf("%w: unknown priority %q", common.ErrValidation, p)
	}

	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return common.ErrNotFound
	}
	kind := s.entries[i].Kind
	old := s.entries[i].Priority
	s.entries[i].Priority = p
	s.mu.Unlock()

	if err := s.repoFor(kind).UpdateFields(ctx, id, models.PatchPriority(p)); err != nil {
		s.mu.Lock()
		if j := s.index(id); j >= 0 {
			s.entries[j].Priority = old
		}
		s.mu.Unlock()
		return err
	}

	s.writeSnapshot(ctx)
	return nil
}

// SetStatus updates the entry's status optimistically and reverts the
// in-memory value when the store write fails.
func (s *Service) SetStatus(ctx context.Context, id string, st models.Status) error {
	if !st.Valid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrValidation, st)
	}

	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return common.ErrNotFound
	}
	kind := s.entries[i].Kind
	old := s.entries[i].Status
	s.entries[i].Status = st
	s.mu.Unlock()

	if err := s.repoFor(kind).UpdateFields(ctx, id, models.PatchStatus(st)); err != nil {
		s.mu.Lock()
		if j := s.index(id); j >= 0 {
			s.entries[j].Status = old
		}
		s.mu.Unlock()
		return err
	}

	s.writeSnapshot(ctx)
	return nil
}

// ConvertKind moves an entry to the other kind's collection: insert the
// reshaped record (keyed back to the original via converted_from), then delete
// the original. An insert failure aborts with nothing changed. A delete
// failure leaves both rows in the store; the session list keeps only the new
// entry, and the stale original is swept on the next LoadAll. The entry keeps
// its list position but receives the store-assigned new id.
func (s *Service) ConvertKind(ctx context.Context, id string, target models.Kind) (models.Entry, error) {
	if !target.Valid() {
		return models.Entry{}, fmt.Errorf("%w: unknown kind %q", common.ErrValidation, target)
	}

	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Entry{}, common.ErrNotFound
	}
	current := s.entries[i]
	s.mu.Unlock()

	if current.Kind == target {
		return current, nil
	}

	stored, err := s.repoFor(target).Insert(ctx, current.Converted(target))
	if err != nil {
		return models.Entry{}, err
	}

	var deleteErr error
	if err := s.repoFor(current.Kind).DeleteByID(ctx, current.ID); err != nil {
		s.log.Warn(ctx, "conversion original not deleted", "id", current.ID, "error", err)
		deleteErr = fmt.Errorf("original %s not removed: %w", current.ID, err)
	}

	s.mu.Lock()
	if j := s.index(id); j >= 0 {
		s.entries[j] = stored
	}
	s.mu.Unlock()

	s.writeSnapshot(ctx)
	return stored, deleteErr
}

// ClearAll deletes every entry from both collections and empties the session
// list and the snapshot. Callers gate this behind the PIN.
func (s *Service) ClearAll(ctx context.Context) (int, error) {
	var bugIDs, featureIDs []string
	for _, e := range s.All() {
		if e.Kind == models.KindBug {
			bugIDs = append(bugIDs, e.ID)
		} else {
			featureIDs = append(featureIDs, e.ID)
		}
	}

	if err := s.bugs.DeleteByIDs(ctx, bugIDs); err != nil {
		return 0, err
	}
	if err := s.features.DeleteByIDs(ctx, featureIDs); err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Erase(); err != nil {
			s.log.Warn(ctx, "snapshot erase failed", "error", err)
		}
	}

	return len(bugIDs) + len(featureIDs), nil
}

// writeSnapshot refreshes the disk snapshot after a successful mutation.
// Failures are logged, never surfaced; the snapshot is best-effort.
func (s *Service) writeSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Write(s.All()); err != nil {
		s.log.Warn(ctx, "snapshot write failed", "error", err)
	}
}
