package cli

import (
	"context"
	"fmt"

	"github.com/nymphhq/nymph/internal/models"
	"github.com/nymphhq/nymph/internal/notify"
)

// SetPriority changes an entry's priority. The entry keeps its previous
// priority if the store rejects the change.
func (a *App) SetPriority(ctx context.Context, args []string) error {
	e, err := a.resolveEntry(args)
	if err != nil {
		return err
	}

	options := make([]string, len(models.Priorities))
	current := 0
	for i, p := range models.Priorities {
		options[i] = string(p)
		if p == e.Priority {
			current = i
		}
	}
	idx, err := GetChoice(a.reader, fmt.Sprintf("Priority for %q (now %s)", e.Title, e.Priority), options, current, a.out)
	if err != nil {
		return err
	}

	if err := a.tracker.SetPriority(ctx, e.ID, models.Priorities[idx]); err != nil {
		a.notifier.Notify(notify.Error, "Priority change failed, value restored: %v", err)
		return err
	}
	a.notifier.Notify(notify.Success, "Priority set to %s", models.Priorities[idx])
	return nil
}

// SetStatus changes an entry's status with the same rollback behavior as
// SetPriority.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	e, err := a.resolveEntry(args)
	if err != nil {
		return err
	}

	options := make([]string, len(models.Statuses))
	current := 0
	for i, s := range models.Statuses {
		options[i] = string(s)
		if s == e.Status {
			current = i
		}
	}
	idx, err := GetChoice(a.reader, fmt.Sprintf("Status for %q (now %s)", e.Title, e.Status), options, current, a.out)
	if err != nil {
		return err
	}

	if err := a.tracker.SetStatus(ctx, e.ID, models.Statuses[idx]); err != nil {
		a.notifier.Notify(notify.Error, "Status change failed, value restored: %v", err)
		return err
	}
	a.notifier.Notify(notify.Success, "Status set to %s", models.Statuses[idx])
	return nil
}

// Convert switches an entry to the other kind. The entry gets a new id; the
// old row is removed once the new one is stored.
func (a *App) Convert(ctx context.Context, args []string) error {
	e, err := a.resolveEntry(args)
	if err != nil {
		return err
	}

	target := e.Kind.Other()
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Convert %q from %s to %s? (y/N)", e.Title, e.Kind, target), a.out)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		printlnFn("Cancelled")
		return nil
	}

	stored, err := a.tracker.ConvertKind(ctx, e.ID, target)
	if err != nil {
		if stored.ID != "" {
			// converted, but the old row lingers until the next reload
			a.notifier.Notify(notify.Warning, "Converted to %s (new id %s), cleanup pending: %v", target, stored.ID, err)
			return nil
		}
		a.notifier.Notify(notify.Error, "Conversion failed: %v", err)
		return err
	}
	a.notifier.Notify(notify.Success, "Converted to %s (new id %s)", target, stored.ID)
	return nil
}
