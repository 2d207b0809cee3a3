package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nymphhq/nymph/internal/models"
	"github.com/nymphhq/nymph/internal/notify"
	"github.com/nymphhq/nymph/internal/validation"
)

// verificationDelay is how long after submission the advisory about a
// likely-incomplete bug report is shown.
const verificationDelay = 2 * time.Second

// NewBug walks the user through the bug report form and submits the draft.
func (a *App) NewBug(ctx context.Context) error {
	draft := models.NewEntryInput{Kind: models.KindBug}

	var err error
	if draft.Title, err = GetSimpleText(a.reader, "Feature name", a.out); err != nil {
		return err
	}
	if draft.ExpectedBehavior, err = GetSimpleText(a.reader, "Expected behavior", a.out); err != nil {
		return err
	}
	if draft.ActualBehavior, err = GetSimpleText(a.reader, "Actual behavior", a.out); err != nil {
		return err
	}
	if draft.ErrorCode, err = GetSimpleText(a.reader, "Error code (optional)", a.out); err != nil {
		return err
	}
	if draft.ErrorMessage, err = GetSimpleText(a.reader, "Error message (optional)", a.out); err != nil {
		return err
	}
	if err = a.pickPriority(&draft); err != nil {
		return err
	}

	return a.submit(ctx, draft, "Bug report submitted")
}

// NewFeature walks the user through the feature request form and submits the
// draft.
func (a *App) NewFeature(ctx context.Context) error {
	draft := models.NewEntryInput{Kind: models.KindFeature}

	var err error
	if draft.Title, err = GetSimpleText(a.reader, "Feature name", a.out); err != nil {
		return err
	}
	if draft.ExpectedBehavior, err = GetSimpleText(a.reader, "Describe the feature", a.out); err != nil {
		return err
	}
	if draft.Importance, err = GetIntInRange(a.reader, "Importance", 1, 10, models.DefaultImportance, a.out); err != nil {
		return err
	}
	if draft.Desirability, err = GetIntInRange(a.reader, "Desirability", 1, 10, models.DefaultDesirability, a.out); err != nil {
		return err
	}
	if err = a.pickPriority(&draft); err != nil {
		return err
	}

	return a.submit(ctx, draft, "Feature request submitted")
}

func (a *App) pickPriority(draft *models.NewEntryInput) error {
	options := make([]string, len(models.Priorities))
	for i, p := range models.Priorities {
		options[i] = string(p)
	}
	idx, err := GetChoice(a.reader, "Priority", options, 1, a.out)
	if err != nil {
		return err
	}
	draft.Priority = models.Priorities[idx]
	return nil
}

func (a *App) submit(ctx context.Context, draft models.NewEntryInput, successMsg string) error {
	stored, err := a.tracker.Create(ctx, draft)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				a.notifier.Notify(notify.Error, "%s: %s", f.Field, f.Message)
			}
			return err
		}
		a.notifier.Notify(notify.Error, "Submission failed: %v", err)
		return err
	}

	a.notifier.Notify(notify.Success, "%s (%s)", successMsg, stored.ID)

	if issues := validation.NeedsVerification(stored); len(issues) > 0 {
		a.notifier.NotifyAfter(verificationDelay, notify.Warning,
			"This report may need more detail: %s", strings.Join(issues, "; "))
	}

	return nil
}
