package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/nymphhq/nymph/internal/models"
	"github.com/nymphhq/nymph/internal/notify"
	"github.com/nymphhq/nymph/internal/views"
)

// Reports lists every entry with its id, most recent first.
func (a *App) Reports(ctx context.Context) error {
	rows := views.TableRows(a.tracker.All())
	if len(rows) == 0 {
		printlnFn("No entries yet. Type 'bug' or 'feature' to submit one.")
		return nil
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Kind"), bold.Sprint("Name"), bold.Sprint("Priority"), bold.Sprint("Status"), bold.Sprint("Created"))
	for _, e := range rows {
		tbl.AddRow(e.ID, string(e.Kind), e.Title, string(e.Priority), string(e.Status), e.DateOnly())
	}
	fmt.Fprintln(a.out, tbl)

	return nil
}

// Reload refreshes the session list from the backing store.
func (a *App) Reload(ctx context.Context) error {
	entries := a.tracker.LoadAll(ctx)
	a.notifier.Notify(notify.Info, "Reloaded %d entries", len(entries))
	return nil
}

// resolveEntry finds an entry by id, taking the id either from args or from an
// interactive prompt.
func (a *App) resolveEntry(args []string) (models.Entry, error) {
	id := ""
	if len(args) > 0 {
		id = args[0]
	} else {
		var err error
		if id, err = GetSimpleText(a.reader, "Entry ID", a.out); err != nil {
			return models.Entry{}, err
		}
	}

	e, err := a.tracker.Get(id)
	if err != nil {
		a.notifier.Notify(notify.Error, "No entry with id %q", id)
		return models.Entry{}, err
	}
	return e, nil
}
