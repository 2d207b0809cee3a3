package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/nymphhq/nymph/internal/notify"
)

// requireSession makes sure an admin session is live, prompting for the PIN
// when there is none or it has expired.
func (a *App) requireSession() error {
	if a.isUnlocked() {
		return nil
	}

	pin, err := GetPIN(a.out)
	if err != nil {
		return err
	}
	defer wipe(pin)

	token, err := a.gate.Unlock(pin)
	if err != nil {
		a.notifier.Notify(notify.Error, "Incorrect PIN")
		return err
	}

	a.sessionToken = token
	return nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Settings shows store information and offers the clear-all action. Requires
// an admin session.
func (a *App) Settings(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	bold := color.New(color.Bold)
	fmt.Fprintln(a.out, bold.Sprint("\nSettings"))
	fmt.Fprintf(a.out, "Mode:     %s\n", a.config.Mode)
	fmt.Fprintf(a.out, "Entries:  %d\n", len(a.tracker.All()))
	fmt.Fprintf(a.out, "Exports:  %s\n", a.config.ExportDir)
	fmt.Fprintln(a.out)

	answer, err := GetSimpleText(a.reader, "Type 'clear' to delete ALL entries, or press Enter to go back", a.out)
	if err != nil {
		return err
	}
	if answer != "clear" {
		return nil
	}

	confirm, err := GetSimpleText(a.reader, "This cannot be undone. Type 'DELETE' to confirm", a.out)
	if err != nil {
		return err
	}
	if confirm != "DELETE" {
		printlnFn("Cancelled")
		return nil
	}

	n, err := a.tracker.ClearAll(ctx)
	if err != nil {
		a.notifier.Notify(notify.Error, "Clear failed, nothing deleted: %v", err)
		return err
	}
	a.notifier.Notify(notify.Success, "Deleted %d entries", n)
	return nil
}

// Export writes the session list to a dated JSON file and, when configured,
// mirrors it to object storage.
func (a *App) Export(ctx context.Context) error {
	path, err := a.exporter.Export(ctx, a.tracker.All())
	if err != nil {
		if path != "" {
			a.notifier.Notify(notify.Warning, "Exported to %s, upload failed: %v", path, err)
			return nil
		}
		a.notifier.Notify(notify.Error, "Export failed: %v", err)
		return err
	}
	a.notifier.Notify(notify.Success, "Exported to %s", path)
	return nil
}
