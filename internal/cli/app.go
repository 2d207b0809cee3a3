// Package cli implements the interactive terminal frontend: a REPL over the
// tracker, messaging, export and settings surfaces.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/nymphhq/nymph/internal/auth"
	"github.com/nymphhq/nymph/internal/config"
	"github.com/nymphhq/nymph/internal/export"
	"github.com/nymphhq/nymph/internal/logging"
	"github.com/nymphhq/nymph/internal/messaging"
	"github.com/nymphhq/nymph/internal/notify"
	"github.com/nymphhq/nymph/internal/tracker"
)

type App struct {
	config    *config.Config
	tracker   *tracker.Service
	messaging *messaging.Service
	gate      *auth.Gate
	exporter  *export.Exporter
	notifier  *notify.Notifier
	log       logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// sessionToken holds the current admin session, empty when locked.
	sessionToken string
}

func NewApp(c *config.Config, t *tracker.Service, m *messaging.Service, gate *auth.Gate, exporter *export.Exporter, notifier *notify.Notifier, log logging.Logger) *App {
	return &App{
		config:    c,
		tracker:   t,
		messaging: m,
		gate:      gate,
		exporter:  exporter,
		notifier:  notifier,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       color.Output,
	}
}

// Run loads the session list and enters the REPL. It returns when the user
// exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	entries := a.tracker.LoadAll(ctx)
	a.log.Info(ctx, "session list loaded", "entries", len(entries))

	printlnFn("Welcome to Nymph (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	unread := messaging.UnreadCount(a.messaging.List(context.Background()))
	if unread > 0 {
		return color.New(color.FgYellow).Sprintf("(%d unread)", unread)
	}
	return ""
}

func (a *App) isUnlocked() bool {
	return a.gate.Check(a.sessionToken) == nil
}
