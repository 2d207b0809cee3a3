package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Dashboard(ctx context.Context) error
	NewBug(ctx context.Context) error
	NewFeature(ctx context.Context) error
	Reports(ctx context.Context) error
	SetPriority(ctx context.Context, args []string) error
	SetStatus(ctx context.Context, args []string) error
	Convert(ctx context.Context, args []string) error
	Messages(ctx context.Context) error
	Compose(ctx context.Context) error
	ReadMessage(ctx context.Context, args []string) error
	Dismiss(ctx context.Context, args []string) error
	Export(ctx context.Context) error
	Settings(ctx context.Context) error
	Reload(ctx context.Context) error
}

const helpText = `Available commands:
  dashboard        show stat cards, chart and recent activity
  bug              submit a bug report
  feature          submit a feature request
  reports          list all entries
  priority <id>    change an entry's priority
  status <id>      change an entry's status
  convert <id>     convert an entry to the other kind
  messages         list messages
  compose          compose a message (PIN required)
  read <id>        mark a message as read
  dismiss <id>     dismiss a message
  export           export all entries to a JSON file
  settings         settings and maintenance (PIN required)
  reload           reload the session list from the store
  exit | quit      leave the program`

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers notify
// the user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nymph %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "bug":
			_ = a.NewBug(ctx)

		case "feature":
			_ = a.NewFeature(ctx)

		case "r", "reports":
			_ = a.Reports(ctx)

		case "priority":
			_ = a.SetPriority(ctx, args)

		case "status":
			_ = a.SetStatus(ctx, args)

		case "convert":
			_ = a.Convert(ctx, args)

		case "m", "messages":
			_ = a.Messages(ctx)

		case "compose":
			_ = a.Compose(ctx)

		case "read":
			_ = a.ReadMessage(ctx, args)

		case "dismiss":
			_ = a.Dismiss(ctx, args)

		case "export":
			_ = a.Export(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
