// Package notify prints toast-style one-line notifications to the terminal.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level selects the color of a notification.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

var levelColors = map[Level]*color.Color{
	Info:    color.New(color.FgCyan),
	Success: color.New(color.FgGreen),
	Warning: color.New(color.FgYellow),
	Error:   color.New(color.FgRed),
}

// Notifier writes colored notifications to Out. Safe for concurrent use,
// which matters for deferred notifications firing from timer goroutines.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

func New(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Notify prints one line colored by level.
func (n *Notifier) Notify(level Level, format string, args ...any) {
	n.mu.Lock()
	defer n.mu.Unlock()

	c, ok := levelColors[level]
	if !ok {
		c = levelColors[Info]
	}
	fmt.Fprintln(n.out, c.Sprintf(format, args...))
}

// NotifyAfter prints the notification after the given delay. The returned
// timer can be stopped if the advisory is no longer relevant.
func (n *Notifier) NotifyAfter(delay time.Duration, level Level, format string, args ...any) *time.Timer {
	return time.AfterFunc(delay, func() {
		n.Notify(level, format, args...)
	})
}
