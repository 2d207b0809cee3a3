package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/nymphhq/nymph/internal/messaging"
	"github.com/nymphhq/nymph/internal/models"
	"github.com/nymphhq/nymph/internal/notify"
)

// Messages lists the visible messages, unread ones highlighted.
func (a *App) Messages(ctx context.Context) error {
	all := a.messaging.List(ctx)
	if len(all) == 0 {
		printlnFn("No messages.")
		return nil
	}

	bold := color.New(color.Bold)
	unreadMark := color.New(color.FgYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.AddRow(bold.Sprint(""), bold.Sprint("ID"), bold.Sprint("Subject"), bold.Sprint("Priority"), bold.Sprint("Received"))
	for _, m := range messaging.Visible(all) {
		mark := " "
		if !m.IsRead {
			mark = unreadMark.Sprint("●")
		}
		tbl.AddRow(mark, m.ID, m.Subject, string(m.Priority), m.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(a.out, tbl)

	if unread := messaging.UnreadCount(all); unread > 0 {
		fmt.Fprintf(a.out, "%d unread. Type 'read <id>' to open a message.\n", unread)
	}
	if len(all) > messaging.VisibleLimit {
		fmt.Fprintf(a.out, "Showing %d of %d messages.\n", messaging.VisibleLimit, len(all))
	}

	return nil
}

// Compose creates a message attached to an entry. Requires an admin session.
func (a *App) Compose(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	e, err := a.resolveEntry(nil)
	if err != nil {
		return err
	}

	typeOptions := make([]string, len(models.MessageTypes))
	for i, t := range models.MessageTypes {
		typeOptions[i] = string(t)
	}
	typeIdx, err := GetChoice(a.reader, "Message type", typeOptions, len(models.MessageTypes)-1, a.out)
	if err != nil {
		return err
	}
	msgType := models.MessageTypes[typeIdx]

	subject := msgType.SubjectPrefix() + e.Title

	body, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}

	prioOptions := make([]string, len(models.MessagePriorities))
	for i, p := range models.MessagePriorities {
		prioOptions[i] = string(p)
	}
	prioIdx, err := GetChoice(a.reader, "Priority", prioOptions, 1, a.out)
	if err != nil {
		return err
	}

	sent, err := a.messaging.Send(ctx, models.NewMessageInput{
		RelatedEntryID:   e.ID,
		RelatedEntryKind: e.Kind,
		Type:             msgType,
		Subject:          subject,
		Body:             body,
		Priority:         models.MessagePriorities[prioIdx],
	})
	if err != nil {
		a.notifier.Notify(notify.Error, "Message not sent: %v", err)
		return err
	}

	a.notifier.Notify(notify.Success, "Message sent (%s)", sent.ID)
	return nil
}

// ReadMessage marks a message as read and prints it.
func (a *App) ReadMessage(ctx context.Context, args []string) error {
	id, err := a.messageID(args)
	if err != nil {
		return err
	}

	var msg *models.Message
	for _, m := range a.messaging.List(ctx) {
		if m.ID == id {
			msg = &m
			break
		}
	}
	if msg == nil {
		a.notifier.Notify(notify.Error, "No message with id %q", id)
		return nil
	}

	if err := a.messaging.MarkRead(ctx, id); err != nil {
		a.notifier.Notify(notify.Error, "Could not mark as read: %v", err)
		return err
	}

	bold := color.New(color.Bold)
	fmt.Fprintln(a.out, bold.Sprint(msg.Subject))
	fmt.Fprintf(a.out, "Type: %s  Priority: %s  Received: %s\n\n", msg.Type, msg.Priority, msg.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(a.out, msg.Body)

	return nil
}

// Dismiss removes a message. Dismissing an already-removed message succeeds.
func (a *App) Dismiss(ctx context.Context, args []string) error {
	id, err := a.messageID(args)
	if err != nil {
		return err
	}

	if err := a.messaging.Dismiss(ctx, id); err != nil {
		a.notifier.Notify(notify.Error, "Could not dismiss: %v", err)
		return err
	}
	a.notifier.Notify(notify.Info, "Message dismissed")
	return nil
}

func (a *App) messageID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, "Message ID", a.out)
}
