package models

import "time"

// MessageType classifies a communication attached to an entry. The values are
// the wire strings of the user_communications table.
type MessageType string

const (
	MessageInfoRequest   MessageType = "info_request"
	MessageClarification MessageType = "clarification"
	MessageRejection     MessageType = "rejection"
	MessageStatusUpdate  MessageType = "update"
	MessageGeneral       MessageType = "general"
)

// MessageTypes lists all message types in composer order.
var MessageTypes = []MessageType{
	MessageInfoRequest, MessageClarification, MessageRejection, MessageStatusUpdate, MessageGeneral,
}

// SubjectPrefix is prepended to the related entry's title when composing.
func (t MessageType) SubjectPrefix() string {
	switch t {
	case MessageInfoRequest:
		return "Need More Information: "
	case MessageClarification:
		return "Clarification Needed: "
	case MessageRejection:
		return "Unable to Proceed: "
	case MessageStatusUpdate:
		return "Status Update: "
	default:
		return "Regarding: "
	}
}

// MessagePriority of a communication. Distinct vocabulary from entry
// priorities, kept lowercase on the wire.
type MessagePriority string

const (
	MessagePriorityLow    MessagePriority = "low"
	MessagePriorityNormal MessagePriority = "normal"
	MessagePriorityHigh   MessagePriority = "high"
	MessagePriorityUrgent MessagePriority = "urgent"
)

var MessagePriorities = []MessagePriority{
	MessagePriorityLow, MessagePriorityNormal, MessagePriorityHigh, MessagePriorityUrgent,
}

// Message is one communication between the admin and a submitter, tied to a
// specific entry. Messages are append-only: created, possibly read, possibly
// deleted, never edited and never unread again.
type Message struct {
	ID               string          `json:"id"`
	RelatedEntryID   string          `json:"item_id"`
	RelatedEntryKind Kind            `json:"item_type"`
	Type             MessageType     `json:"message_type"`
	Subject          string          `json:"subject"`
	Body             string          `json:"message"`
	Priority         MessagePriority `json:"priority"`
	FromAdmin        bool            `json:"from_admin"`
	IsRead           bool            `json:"is_read"`
	CreatedAt        time.Time       `json:"created_at"`
	ReadAt           *time.Time      `json:"read_at,omitempty"`
}

// NewMessageInput is an admin-composed draft, not yet validated.
type NewMessageInput struct {
	RelatedEntryID   string
	RelatedEntryKind Kind
	Type             MessageType
	Subject          string
	Body             string
	Priority         MessagePriority
}
