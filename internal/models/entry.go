// Package models defines the tracker's domain types: entries (bug reports and
// feature requests), messages, and the enums they share. Wire values match the
// relational backend's snake_case vocabulary.
package models

import "time"

// Kind discriminates bug reports from feature requests. The kind decides which
// optional fields are meaningful and which table backs the entry.
type Kind string

const (
	KindBug     Kind = "bug"
	KindFeature Kind = "feature"
)

// Other returns the opposite kind.
func (k Kind) Other() Kind {
	if k == KindBug {
		return KindFeature
	}
	return KindBug
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindBug || k == KindFeature
}

// Priority of an entry.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityNormal   Priority = "Normal"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Priorities lists all priorities in display order.
var Priorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// Status of an entry.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// Statuses lists all statuses in display order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Defaults for kind-specific fields supplied on creation and conversion.
const (
	DefaultImportance     = 5
	DefaultDesirability   = 5
	DefaultActualBehavior = "Not working as expected"
)

// Entry is one tracked item. The ID is an opaque token assigned by the backing
// store; it is stable only within one kind's table, so a kind conversion
// produces a new ID.
type Entry struct {
	ID               string    `json:"id"`
	Kind             Kind      `json:"type"`
	Title            string    `json:"featureName"`
	ExpectedBehavior string    `json:"expectedBehavior"`
	ActualBehavior   string    `json:"actualBehavior,omitempty"`
	ErrorCode        string    `json:"errorCode,omitempty"`
	ErrorMessage     string    `json:"errorMessage,omitempty"`
	Importance       int       `json:"featureImportance,omitempty"`
	Desirability     int       `json:"desirability,omitempty"`
	Priority         Priority  `json:"priority"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`

	// ConvertedFrom holds the ID the entry replaced during a kind
	// conversion, empty otherwise.
	ConvertedFrom string `json:"-"`
}

// DateOnly is the calendar day of CreatedAt, used for activity ordering and
// display.
func (e Entry) DateOnly() string {
	return e.CreatedAt.Format(time.DateOnly)
}

// NewEntryInput is a user-submitted draft, not yet validated.
type NewEntryInput struct {
	Kind             Kind
	Title            string
	ExpectedBehavior string
	ActualBehavior   string
	ErrorCode        string
	ErrorMessage     string
	Importance       int
	Desirability     int
	Priority         Priority
	Status           Status
}

// Entry materializes the draft with kind invariants applied: a feature never
// carries bug fields and vice versa, and unset values get their defaults.
func (in NewEntryInput) Entry() Entry {
	e := Entry{
		Kind:             in.Kind,
		Title:            in.Title,
		ExpectedBehavior: in.ExpectedBehavior,
		Priority:         in.Priority,
		Status:           in.Status,
	}
	if e.Priority == "" {
		e.Priority = PriorityNormal
	}
	if e.Status == "" {
		e.Status = StatusOpen
	}
	switch in.Kind {
	case KindBug:
		e.ActualBehavior = in.ActualBehavior
		e.ErrorCode = in.ErrorCode
		e.ErrorMessage = in.ErrorMessage
	case KindFeature:
		e.Importance = in.Importance
		e.Desirability = in.Desirability
		if e.Importance == 0 {
			e.Importance = DefaultImportance
		}
		if e.Desirability == 0 {
			e.Desirability = DefaultDesirability
		}
	}
	return e
}

// Converted returns the entry reshaped for the target kind: shared fields are
// carried over, fields of the kind being left are re-nulled, and fields of the
// kind being entered get defaults where the entry has nothing to carry. The
// returned entry has no ID; the store assigns a fresh one on insert.
func (e Entry) Converted(target Kind) Entry {
	out := Entry{
		Kind:             target,
		Title:            e.Title,
		ExpectedBehavior: e.ExpectedBehavior,
		Priority:         e.Priority,
		Status:           e.Status,
		ConvertedFrom:    e.ID,
	}
	switch target {
	case KindBug:
		out.ActualBehavior = e.ActualBehavior
		if out.ActualBehavior == "" {
			out.ActualBehavior = DefaultActualBehavior
		}
		out.ErrorCode = e.ErrorCode
		out.ErrorMessage = e.ErrorMessage
	case KindFeature:
		out.Importance = e.Importance
		out.Desirability = e.Desirability
		if out.Importance == 0 {
			out.Importance = DefaultImportance
		}
		if out.Desirability == 0 {
			out.Desirability = DefaultDesirability
		}
	}
	return out
}
