package types

import "time"

// EventStatus is the moderation state of an event. Status moves from
// pending to approved or rejected and is terminal once decided.
type EventStatus string

const (
	EventPending  EventStatus = "pending"
	EventApproved EventStatus = "approved"
	EventRejected EventStatus = "rejected"
)

// Decided reports whether the status is terminal.
func (s EventStatus) Decided() bool {
	return s == EventApproved || s == EventRejected
}

// Event is a campus event submitted by a user and moderated by an admin.
type Event struct {
	// ID is the unique identifier of the event, assigned sequentially.
	ID string `json:"id"`

	// Title is the display title of the event.
	Title string `json:"title"`

	// Type is a free-text category such as "Workshop" or "Hackathon".
	Type string `json:"type"`

	// Venue is where the event takes place.
	Venue string `json:"venue"`

	// Description is the long-form description of the event.
	Description string `json:"description"`

	// DateTime is when the event takes place.
	DateTime time.Time `json:"dateTime"`

	// Status is the moderation state. New events always start pending.
	Status EventStatus `json:"status"`

	// SubmittedBy is a snapshot of the submitting user.
	SubmittedBy UserRef `json:"submittedBy"`
}
