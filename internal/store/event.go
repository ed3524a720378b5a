package store

import "github.com/pavansurya09/StudyMate/types"

// EventRepository holds events in insertion order and owns the moderation
// status transition.
type EventRepository struct {
	events *collection[types.Event]
}

func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: newCollection(
			func(e types.Event) string { return e.ID },
			func(e *types.Event, id string) { e.ID = id },
		),
	}
}

// Create assigns the next sequential ID and stores the event. New events
// always start pending regardless of the status supplied.
func (r *EventRepository) Create(event types.Event) (types.Event, error) {
	event.Status = types.EventPending
	return r.events.append(event), nil
}

// List returns all events in insertion order.
func (r *EventRepository) List() ([]types.Event, error) {
	return r.events.all(), nil
}

// ListByStatus returns the events with the given status, insertion order
// preserved.
func (r *EventRepository) ListByStatus(status types.EventStatus) ([]types.Event, error) {
	return r.events.where(func(e types.Event) bool { return e.Status == status }), nil
}

// GetByID returns the event with the given ID.
func (r *EventRepository) GetByID(id string) (types.Event, error) {
	return r.events.byID(id)
}

// SetStatus overwrites the status of the event in place. A status that has
// already been decided is terminal: moving it again fails with
// ErrAlreadyDecided.
func (r *EventRepository) SetStatus(id string, status types.EventStatus) (types.Event, error) {
	return r.events.mutate(id, func(e *types.Event) error {
		if e.Status.Decided() {
			return ErrAlreadyDecided
		}
		e.Status = status
		return nil
	})
}
