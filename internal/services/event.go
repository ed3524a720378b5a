package services

import (
	"time"

	"github.com/pavansurya09/StudyMate/internal/authz"
	"github.com/pavansurya09/StudyMate/types"
)

// EventRepository defines the store operations events need.
type EventRepository interface {
	Create(event types.Event) (types.Event, error)
	ListByStatus(status types.EventStatus) ([]types.Event, error)
	SetStatus(id string, status types.EventStatus) (types.Event, error)
}

// SubmitEventInput carries the caller-supplied fields of a new event.
type SubmitEventInput struct {
	Title       string
	Type        string
	Venue       string
	Description string
	DateTime    time.Time
}

// EventService encapsulates event use-cases, including the admin-gated
// moderation transitions.
type EventService struct {
	repo EventRepository
	gate *authz.Gate
}

func NewEventService(repo EventRepository, gate *authz.Gate) *EventService {
	return &EventService{repo: repo, gate: gate}
}

// ListApproved returns events that have passed moderation. Public read.
func (s *EventService) ListApproved() ([]types.Event, error) {
	return s.repo.ListByStatus(types.EventApproved)
}

// Submit stores a new pending event on behalf of the token's bearer.
func (s *EventService) Submit(tokenString string, input SubmitEventInput) (types.Event, error) {
	claims, err := s.gate.RequireAuthenticated(tokenString)
	if err != nil {
		return types.Event{}, err
	}

	return s.repo.Create(types.Event{
		Title:       input.Title,
		Type:        input.Type,
		Venue:       input.Venue,
		Description: input.Description,
		DateTime:    input.DateTime,
		SubmittedBy: claims.User().Ref(),
	})
}

// ListPending returns events awaiting moderation. Admin only.
func (s *EventService) ListPending(tokenString string) ([]types.Event, error) {
	if _, err := s.gate.RequireAdmin(tokenString); err != nil {
		return nil, err
	}
	return s.repo.ListByStatus(types.EventPending)
}

// Approve moves a pending event to approved. Admin only.
func (s *EventService) Approve(tokenString, eventID string) (types.Event, error) {
	if _, err := s.gate.RequireAdmin(tokenString); err != nil {
		return types.Event{}, err
	}
	return s.repo.SetStatus(eventID, types.EventApproved)
}

// Reject moves a pending event to rejected. Admin only.
func (s *EventService) Reject(tokenString, eventID string) (types.Event, error) {
	if _, err := s.gate.RequireAdmin(tokenString); err != nil {
		return types.Event{}, err
	}
	return s.repo.SetStatus(eventID, types.EventRejected)
}
