package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pavansurya09/StudyMate/internal/services"
)

// EventHandler provides HTTP handlers for events and their moderation.
type EventHandler struct {
	service *services.EventService
}

func NewEventHandler(service *services.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// EventRouter registers event routes on the given router.
func EventRouter(r chi.Router, service *services.EventService) {
	handler := NewEventHandler(service)

	r.Get("/", handler.ListApproved)
	r.Post("/", handler.SubmitEvent)
	r.Get("/pending", handler.ListPending)
	r.Route("/{eventID}", func(r chi.Router) {
		r.Post("/approve", handler.ApproveEvent)
		r.Post("/reject", handler.RejectEvent)
	})
}

// ListApproved returns events that have passed moderation. Public read.
func (h *EventHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListApproved()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// SubmitEvent stores a new pending event for the authenticated caller.
func (h *EventHandler) SubmitEvent(w http.ResponseWriter, r *http.Request) {
	var req SubmitEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidBody.Error())
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Type = strings.TrimSpace(req.Type)
	req.Venue = strings.TrimSpace(req.Venue)
	if req.Title == "" || req.Venue == "" || req.DateTime.IsZero() {
		writeError(w, http.StatusBadRequest, errMissingFields.Error())
		return
	}

	created, err := h.service.Submit(bearerToken(r), services.SubmitEventInput{
		Title:       req.Title,
		Type:        req.Type,
		Venue:       req.Venue,
		Description: req.Description,
		DateTime:    req.DateTime,
	})
	if err != nil {
		writeDomainError(w, err, "failed to submit event")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListPending returns events awaiting moderation. Admin only.
func (h *EventHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListPending(bearerToken(r))
	if err != nil {
		writeDomainError(w, err, "failed to list pending events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// ApproveEvent moves a pending event to approved. Admin only.
func (h *EventHandler) ApproveEvent(w http.ResponseWriter, r *http.Request) {
	updated, err := h.service.Approve(bearerToken(r), chi.URLParam(r, "eventID"))
	if err != nil {
		writeDomainError(w, err, "failed to approve event")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// RejectEvent moves a pending event to rejected. Admin only.
func (h *EventHandler) RejectEvent(w http.ResponseWriter, r *http.Request) {
	updated, err := h.service.Reject(bearerToken(r), chi.URLParam(r, "eventID"))
	if err != nil {
		writeDomainError(w, err, "failed to reject event")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SubmitEventRequest is the JSON payload for submitting an event.
type SubmitEventRequest struct {
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime"`
}
