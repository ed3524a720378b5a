package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pavansurya09/StudyMate/internal/services"
	"github.com/pavansurya09/StudyMate/types"
)

// StudyGroupHandler provides HTTP handlers for study groups.
type StudyGroupHandler struct {
	service *services.StudyGroupService
}

func NewStudyGroupHandler(service *services.StudyGroupService) *StudyGroupHandler {
	return &StudyGroupHandler{service: service}
}

// StudyGroupRouter registers study group routes on the given router.
func StudyGroupRouter(r chi.Router, service *services.StudyGroupService) {
	handler := NewStudyGroupHandler(service)

	r.Get("/", handler.ListGroups)
	r.Post("/", handler.CreateGroup)
}

// ListGroups returns every study group. Public read.
func (h *StudyGroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list study groups")
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// CreateGroup stores a new group for the authenticated caller.
func (h *StudyGroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	req, err := parseCreateGroupRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(bearerToken(r), req)
	if err != nil {
		writeDomainError(w, err, "failed to create study group")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// CreateGroupRequest is the JSON payload for creating a study group.
type CreateGroupRequest struct {
	Subject           string    `json:"subject"`
	Venue             string    `json:"venue"`
	DateTime          time.Time `json:"dateTime"`
	GenderRestriction string    `json:"genderRestriction"`
	Visibility        string    `json:"visibility"`
}

func parseCreateGroupRequest(r *http.Request) (services.CreateStudyGroupInput, error) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return services.CreateStudyGroupInput{}, errInvalidBody
	}

	req.Subject = strings.TrimSpace(req.Subject)
	req.Venue = strings.TrimSpace(req.Venue)
	if req.Subject == "" || req.Venue == "" || req.DateTime.IsZero() {
		return services.CreateStudyGroupInput{}, errMissingFields
	}

	restriction, err := parseGenderRestriction(req.GenderRestriction)
	if err != nil {
		return services.CreateStudyGroupInput{}, err
	}
	visibility, err := parseVisibility(req.Visibility)
	if err != nil {
		return services.CreateStudyGroupInput{}, err
	}

	return services.CreateStudyGroupInput{
		Subject:           req.Subject,
		Venue:             req.Venue,
		DateTime:          req.DateTime,
		GenderRestriction: restriction,
		Visibility:        visibility,
	}, nil
}

func parseGenderRestriction(raw string) (types.GenderRestriction, error) {
	switch types.GenderRestriction(raw) {
	case types.GenderAll, types.GenderMale, types.GenderFemale:
		return types.GenderRestriction(raw), nil
	case "":
		return types.GenderAll, nil
	default:
		return "", errInvalidRestriction
	}
}

func parseVisibility(raw string) (types.Visibility, error) {
	switch types.Visibility(raw) {
	case types.VisibilityPublic, types.VisibilityCollegeOnly, types.VisibilityInviteOnly:
		return types.Visibility(raw), nil
	case "":
		return types.VisibilityPublic, nil
	default:
		return "", errInvalidVisibility
	}
}
