package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pavansurya09/StudyMate/internal/authz"
	"github.com/pavansurya09/StudyMate/internal/store"
	"github.com/pavansurya09/StudyMate/internal/token"
	"github.com/pavansurya09/StudyMate/types"
)

// AuthHandler provides the authentication endpoints.
type AuthHandler struct {
	users *store.UserRepository
	gate  *authz.Gate
	now   func() time.Time
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(users *store.UserRepository, gate *authz.Gate) *AuthHandler {
	return &AuthHandler{users: users, gate: gate, now: time.Now}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, users *store.UserRepository, gate *authz.Gate) {
	handler := NewAuthHandler(users, gate)

	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
	r.Get("/me", handler.Me)
}

// Register creates a new user account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	if _, err := h.users.Register(types.RegisterData{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		College:  strings.TrimSpace(req.College),
	}); err != nil {
		writeDomainError(w, err, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{Success: true})
}

// Login verifies credentials and returns a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	user, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err, "failed to authenticate")
		return
	}

	minted, err := token.Mint(user, h.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create token")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Token: minted, User: user})
}

// Me returns the identity carried by the caller's token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := h.gate.RequireAuthenticated(bearerToken(r))
	if err != nil {
		writeDomainError(w, err, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, claims.User())
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	College  string `json:"college"`
}

type RegisterResponse struct {
	Success bool `json:"success"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}
