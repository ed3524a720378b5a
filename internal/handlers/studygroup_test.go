package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavansurya09/StudyMate/internal/authz"
	"github.com/pavansurya09/StudyMate/internal/services"
	"github.com/pavansurya09/StudyMate/internal/store"
	"github.com/pavansurya09/StudyMate/internal/token"
	"github.com/pavansurya09/StudyMate/types"
)

func newGroupRouter() http.Handler {
	service := services.NewStudyGroupService(store.NewStudyGroupRepository(), authz.NewGate(nil))
	router := chi.NewRouter()
	router.Route("/groups", func(r chi.Router) {
		StudyGroupRouter(r, service)
	})
	return router
}

func postGroups(t *testing.T, handler http.Handler, tokenString, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/groups", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if tokenString != "" {
		req.Header.Set("Authorization", "Bearer "+tokenString)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func studentToken(t *testing.T) string {
	t.Helper()
	minted, err := token.Mint(types.User{ID: "u1", Name: "alice", Role: types.RoleStudent}, time.Now())
	require.NoError(t, err)
	return minted
}

func TestCreateGroupValidation(t *testing.T) {
	handler := newGroupRouter()
	tok := studentToken(t)
	when := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	rec := postGroups(t, handler, tok, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postGroups(t, handler, tok, `{"subject":"","venue":"Library","dateTime":"`+when+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postGroups(t, handler, tok, `{"subject":"Calc","venue":"Library","dateTime":"`+when+`","genderRestriction":"Other"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postGroups(t, handler, tok, `{"subject":"Calc","venue":"Library","dateTime":"`+when+`","visibility":"Secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateGroupDefaultsEnums(t *testing.T) {
	handler := newGroupRouter()
	when := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	rec := postGroups(t, handler, studentToken(t), `{"subject":"Calc","venue":"Library","dateTime":"`+when+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"genderRestriction":"All"`)
	assert.Contains(t, rec.Body.String(), `"visibility":"Public"`)
}

func TestBearerTokenParsing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, bearerToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, bearerToken(req))

	req.Header.Set("Authorization", "Bearer   abc.def.sig  ")
	assert.Equal(t, "abc.def.sig", bearerToken(req))

	req.Header.Set("Authorization", "bearer abc")
	assert.Equal(t, "abc", bearerToken(req))
}
