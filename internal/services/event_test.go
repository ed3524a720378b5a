package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavansurya09/StudyMate/internal/authz"
	"github.com/pavansurya09/StudyMate/internal/store"
	"github.com/pavansurya09/StudyMate/internal/token"
	"github.com/pavansurya09/StudyMate/types"
)

func mintTestToken(t *testing.T, role types.Role) string {
	t.Helper()
	minted, err := token.Mint(types.User{ID: "u1", Name: "alice", Email: "alice@school.edu", Role: role}, time.Now())
	require.NoError(t, err)
	return minted
}

func newTestEventService() *EventService {
	return NewEventService(store.NewEventRepository(), authz.NewGate(nil))
}

func TestSubmitSnapshotsCaller(t *testing.T) {
	svc := newTestEventService()

	created, err := svc.Submit(mintTestToken(t, types.RoleStudent), SubmitEventInput{
		Title:    "Workshop",
		Type:     "Workshop",
		Venue:    "Room 1",
		DateTime: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, types.EventPending, created.Status)
	assert.Equal(t, types.UserRef{ID: "u1", Name: "alice"}, created.SubmittedBy)
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	svc := newTestEventService()

	_, err := svc.Submit("", SubmitEventInput{Title: "x"})
	assert.ErrorIs(t, err, authz.ErrUnauthorized)
}

func TestModerationRequiresAdmin(t *testing.T) {
	svc := newTestEventService()
	student := mintTestToken(t, types.RoleStudent)

	_, err := svc.ListPending(student)
	assert.ErrorIs(t, err, authz.ErrForbidden)

	_, err = svc.Approve(student, "1")
	assert.ErrorIs(t, err, authz.ErrForbidden)

	_, err = svc.Reject("", "1")
	assert.ErrorIs(t, err, authz.ErrUnauthorized)
}

func TestModerationLifecycle(t *testing.T) {
	svc := newTestEventService()
	admin := mintTestToken(t, types.RoleAdmin)

	created, err := svc.Submit(mintTestToken(t, types.RoleStudent), SubmitEventInput{
		Title:    "Lecture",
		Venue:    "Hall",
		DateTime: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	pending, err := svc.ListPending(admin)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	updated, err := svc.Approve(admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, types.EventApproved, updated.Status)

	pending, err = svc.ListPending(admin)
	require.NoError(t, err)
	assert.Empty(t, pending)

	approved, err := svc.ListApproved()
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, created.ID, approved[0].ID)

	_, err = svc.Approve(admin, "99")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateStudyGroupSnapshotsCaller(t *testing.T) {
	svc := NewStudyGroupService(store.NewStudyGroupRepository(), authz.NewGate(nil))

	_, err := svc.Create("", CreateStudyGroupInput{Subject: "x"})
	assert.ErrorIs(t, err, authz.ErrUnauthorized)

	created, err := svc.Create(mintTestToken(t, types.RoleStudent), CreateStudyGroupInput{
		Subject:           "Calculus",
		Venue:             "Library",
		DateTime:          time.Now().Add(48 * time.Hour),
		GenderRestriction: types.GenderAll,
		Visibility:        types.VisibilityPublic,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.CreatedBy.Name)

	groups, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}
