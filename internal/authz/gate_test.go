package authz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavansurya09/StudyMate/internal/token"
	"github.com/pavansurya09/StudyMate/types"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func mintFor(t *testing.T, role types.Role, at time.Time) string {
	t.Helper()
	minted, err := token.Mint(types.User{
		ID:    "u1",
		Name:  "alice",
		Email: "alice@school.edu",
		Role:  role,
	}, at)
	require.NoError(t, err)
	return minted
}

func TestRequireAuthenticated(t *testing.T) {
	gate := NewGate(fixedClock)

	_, err := gate.RequireAuthenticated("")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = gate.RequireAuthenticated("not.a.token")
	assert.ErrorIs(t, err, ErrUnauthorized)

	expired := mintFor(t, types.RoleStudent, fixedNow.Add(-25*time.Hour))
	_, err = gate.RequireAuthenticated(expired)
	assert.ErrorIs(t, err, ErrUnauthorized)

	claims, err := gate.RequireAuthenticated(mintFor(t, types.RoleStudent, fixedNow))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
}

func TestRequireAdmin(t *testing.T) {
	gate := NewGate(fixedClock)

	_, err := gate.RequireAdmin("")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = gate.RequireAdmin(mintFor(t, types.RoleStudent, fixedNow))
	assert.ErrorIs(t, err, ErrForbidden)

	claims, err := gate.RequireAdmin(mintFor(t, types.RoleAdmin, fixedNow))
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, claims.Role)
}
