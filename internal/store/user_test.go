package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavansurya09/StudyMate/types"
)

func newTestUserRepo() *UserRepository {
	return NewUserRepository(DomainRolePolicy("admin.com"))
}

func TestRegisterDerivesRole(t *testing.T) {
	repo := newTestUserRepo()

	admin, err := repo.Register(types.RegisterData{Name: "x", Email: "x@admin.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, admin.Role)

	student, err := repo.Register(types.RegisterData{Name: "x", Email: "x@school.edu", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, types.RoleStudent, student.Role)

	assert.NotEqual(t, admin.ID, student.ID)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newTestUserRepo()

	_, err := repo.Register(types.RegisterData{Name: "a", Email: "Alice@School.edu", Password: "pw"})
	require.NoError(t, err)

	_, err = repo.Register(types.RegisterData{Name: "b", Email: "alice@school.EDU", Password: "pw"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestFindByEmailCaseInsensitive(t *testing.T) {
	repo := newTestUserRepo()

	created, err := repo.Register(types.RegisterData{Name: "a", Email: "alice@school.edu", Password: "pw"})
	require.NoError(t, err)

	found, err := repo.FindByEmail("ALICE@SCHOOL.EDU")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByEmail("nobody@school.edu")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogin(t *testing.T) {
	repo := newTestUserRepo()

	created, err := repo.Register(types.RegisterData{Name: "alice", Email: "alice@school.edu", Password: "pw"})
	require.NoError(t, err)

	user, err := repo.Login("alice@school.edu", "pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = repo.Login("alice@school.edu", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = repo.Login("nobody@school.edu", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterLowercasesStoredEmail(t *testing.T) {
	repo := newTestUserRepo()

	created, err := repo.Register(types.RegisterData{Name: "a", Email: "Bob@School.edu", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "bob@school.edu", created.Email)
}
