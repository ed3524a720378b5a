package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	authenticated bool
	admin         bool
}

func (f fakeSession) IsAuthenticated() bool { return f.authenticated }
func (f fakeSession) IsAdmin() bool         { return f.admin }

func TestRequireAuth(t *testing.T) {
	assert.Equal(t, RedirectLogin, RequireAuth(fakeSession{}))
	assert.Equal(t, Allow, RequireAuth(fakeSession{authenticated: true}))
	assert.Equal(t, Allow, RequireAuth(fakeSession{authenticated: true, admin: true}))
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, RedirectLogin, RequireAdmin(fakeSession{}))
	assert.Equal(t, RedirectHome, RequireAdmin(fakeSession{authenticated: true}))
	assert.Equal(t, Allow, RequireAdmin(fakeSession{authenticated: true, admin: true}))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect-login", RedirectLogin.String())
	assert.Equal(t, "redirect-home", RedirectHome.String())
}
