// Package authz gates privileged operations on the caller's decoded token.
package authz

import (
	"errors"
	"time"

	"github.com/pavansurya09/StudyMate/internal/token"
	"github.com/pavansurya09/StudyMate/types"
)

// ErrUnauthorized is returned when the caller presents no token, an
// undecodable token, or an expired one.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when the caller is authenticated but lacks the
// admin role.
var ErrForbidden = errors.New("admin access required")

// Gate derives the caller's identity from a raw token string before each
// privileged operation. It never consults the identity store: the claims
// carried by the token are the caller.
type Gate struct {
	now func() time.Time
}

// NewGate constructs a gate. A nil clock defaults to time.Now.
func NewGate(now func() time.Time) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{now: now}
}

// RequireAuthenticated decodes the token and checks expiry. All failure
// modes collapse to ErrUnauthorized.
func (g *Gate) RequireAuthenticated(tokenString string) (*token.Claims, error) {
	if tokenString == "" {
		return nil, ErrUnauthorized
	}
	claims, err := token.Decode(tokenString)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if claims.Expired(g.now()) {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// RequireAdmin authenticates the caller and then requires the admin role.
func (g *Gate) RequireAdmin(tokenString string) (*token.Claims, error) {
	claims, err := g.RequireAuthenticated(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != types.RoleAdmin {
		return nil, ErrForbidden
	}
	return claims, nil
}
