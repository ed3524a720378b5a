// Package token implements the session token codec. A token is a
// JWT-shaped string (base64 header, base64 payload, signature segment)
// whose signature is a fixed placeholder: it carries identity claims
// between calls but is not a trust boundary, so Decode never verifies.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pavansurya09/StudyMate/types"
)

// TTL is the fixed lifetime of a minted token.
const TTL = 24 * time.Hour

const placeholderSignature = "signature"

// ErrMalformedToken is returned when a token string cannot be decoded
// back into claims. Expiry is a separate check, not a decode failure.
var ErrMalformedToken = errors.New("malformed token")

// Claims is the decoded payload of a session token.
type Claims struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	College string     `json:"college,omitempty"`
	Role    types.Role `json:"role"`
	jwt.RegisteredClaims
}

// User derives the identity carried by the claims. The subject holds the
// user ID.
func (c *Claims) User() types.User {
	return types.User{
		ID:      c.Subject,
		Name:    c.Name,
		Email:   c.Email,
		College: c.College,
		Role:    c.Role,
	}
}

// Expired reports whether the claims' expiry has passed at now.
// Claims without an expiry are treated as expired.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return c.ExpiresAt.Unix()*1000 < now.UnixMilli()
}

// Mint builds a token for the given user expiring TTL after now.
func Mint(user types.User, now time.Time) (string, error) {
	claims := Claims{
		Name:    user.Name,
		Email:   user.Email,
		College: user.College,
		Role:    user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	// SigningString yields "header.payload"; the signature segment is a
	// static placeholder rather than a real HMAC.
	signing, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SigningString()
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}
	return signing + "." + placeholderSignature, nil
}

// Decode reverses the payload encoding back into claims. It fails with
// ErrMalformedToken when segments are missing or the payload is not valid
// encoded JSON. Expired tokens decode successfully; callers check Expired.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}
