// Package guard decides whether navigation to a view is allowed. It is
// decoupled from rendering: callers act on the returned decision.
package guard

// Decision is the outcome of a guard check.
type Decision int

const (
	// Allow admits the navigation.
	Allow Decision = iota

	// RedirectLogin sends the caller to the login view.
	RedirectLogin

	// RedirectHome sends the caller to the default authenticated view.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Session is the slice of session controller state the guards consult.
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// RequireAuth admits authenticated sessions and sends everyone else to the
// login view.
func RequireAuth(s Session) Decision {
	if !s.IsAuthenticated() {
		return RedirectLogin
	}
	return Allow
}

// RequireAdmin admits admins. Unauthenticated callers go to the login view,
// authenticated non-admins back to the default view.
func RequireAdmin(s Session) Decision {
	if !s.IsAuthenticated() {
		return RedirectLogin
	}
	if !s.IsAdmin() {
		return RedirectHome
	}
	return Allow
}
