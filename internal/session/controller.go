// Package session owns the client-side authentication state: it restores
// the persisted token at startup, orchestrates login, registration, and
// logout, and exposes the derived identity to the rest of the application.
package session

import (
	"sync"
	"time"

	"github.com/pavansurya09/StudyMate/internal/store"
	"github.com/pavansurya09/StudyMate/internal/token"
	"github.com/pavansurya09/StudyMate/types"
)

// State is the externally visible authentication state.
type State struct {
	// User is the current identity derived from the token; nil when
	// anonymous.
	User *types.User
}

// Authenticated reports whether a user is logged in.
func (s State) Authenticated() bool {
	return s.User != nil
}

// Admin reports whether the current user holds the admin role.
func (s State) Admin() bool {
	return s.User != nil && s.User.Role == types.RoleAdmin
}

// Controller is the session state machine. All identity the application
// sees flows through it; the identity is always re-derived from the token,
// never cached separately from it.
type Controller struct {
	users   *store.UserRepository
	storage TokenStorage
	now     func() time.Time

	mu      sync.Mutex
	state   State
	token   string
	subs    map[int]func(State)
	nextSub int
}

// NewController builds a controller and restores any persisted session.
// A missing token yields an anonymous session. A token that fails to decode
// or has expired is cleared and the failure handled locally, never
// surfaced. A nil clock defaults to time.Now.
func NewController(users *store.UserRepository, storage TokenStorage, now func() time.Time) (*Controller, error) {
	if now == nil {
		now = time.Now
	}
	c := &Controller{
		users:   users,
		storage: storage,
		now:     now,
		subs:    make(map[int]func(State)),
	}
	if err := c.restore(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Controller) restore() error {
	raw, err := c.storage.Load()
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	claims, err := token.Decode(raw)
	if err != nil || claims.Expired(c.now()) {
		return c.storage.Clear()
	}

	user := claims.User()
	c.state = State{User: &user}
	c.token = raw
	return nil
}

// Login authenticates the credentials, mints a fresh token, persists it,
// and transitions to the authenticated state. On failure the session is
// left unchanged and the error is returned to the caller.
func (c *Controller) Login(email, password string) (types.User, error) {
	user, err := c.users.Login(email, password)
	if err != nil {
		return types.User{}, err
	}

	minted, err := token.Mint(user, c.now())
	if err != nil {
		return types.User{}, err
	}
	if err := c.storage.Save(minted); err != nil {
		return types.User{}, err
	}

	c.transition(minted, &user)
	return user, nil
}

// Register creates a new account. It does not authenticate the caller;
// a separate Login is required.
func (c *Controller) Register(data types.RegisterData) error {
	_, err := c.users.Register(data)
	return err
}

// Logout clears the persisted token and returns to the anonymous state.
// It succeeds unconditionally.
func (c *Controller) Logout() {
	_ = c.storage.Clear()
	c.transition("", nil)
}

// CurrentUser returns the authenticated identity, if any.
func (c *Controller) CurrentUser() (types.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.User == nil {
		return types.User{}, false
	}
	return *c.state.User, true
}

// IsAuthenticated reports whether a user is logged in.
func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Authenticated()
}

// IsAdmin reports whether the current user holds the admin role.
func (c *Controller) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Admin()
}

// Token returns the current session token, empty when anonymous.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Subscribe registers fn to be notified on every state transition. The
// returned function removes the subscription.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Controller) transition(tok string, user *types.User) {
	c.mu.Lock()
	c.token = tok
	c.state = State{User: user}
	state := c.state
	subs := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
