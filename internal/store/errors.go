package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when registering an email that is already
// taken, compared case-insensitively.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrInvalidCredentials is returned when a login attempt does not match a
// stored account.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAlreadyDecided is returned when changing the status of an event that
// has already been approved or rejected.
var ErrAlreadyDecided = errors.New("event already decided")
