package types

// Role is the authorization level of a user within the system.
type Role string

const (
	// RoleStudent is the default role assigned at registration.
	RoleStudent Role = "student"

	// RoleAdmin grants access to event moderation operations.
	RoleAdmin Role = "admin"
)

// User represents an account in the system.
// It contains identity and role metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID string `json:"id"`

	// Name is the user's display or full name.
	Name string `json:"name"`

	// Email is the user's email address. Unique within the system,
	// compared case-insensitively.
	Email string `json:"email"`

	// College is the user's college or faculty. Optional.
	College string `json:"college,omitempty"`

	// Role indicates the user's authorization level within the system.
	Role Role `json:"role"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-"`
}

// UserRef is a denormalized snapshot of a user taken when a record is
// created. It is never updated if the source user later changes.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ref returns the snapshot reference stored on records created by the user.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}

// RegisterData carries the fields a caller supplies at registration.
type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	College  string `json:"college,omitempty"`
}
