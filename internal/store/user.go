package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pavansurya09/StudyMate/types"
)

// RolePolicy derives the role assigned to a newly registered email.
type RolePolicy func(email string) types.Role

// DomainRolePolicy grants admin to emails whose lowercased form ends with
// the given domain suffix, student to everyone else.
func DomainRolePolicy(adminDomain string) RolePolicy {
	suffix := strings.ToLower(adminDomain)
	return func(email string) types.Role {
		if strings.HasSuffix(strings.ToLower(email), suffix) {
			return types.RoleAdmin
		}
		return types.RoleStudent
	}
}

// UserRepository is the in-memory identity registry. Records are immutable
// once registered.
type UserRepository struct {
	mu     sync.Mutex
	users  []types.User
	policy RolePolicy
}

func NewUserRepository(policy RolePolicy) *UserRepository {
	return &UserRepository{policy: policy}
}

// FindByEmail returns the user with the given email, matched
// case-insensitively.
func (r *UserRepository) FindByEmail(email string) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByEmail(email)
}

func (r *UserRepository) findByEmail(email string) (types.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return types.User{}, ErrNotFound
}

// Register creates a new account. The email must not already be registered;
// the role is derived by the repository's RolePolicy.
func (r *UserRepository) Register(data types.RegisterData) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.findByEmail(data.Email); err == nil {
		return types.User{}, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return types.User{}, err
	}

	user := types.User{
		ID:           uuid.NewString(),
		Name:         data.Name,
		Email:        strings.ToLower(data.Email),
		College:      data.College,
		Role:         r.policy(data.Email),
		PasswordHash: string(hashed),
	}
	r.users = append(r.users, user)
	return user, nil
}

// Login returns the account matching the credentials. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (r *UserRepository) Login(email, password string) (types.User, error) {
	user, err := r.FindByEmail(email)
	if err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}
