package services

import (
	"time"

	"github.com/pavansurya09/StudyMate/internal/authz"
	"github.com/pavansurya09/StudyMate/types"
)

// StudyGroupRepository defines the store operations study groups need.
type StudyGroupRepository interface {
	Create(group types.StudyGroup) (types.StudyGroup, error)
	List() ([]types.StudyGroup, error)
}

// CreateStudyGroupInput carries the caller-supplied fields of a new group.
type CreateStudyGroupInput struct {
	Subject           string
	Venue             string
	DateTime          time.Time
	GenderRestriction types.GenderRestriction
	Visibility        types.Visibility
}

// StudyGroupService encapsulates study group use-cases.
type StudyGroupService struct {
	repo StudyGroupRepository
	gate *authz.Gate
}

func NewStudyGroupService(repo StudyGroupRepository, gate *authz.Gate) *StudyGroupService {
	return &StudyGroupService{repo: repo, gate: gate}
}

// List returns all study groups. Public read, no authentication.
func (s *StudyGroupService) List() ([]types.StudyGroup, error) {
	return s.repo.List()
}

// Create stores a new group on behalf of the token's bearer. The creator
// snapshot is re-derived from the token on every call.
func (s *StudyGroupService) Create(tokenString string, input CreateStudyGroupInput) (types.StudyGroup, error) {
	claims, err := s.gate.RequireAuthenticated(tokenString)
	if err != nil {
		return types.StudyGroup{}, err
	}

	return s.repo.Create(types.StudyGroup{
		Subject:           input.Subject,
		Venue:             input.Venue,
		DateTime:          input.DateTime,
		GenderRestriction: input.GenderRestriction,
		Visibility:        input.Visibility,
		CreatedBy:         claims.User().Ref(),
	})
}
