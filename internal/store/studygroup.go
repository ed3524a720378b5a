package store

import "github.com/pavansurya09/StudyMate/types"

// StudyGroupRepository holds study groups in insertion order. Groups are
// never edited or deleted.
type StudyGroupRepository struct {
	groups *collection[types.StudyGroup]
}

func NewStudyGroupRepository() *StudyGroupRepository {
	return &StudyGroupRepository{
		groups: newCollection(
			func(g types.StudyGroup) string { return g.ID },
			func(g *types.StudyGroup, id string) { g.ID = id },
		),
	}
}

// Create assigns the next sequential ID and stores the group.
func (r *StudyGroupRepository) Create(group types.StudyGroup) (types.StudyGroup, error) {
	return r.groups.append(group), nil
}

// List returns all groups in insertion order.
func (r *StudyGroupRepository) List() ([]types.StudyGroup, error) {
	return r.groups.all(), nil
}
