package types

import "time"

// GenderRestriction limits who may join a study group.
type GenderRestriction string

const (
	GenderAll    GenderRestriction = "All"
	GenderMale   GenderRestriction = "Male"
	GenderFemale GenderRestriction = "Female"
)

// Visibility controls which users can discover a study group.
type Visibility string

const (
	VisibilityPublic      Visibility = "Public"
	VisibilityCollegeOnly Visibility = "College-only"
	VisibilityInviteOnly  Visibility = "Invite-only"
)

// StudyGroup is a student-organized study session. Groups are append-only:
// once created they are never edited or deleted.
type StudyGroup struct {
	// ID is the unique identifier of the group, assigned sequentially.
	ID string `json:"id"`

	// Subject describes what the group is studying.
	Subject string `json:"subject"`

	// Venue is where the group meets.
	Venue string `json:"venue"`

	// DateTime is when the group meets.
	DateTime time.Time `json:"dateTime"`

	// GenderRestriction limits attendance.
	GenderRestriction GenderRestriction `json:"genderRestriction"`

	// Visibility controls discovery of the group.
	Visibility Visibility `json:"visibility"`

	// CreatedBy is a snapshot of the creating user.
	CreatedBy UserRef `json:"createdBy"`
}
