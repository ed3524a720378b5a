package store

import (
	"time"

	"github.com/pavansurya09/StudyMate/types"
)

// DemoPassword is the password of every seeded demo account.
const DemoPassword = "password123"

// SeedDemoData loads the demo fixtures: two accounts (one student, one
// admin), three study groups, and three events of which two are approved
// and one is awaiting moderation.
func SeedDemoData(users *UserRepository, groups *StudyGroupRepository, events *EventRepository) error {
	student, err := users.Register(types.RegisterData{
		Name:     "DemoUser Student",
		Email:    "user@university.edu",
		Password: DemoPassword,
		College:  "University College",
	})
	if err != nil {
		return err
	}
	if _, err := users.Register(types.RegisterData{
		Name:     "Admin User",
		Email:    "admin@admin.com",
		Password: DemoPassword,
		College:  "Admin College",
	}); err != nil {
		return err
	}

	// Creator snapshots for records whose authors no longer have accounts.
	sarah := types.UserRef{ID: "demo-sarah", Name: "Sarah Johnson"}
	lisa := types.UserRef{ID: "demo-lisa", Name: "Lisa Rodriguez"}

	now := time.Now()
	seedGroups := []types.StudyGroup{
		{
			Subject:           "Calculus II Exam Preparation",
			Venue:             "Main Library, Room 204",
			DateTime:          now.Add(2 * 24 * time.Hour),
			GenderRestriction: types.GenderAll,
			Visibility:        types.VisibilityPublic,
			CreatedBy:         student.Ref(),
		},
		{
			Subject:           "Introduction to Machine Learning",
			Venue:             "Computer Science Building, Lab 3",
			DateTime:          now.Add(5 * 24 * time.Hour),
			GenderRestriction: types.GenderAll,
			Visibility:        types.VisibilityCollegeOnly,
			CreatedBy:         sarah,
		},
		{
			Subject:           "Women in STEM Discussion Group",
			Venue:             "Engineering Building, Room 101",
			DateTime:          now.Add(7 * 24 * time.Hour),
			GenderRestriction: types.GenderFemale,
			Visibility:        types.VisibilityPublic,
			CreatedBy:         lisa,
		},
	}
	for _, group := range seedGroups {
		if _, err := groups.Create(group); err != nil {
			return err
		}
	}

	seedEvents := []struct {
		event    types.Event
		approved bool
	}{
		{
			event: types.Event{
				Title:       "Annual Tech Hackathon",
				Type:        "Hackathon",
				Venue:       "Student Center, Main Hall",
				Description: "Join us for a 24-hour hackathon with prizes, mentors, and free food.",
				DateTime:    now.Add(10 * 24 * time.Hour),
				SubmittedBy: student.Ref(),
			},
			approved: true,
		},
		{
			event: types.Event{
				Title:       "Job Search Workshop",
				Type:        "Workshop",
				Venue:       "Career Center, Room 105",
				Description: "Learn effective strategies for landing your first internship or job.",
				DateTime:    now.Add(3 * 24 * time.Hour),
				SubmittedBy: sarah,
			},
			approved: true,
		},
		{
			event: types.Event{
				Title:       "Guest Lecture: Advances in Quantum Computing",
				Type:        "Lecture",
				Venue:       "Physics Building, Auditorium",
				Description: "Dr. Robert Chen from Quantum Labs presents recent breakthroughs.",
				DateTime:    now.Add(5 * 24 * time.Hour),
				SubmittedBy: lisa,
			},
		},
	}
	for _, seed := range seedEvents {
		created, err := events.Create(seed.event)
		if err != nil {
			return err
		}
		if seed.approved {
			if _, err := events.SetStatus(created.ID, types.EventApproved); err != nil {
				return err
			}
		}
	}
	return nil
}
