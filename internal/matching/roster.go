package matching

import "github.com/hackflow/hackflow-api/internal/models"

// Roster returns the built-in participant pool used when no live candidates
// are available. A fresh copy is returned on every call.
func Roster() []models.TeamMember {
	return []models.TeamMember{
		{
			ID:   "member-1",
			Name: "Alex Chen",
			Skills: []models.Skill{
				{Name: "React", Level: models.LevelExpert, Years: 5},
				{Name: "TypeScript", Level: models.LevelAdvanced, Years: 4},
				{Name: "Node.js", Level: models.LevelAdvanced, Years: 4},
			},
			Timezone:           "PST",
			Availability:       []string{"Weekday evenings", "Weekends"},
			MentorshipRole:     models.RoleMentor,
			ProjectPreferences: []string{"Web3", "Developer Tools", "Education"},
		},
		{
			ID:   "member-2",
			Name: "Priya Sharma",
			Skills: []models.Skill{
				{Name: "Python", Level: models.LevelExpert, Years: 6},
				{Name: "Machine Learning", Level: models.LevelExpert, Years: 4},
				{Name: "TensorFlow", Level: models.LevelAdvanced, Years: 3},
			},
			Timezone:           "IST",
			Availability:       []string{"Weekday mornings", "Weekend afternoons"},
			MentorshipRole:     models.RoleMentor,
			ProjectPreferences: []string{"AI/ML", "Healthcare", "Sustainability"},
		},
		{
			ID:   "member-3",
			Name: "Marcus Johnson",
			Skills: []models.Skill{
				{Name: "React", Level: models.LevelBeginner, Years: 1},
				{Name: "JavaScript", Level: models.LevelIntermediate, Years: 2},
				{Name: "CSS", Level: models.LevelIntermediate, Years: 2},
			},
			Timezone:           "EST",
			Availability:       []string{"Weekday evenings"},
			MentorshipRole:     models.RoleMentee,
			ProjectPreferences: []string{"Education", "Social Impact"},
		},
		{
			ID:   "member-4",
			Name: "Sofia Rodriguez",
			Skills: []models.Skill{
				{Name: "Figma", Level: models.LevelExpert, Years: 5},
				{Name: "UI/UX Design", Level: models.LevelExpert, Years: 5},
				{Name: "React", Level: models.LevelIntermediate, Years: 2},
			},
			Timezone:           "CET",
			Availability:       []string{"Weekend mornings", "Weekend afternoons"},
			MentorshipRole:     models.RolePeer,
			ProjectPreferences: []string{"Healthcare", "Social Impact", "Education"},
		},
		{
			ID:   "member-5",
			Name: "Kenji Tanaka",
			Skills: []models.Skill{
				{Name: "Go", Level: models.LevelExpert, Years: 7},
				{Name: "Kubernetes", Level: models.LevelAdvanced, Years: 4},
				{Name: "PostgreSQL", Level: models.LevelAdvanced, Years: 5},
			},
			Timezone:           "JST",
			Availability:       []string{"Weekday mornings", "Weekday evenings"},
			MentorshipRole:     models.RoleMentor,
			ProjectPreferences: []string{"Developer Tools", "Fintech"},
		},
		{
			ID:   "member-6",
			Name: "Amara Okafor",
			Skills: []models.Skill{
				{Name: "Python", Level: models.LevelIntermediate, Years: 2},
				{Name: "Machine Learning", Level: models.LevelBeginner, Years: 1},
				{Name: "Data Visualization", Level: models.LevelIntermediate, Years: 2},
			},
			Timezone:           "GMT",
			Availability:       []string{"Weekday mornings", "Weekends"},
			MentorshipRole:     models.RoleMentee,
			ProjectPreferences: []string{"AI/ML", "Sustainability", "Healthcare"},
		},
		{
			ID:   "member-7",
			Name: "Lucas Silva",
			Skills: []models.Skill{
				{Name: "Solidity", Level: models.LevelAdvanced, Years: 3},
				{Name: "Rust", Level: models.LevelIntermediate, Years: 2},
				{Name: "TypeScript", Level: models.LevelIntermediate, Years: 3},
			},
			Timezone:           "BRT",
			Availability:       []string{"Weekday evenings", "Weekend evenings"},
			MentorshipRole:     models.RolePeer,
			ProjectPreferences: []string{"Web3", "Fintech"},
		},
		{
			ID:   "member-8",
			Name: "Emma Wilson",
			Skills: []models.Skill{
				{Name: "Go", Level: models.LevelBeginner, Years: 1},
				{Name: "Docker", Level: models.LevelIntermediate, Years: 2},
				{Name: "TypeScript", Level: models.LevelBeginner, Years: 1},
			},
			Timezone:           "AEST",
			Availability:       []string{"Weekday evenings", "Weekend mornings"},
			MentorshipRole:     models.RoleMentee,
			ProjectPreferences: []string{"Developer Tools", "Education"},
		},
	}
}
