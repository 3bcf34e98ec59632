package models

// SkillLevel is a self-reported proficiency
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// MentorshipRole is the part a member wants to play in mentorship pairing
type MentorshipRole string

const (
	RoleMentor MentorshipRole = "mentor"
	RoleMentee MentorshipRole = "mentee"
	RolePeer   MentorshipRole = "peer"
)

type Skill struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
	Years int        `json:"years"`
}

// TeamMember is a matching candidate. It is rebuilt on every request from
// query parameters, the built-in roster or GitHub data.
type TeamMember struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Skills             []Skill        `json:"skills"`
	Timezone           string         `json:"timezone"`
	Availability       []string       `json:"availability"`
	MentorshipRole     MentorshipRole `json:"mentorshipRole"`
	ProjectPreferences []string       `json:"projectPreferences"`
	GitHub             string         `json:"github,omitempty"`
}

// CompatibilityScore holds the four 0-100 sub-scores
type CompatibilityScore struct {
	Technical  int `json:"technical"`
	Timezone   int `json:"timezone"`
	Experience int `json:"experience"`
	Interests  int `json:"interests"`
}

type TeamMatch struct {
	Member             TeamMember         `json:"member"`
	Compatibility      CompatibilityScore `json:"compatibility"`
	MatchScore         int                `json:"matchScore"`
	SharedSkills       []string           `json:"sharedSkills"`
	SharedInterests    []string           `json:"sharedInterests"`
	CommonAvailability []string           `json:"commonAvailability"`
}

type MentorshipMatch struct {
	Mentor             TeamMember   `json:"mentor"`
	Mentees            []TeamMember `json:"mentees"`
	FocusAreas         []string     `json:"focusAreas"`
	SessionSchedule    []string     `json:"sessionSchedule"`
	CompatibilityScore int          `json:"compatibilityScore"`
}

// TeamMatchingQuery is bound from GET /api/teamMatching
type TeamMatchingQuery struct {
	UserID       string `form:"userId"`
	Name         string `form:"name"`
	Skills       string `form:"skills"`
	Timezone     string `form:"timezone"`
	Availability string `form:"availability"`
	Interests    string `form:"interests"`
	GitHub       string `form:"github"`
}

type TeamMatchingResponse struct {
	Success     bool        `json:"success"`
	CurrentUser TeamMember  `json:"currentUser"`
	Matches     []TeamMatch `json:"matches"`
	Source      string      `json:"source"`
}

type MentorshipResponse struct {
	Success bool              `json:"success"`
	Matches []MentorshipMatch `json:"matches"`
}
