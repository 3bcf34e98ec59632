package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/hackflow/hackflow-api/internal/matching"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/pkg/errors"
	"github.com/hackflow/hackflow-api/pkg/github"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"go.uber.org/zap"
)

const (
	SourceRoster = "roster"
	SourceGitHub = "github"

	maxGitHubCandidates = 10
	defaultTimezone     = "UTC"
)

// MatchingService scores teammates and pairs mentors
type MatchingService struct {
	profiles ProfileSource
}

// NewMatchingService creates the service. profiles may be nil, in which
// case candidates always come from the built-in roster.
func NewMatchingService(profiles ProfileSource) *MatchingService {
	return &MatchingService{profiles: profiles}
}

// FindTeammates ranks candidates against the member described by query
func (s *MatchingService) FindTeammates(ctx context.Context, query *models.TeamMatchingQuery) (*models.TeamMatchingResponse, error) {
	current := memberFromQuery(query)

	candidates, source := s.candidates(ctx, splitCSV(query.GitHub))
	candidates = withoutMember(candidates, current.ID)

	matches := matching.RankCandidates(current, candidates)

	metrics.MatchRequests.WithLabelValues("team", source).Inc()
	metrics.MatchResultsReturned.WithLabelValues("team").Observe(float64(len(matches)))

	return &models.TeamMatchingResponse{
		Success:     true,
		CurrentUser: current,
		Matches:     matches,
		Source:      source,
	}, nil
}

// MatchMentors pairs mentors and mentees from membersJSON, or from the
// built-in roster when it is empty
func (s *MatchingService) MatchMentors(ctx context.Context, membersJSON string) (*models.MentorshipResponse, error) {
	members := matching.Roster()
	source := SourceRoster

	if raw := strings.TrimSpace(membersJSON); raw != "" {
		var parsed []models.TeamMember
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return nil, errors.InvalidInputError("members", "must be a JSON array of team members")
		}
		members = parsed
		source = "request"
	}

	matches := matching.MatchMentors(members)

	metrics.MatchRequests.WithLabelValues("mentorship", source).Inc()
	metrics.MatchResultsReturned.WithLabelValues("mentorship").Observe(float64(len(matches)))

	return &models.MentorshipResponse{Success: true, Matches: matches}, nil
}

// candidates builds members from GitHub usernames, degrading to the roster
// when none could be resolved
func (s *MatchingService) candidates(ctx context.Context, usernames []string) ([]models.TeamMember, string) {
	if s.profiles == nil || len(usernames) == 0 {
		return matching.Roster(), SourceRoster
	}
	if len(usernames) > maxGitHubCandidates {
		usernames = usernames[:maxGitHubCandidates]
	}

	members := make([]models.TeamMember, 0, len(usernames))
	for _, username := range usernames {
		profile, err := s.profiles.Get(ctx, username)
		if err != nil {
			logger.Warn("Skipping GitHub candidate",
				zap.String("username", username),
				zap.Error(err))
			continue
		}
		members = append(members, MemberFromProfile(profile, time.Now()))
	}

	if len(members) == 0 {
		logger.Warn("No GitHub candidates resolved, using roster",
			zap.Int("requested", len(usernames)))
		return matching.Roster(), SourceRoster
	}
	return members, SourceGitHub
}

// MemberFromProfile maps a GitHub profile to a team member. Languages become
// skills leveled by repository count, topics become interests.
func MemberFromProfile(p *github.Profile, now time.Time) models.TeamMember {
	years := 0
	if !p.CreatedAt.IsZero() {
		years = int(now.Sub(p.CreatedAt).Hours() / (24 * 365))
	}

	languages := make([]string, 0, len(p.Languages))
	for lang := range p.Languages {
		languages = append(languages, lang)
	}
	sort.Slice(languages, func(i, j int) bool {
		ci, cj := p.Languages[languages[i]], p.Languages[languages[j]]
		if ci != cj {
			return ci > cj
		}
		return languages[i] < languages[j]
	})

	skills := make([]models.Skill, 0, len(languages))
	for _, lang := range languages {
		skills = append(skills, models.Skill{
			Name:  lang,
			Level: levelForRepoCount(p.Languages[lang]),
			Years: years,
		})
	}

	name := p.Name
	if name == "" {
		name = p.Login
	}

	return models.TeamMember{
		ID:                 "github-" + strings.ToLower(p.Login),
		Name:               name,
		Skills:             skills,
		Timezone:           defaultTimezone,
		Availability:       []string{},
		MentorshipRole:     roleForSkills(skills),
		ProjectPreferences: append([]string{}, p.Topics...),
		GitHub:             p.Login,
	}
}

func levelForRepoCount(n int) models.SkillLevel {
	switch {
	case n >= 10:
		return models.LevelExpert
	case n >= 5:
		return models.LevelAdvanced
	case n >= 2:
		return models.LevelIntermediate
	default:
		return models.LevelBeginner
	}
}

// roleForSkills makes experts mentors and pure beginners mentees
func roleForSkills(skills []models.Skill) models.MentorshipRole {
	if len(skills) == 0 {
		return models.RoleMentee
	}
	allBeginner := true
	for _, s := range skills {
		if s.Level == models.LevelExpert {
			return models.RoleMentor
		}
		if s.Level != models.LevelBeginner {
			allBeginner = false
		}
	}
	if allBeginner {
		return models.RoleMentee
	}
	return models.RolePeer
}

// memberFromQuery builds the requesting member. Skills are "Name:Level"
// pairs; a missing level means Intermediate.
func memberFromQuery(q *models.TeamMatchingQuery) models.TeamMember {
	var skills []models.Skill
	for _, entry := range splitCSV(q.Skills) {
		name, level, found := strings.Cut(entry, ":")
		skill := models.Skill{Name: strings.TrimSpace(name), Level: models.LevelIntermediate}
		if found {
			if l := parseLevel(level); l != "" {
				skill.Level = l
			}
		}
		if skill.Name != "" {
			skills = append(skills, skill)
		}
	}

	id := strings.TrimSpace(q.UserID)
	if id == "" {
		id = "current-user"
	}
	name := strings.TrimSpace(q.Name)
	if name == "" {
		name = "You"
	}
	tz := strings.TrimSpace(q.Timezone)
	if tz == "" {
		tz = defaultTimezone
	}

	member := models.TeamMember{
		ID:                 id,
		Name:               name,
		Skills:             skills,
		Timezone:           tz,
		Availability:       splitCSV(q.Availability),
		ProjectPreferences: splitCSV(q.Interests),
		GitHub:             strings.TrimSpace(q.GitHub),
	}
	if member.Skills == nil {
		member.Skills = []models.Skill{}
	}
	member.MentorshipRole = roleForSkills(member.Skills)
	return member
}

func parseLevel(s string) models.SkillLevel {
	for _, l := range []models.SkillLevel{
		models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced, models.LevelExpert,
	} {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l
		}
	}
	return ""
}

func withoutMember(members []models.TeamMember, id string) []models.TeamMember {
	out := make([]models.TeamMember, 0, len(members))
	for _, m := range members {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}
