package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/services"
	"github.com/hackflow/hackflow-api/pkg/github"
	apperrors "github.com/hackflow/hackflow-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMatchingService_FindTeammates_Roster(t *testing.T) {
	service := services.NewMatchingService(nil)

	resp, err := service.FindTeammates(context.Background(), &models.TeamMatchingQuery{
		UserID:    "user_1",
		Skills:    "Go:Advanced, React",
		Timezone:  "PST",
		Interests: "AI, Climate",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, services.SourceRoster, resp.Source)
	assert.Len(t, resp.Matches, 8)
	require.Len(t, resp.CurrentUser.Skills, 2)
	assert.Equal(t, models.LevelAdvanced, resp.CurrentUser.Skills[0].Level)
	assert.Equal(t, models.LevelIntermediate, resp.CurrentUser.Skills[1].Level)

	for i := 1; i < len(resp.Matches); i++ {
		assert.GreaterOrEqual(t, resp.Matches[i-1].MatchScore, resp.Matches[i].MatchScore)
	}
}

func TestMatchingService_FindTeammates_ExcludesSelf(t *testing.T) {
	service := services.NewMatchingService(nil)

	resp, err := service.FindTeammates(context.Background(), &models.TeamMatchingQuery{UserID: "member-1"})
	require.NoError(t, err)

	assert.Len(t, resp.Matches, 7)
	for _, m := range resp.Matches {
		assert.NotEqual(t, "member-1", m.Member.ID)
	}
}

func TestMatchingService_FindTeammates_GitHub(t *testing.T) {
	profiles := new(MockProfileSource)
	service := services.NewMatchingService(profiles)
	ctx := context.Background()

	profiles.On("Get", ctx, "octocat").Return(&github.Profile{
		Login:     "octocat",
		Languages: map[string]int{"Go": 6},
		Topics:    []string{"ai"},
	}, nil).Once()
	profiles.On("Get", ctx, "ghost").Return(nil, errors.New("not found")).Once()

	resp, err := service.FindTeammates(ctx, &models.TeamMatchingQuery{GitHub: "octocat,ghost", Skills: "Go"})
	require.NoError(t, err)

	assert.Equal(t, services.SourceGitHub, resp.Source)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "github-octocat", resp.Matches[0].Member.ID)
	assert.Equal(t, []string{"Go"}, resp.Matches[0].SharedSkills)
	profiles.AssertExpectations(t)
}

func TestMatchingService_FindTeammates_GitHubFailureFallsBack(t *testing.T) {
	profiles := new(MockProfileSource)
	service := services.NewMatchingService(profiles)

	profiles.On("Get", mock.Anything, "octocat").Return(nil, errors.New("rate limited")).Once()

	resp, err := service.FindTeammates(context.Background(), &models.TeamMatchingQuery{GitHub: "octocat"})
	require.NoError(t, err)

	assert.Equal(t, services.SourceRoster, resp.Source)
	assert.Len(t, resp.Matches, 8)
}

func TestMatchingService_MatchMentors(t *testing.T) {
	service := services.NewMatchingService(nil)

	resp, err := service.MatchMentors(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, resp.Matches, 3)
	assert.Equal(t, "Priya", resp.Matches[0].Mentor.Name)
	assert.Equal(t, 67, resp.Matches[0].CompatibilityScore)
	for _, m := range resp.Matches {
		assert.LessOrEqual(t, len(m.SessionSchedule), 2)
	}
}

func TestMatchingService_MatchMentors_FromJSON(t *testing.T) {
	service := services.NewMatchingService(nil)
	members := `[
		{"id":"m","name":"Mia","mentorshipRole":"mentor","skills":[{"name":"Go","level":"Expert"}],"availability":["Weekend"]},
		{"id":"n","name":"Noa","mentorshipRole":"mentee","skills":[{"name":"Go","level":"Beginner"}],"availability":["Weekend Morning"]}
	]`

	resp, err := service.MatchMentors(context.Background(), members)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, []string{"Go"}, resp.Matches[0].FocusAreas)
	assert.Equal(t, 100, resp.Matches[0].CompatibilityScore)
	assert.Equal(t, []string{"Weekend Morning"}, resp.Matches[0].SessionSchedule)
}

func TestMatchingService_MatchMentors_MalformedJSON(t *testing.T) {
	service := services.NewMatchingService(nil)

	resp, err := service.MatchMentors(context.Background(), "{not json")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestMemberFromProfile(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	member := services.MemberFromProfile(&github.Profile{
		Login:     "Octocat",
		Languages: map[string]int{"Go": 12, "Python": 3, "Shell": 1},
		Topics:    []string{"climate"},
		CreatedAt: now.AddDate(-5, 0, -2),
	}, now)

	assert.Equal(t, "github-octocat", member.ID)
	assert.Equal(t, "Octocat", member.Name)
	assert.Equal(t, models.RoleMentor, member.MentorshipRole)
	assert.Equal(t, []string{"climate"}, member.ProjectPreferences)
	require.Len(t, member.Skills, 3)
	assert.Equal(t, models.Skill{Name: "Go", Level: models.LevelExpert, Years: 5}, member.Skills[0])
	assert.Equal(t, models.LevelIntermediate, member.Skills[1].Level)
	assert.Equal(t, models.LevelBeginner, member.Skills[2].Level)
}

func TestMemberFromProfile_Roles(t *testing.T) {
	now := time.Now()

	beginner := services.MemberFromProfile(&github.Profile{Login: "a", Languages: map[string]int{"Go": 1}}, now)
	assert.Equal(t, models.RoleMentee, beginner.MentorshipRole)

	peer := services.MemberFromProfile(&github.Profile{Login: "b", Languages: map[string]int{"Go": 5}}, now)
	assert.Equal(t, models.RolePeer, peer.MentorshipRole)
}
