package matching

import (
	"testing"

	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menteeIDs(m models.MentorshipMatch) []string {
	ids := make([]string, 0, len(m.Mentees))
	for _, mentee := range m.Mentees {
		ids = append(ids, mentee.ID)
	}
	return ids
}

func TestMatchMentors_Roster(t *testing.T) {
	matches := MatchMentors(Roster())

	require.Len(t, matches, 3)

	assert.Equal(t, "member-2", matches[0].Mentor.ID)
	assert.Equal(t, []string{"member-6"}, menteeIDs(matches[0]))
	assert.Equal(t, 67, matches[0].CompatibilityScore)
	assert.Equal(t, []string{"Python", "Machine Learning", "TensorFlow"}, matches[0].FocusAreas)
	assert.Equal(t, []string{"Weekday Morning", "Weekend Afternoon"}, matches[0].SessionSchedule)

	assert.Equal(t, "member-1", matches[1].Mentor.ID)
	assert.Equal(t, []string{"member-3", "member-8"}, menteeIDs(matches[1]))
	assert.Equal(t, 33, matches[1].CompatibilityScore)
	assert.Equal(t, []string{"Weekday Evening", "Weekend Morning"}, matches[1].SessionSchedule)

	assert.Equal(t, "member-5", matches[2].Mentor.ID)
	assert.Equal(t, []string{"member-8"}, menteeIDs(matches[2]))
	assert.Equal(t, []string{"Weekday Evening"}, matches[2].SessionSchedule)
}

func TestMatchMentors_ScheduleAtMostTwoSlots(t *testing.T) {
	everything := []string{"Weekdays", "Weekends"}
	members := []models.TeamMember{
		{ID: "m", MentorshipRole: models.RoleMentor, Skills: skills("Go", "Expert"), Availability: everything},
		{ID: "a", MentorshipRole: models.RoleMentee, Skills: skills("Go", "Beginner"), Availability: everything},
		{ID: "b", MentorshipRole: models.RoleMentee, Skills: skills("Go", "Advanced"), Availability: everything},
	}

	matches := MatchMentors(members)

	require.Len(t, matches, 1)
	assert.Len(t, matches[0].SessionSchedule, 2)
	assert.Equal(t, 100, matches[0].CompatibilityScore)
}

func TestMatchMentors_NoOverlapGivesEmptySchedule(t *testing.T) {
	members := []models.TeamMember{
		{ID: "m", MentorshipRole: models.RoleMentor, Skills: skills("Go", "Expert"), Availability: []string{"Weekday mornings"}},
		{ID: "a", MentorshipRole: models.RoleMentee, Skills: skills("Go", "Beginner"), Availability: []string{"Weekend evenings"}},
	}

	matches := MatchMentors(members)

	require.Len(t, matches, 1)
	assert.Empty(t, matches[0].SessionSchedule)
}

func TestMatchMentors_Exclusions(t *testing.T) {
	t.Run("equal level is not a need", func(t *testing.T) {
		members := []models.TeamMember{
			{ID: "m", MentorshipRole: models.RoleMentor, Skills: skills("Go", "Advanced")},
			{ID: "a", MentorshipRole: models.RoleMentee, Skills: skills("Go", "Advanced")},
		}
		assert.Empty(t, MatchMentors(members))
	})

	t.Run("peers are never mentees", func(t *testing.T) {
		members := []models.TeamMember{
			{ID: "m", MentorshipRole: models.RoleMentor, Skills: skills("Go", "Expert")},
			{ID: "p", MentorshipRole: models.RolePeer, Skills: skills("Go", "Beginner")},
		}
		assert.Empty(t, MatchMentors(members))
	})
}

func TestMatchMentors_NoExpertSkillsScoresNeutral(t *testing.T) {
	members := []models.TeamMember{
		{ID: "m", MentorshipRole: models.RoleMentor, Skills: skills("Go", "Intermediate")},
		{ID: "a", MentorshipRole: models.RoleMentee, Skills: skills("Go", "Beginner")},
	}

	matches := MatchMentors(members)

	require.Len(t, matches, 1)
	assert.Empty(t, matches[0].FocusAreas)
	assert.Equal(t, 50, matches[0].CompatibilityScore)
}
