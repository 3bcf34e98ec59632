package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/hackflow/hackflow-api/internal/models"
)

const maxSessionSlots = 2

var (
	dayTypes   = []string{"weekday", "weekend"}
	timesOfDay = []string{"morning", "afternoon", "evening"}
)

// MatchMentors pairs each mentor with the mentees who share a skill at a
// strictly lower level. Mentors nobody can learn from are left out.
func MatchMentors(members []models.TeamMember) []models.MentorshipMatch {
	matches := []models.MentorshipMatch{}

	for _, mentor := range members {
		if mentor.MentorshipRole != models.RoleMentor {
			continue
		}

		mentees := []models.TeamMember{}
		for _, candidate := range members {
			if candidate.MentorshipRole != models.RoleMentee || candidate.ID == mentor.ID {
				continue
			}
			if canLearnFrom(candidate, mentor) {
				mentees = append(mentees, candidate)
			}
		}
		if len(mentees) == 0 {
			continue
		}

		focus := FocusAreas(mentor)
		matches = append(matches, models.MentorshipMatch{
			Mentor:             mentor,
			Mentees:            mentees,
			FocusAreas:         focus,
			SessionSchedule:    SessionSchedule(mentor, mentees),
			CompatibilityScore: mentorshipScore(mentor, mentees, focus),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompatibilityScore > matches[j].CompatibilityScore
	})

	return matches
}

// FocusAreas lists the mentor's Advanced and Expert skills
func FocusAreas(mentor models.TeamMember) []string {
	areas := []string{}
	for _, s := range mentor.Skills {
		if LevelOrdinal(s.Level) >= LevelOrdinal(models.LevelAdvanced) {
			areas = append(areas, s.Name)
		}
	}
	return areas
}

// SessionSchedule returns up to two slots, such as "Weekday Evening", that
// the mentor shares with the most mentees.
func SessionSchedule(mentor models.TeamMember, mentees []models.TeamMember) []string {
	counts := make(map[string]int)
	mentorSlots := slots(mentor.Availability)

	for _, mentee := range mentees {
		menteeSlots := slots(mentee.Availability)
		for slot := range mentorSlots {
			if _, ok := menteeSlots[slot]; ok {
				counts[slot]++
			}
		}
	}

	schedule := make([]string, 0, len(counts))
	for slot := range counts {
		schedule = append(schedule, slot)
	}
	sort.Slice(schedule, func(i, j int) bool {
		if counts[schedule[i]] != counts[schedule[j]] {
			return counts[schedule[i]] > counts[schedule[j]]
		}
		return schedule[i] < schedule[j]
	})

	if len(schedule) > maxSessionSlots {
		schedule = schedule[:maxSessionSlots]
	}
	return schedule
}

func canLearnFrom(mentee, mentor models.TeamMember) bool {
	for _, need := range mentee.Skills {
		for _, offer := range mentor.Skills {
			if normalize(need.Name) == normalize(offer.Name) && LevelOrdinal(need.Level) < LevelOrdinal(offer.Level) {
				return true
			}
		}
	}
	return false
}

// mentorshipScore is the share of (mentee, focus area) pairs where the
// mentee holds that skill at a lower level.
func mentorshipScore(mentor models.TeamMember, mentees []models.TeamMember, focus []string) int {
	if len(focus) == 0 {
		return neutralScore
	}

	mentorLevels := make(map[string]int, len(mentor.Skills))
	for _, s := range mentor.Skills {
		mentorLevels[normalize(s.Name)] = LevelOrdinal(s.Level)
	}

	matched := 0
	for _, mentee := range mentees {
		for _, area := range focus {
			key := normalize(area)
			for _, s := range mentee.Skills {
				if normalize(s.Name) == key && LevelOrdinal(s.Level) < mentorLevels[key] {
					matched++
					break
				}
			}
		}
	}

	score := float64(matched) / float64(len(mentees)*len(focus)) * 100
	return clamp(int(math.Round(score)))
}

// slots expands availability tags into day-type/time-of-day pairs. A tag
// that names no day type covers both; one that names no time covers all.
func slots(availability []string) map[string]struct{} {
	out := make(map[string]struct{})

	for _, tag := range availability {
		tag = strings.ToLower(tag)

		days := matchingTerms(tag, dayTypes)
		times := matchingTerms(tag, timesOfDay)
		if len(days) == 0 && len(times) == 0 {
			continue
		}
		if len(days) == 0 {
			days = dayTypes
		}
		if len(times) == 0 {
			times = timesOfDay
		}

		for _, d := range days {
			for _, t := range times {
				out[title(d)+" "+title(t)] = struct{}{}
			}
		}
	}

	return out
}

func matchingTerms(tag string, terms []string) []string {
	found := []string{}
	for _, term := range terms {
		if strings.Contains(tag, term) {
			found = append(found, term)
		}
	}
	return found
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
