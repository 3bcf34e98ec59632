// Package matching scores how well hackathon participants fit together.
// Every function is pure and never fails: missing data degrades to a
// neutral 50 or to 0.
package matching

import (
	"math"
	"strings"

	"github.com/hackflow/hackflow-api/internal/models"
)

const neutralScore = 50

const (
	weightTechnical  = 0.4
	weightTimezone   = 0.2
	weightExperience = 0.25
	weightInterests  = 0.15
)

// LevelOrdinal maps Beginner..Expert to 1..4. Unknown levels count as Beginner.
func LevelOrdinal(level models.SkillLevel) int {
	switch strings.ToLower(string(level)) {
	case "expert":
		return 4
	case "advanced":
		return 3
	case "intermediate":
		return 2
	default:
		return 1
	}
}

// SkillCompatibility is the Jaccard similarity of skill names, as a percentage
func SkillCompatibility(a, b []models.Skill) int {
	return jaccard(skillNames(a), skillNames(b))
}

// InterestCompatibility is the Jaccard similarity of interest tags
func InterestCompatibility(a, b []string) int {
	return jaccard(a, b)
}

// ExperienceCompatibility compares average skill levels
func ExperienceCompatibility(a, b []models.Skill) int {
	if len(a) == 0 || len(b) == 0 {
		return neutralScore
	}
	diff := math.Abs(averageLevel(a) - averageLevel(b))
	return clamp(int(math.Round(100 - diff/3*100)))
}

// Score computes all four sub-scores for a pair
func Score(a, b models.TeamMember) models.CompatibilityScore {
	return models.CompatibilityScore{
		Technical:  SkillCompatibility(a.Skills, b.Skills),
		Timezone:   TimezoneCompatibility(a.Timezone, b.Timezone),
		Experience: ExperienceCompatibility(a.Skills, b.Skills),
		Interests:  InterestCompatibility(a.ProjectPreferences, b.ProjectPreferences),
	}
}

// MatchScore combines sub-scores with fixed weights
func MatchScore(c models.CompatibilityScore) int {
	return int(math.Round(
		weightTechnical*float64(c.Technical) +
			weightTimezone*float64(c.Timezone) +
			weightExperience*float64(c.Experience) +
			weightInterests*float64(c.Interests),
	))
}

func jaccard(a, b []string) int {
	setA, setB := normalizedSet(a), normalizedSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return neutralScore
	}

	intersection := 0
	for k := range setA {
		if _, ok := setB[k]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return int(math.Round(float64(intersection) / float64(union) * 100))
}

// intersect keeps the entries of a that also appear in b, case-insensitively,
// in a's order and spelling.
func intersect(a, b []string) []string {
	setB := normalizedSet(b)
	out := []string{}
	seen := make(map[string]struct{})
	for _, v := range a {
		key := normalize(v)
		if _, ok := setB[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

func normalizedSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if key := normalize(v); key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func skillNames(skills []models.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func averageLevel(skills []models.Skill) float64 {
	total := 0
	for _, s := range skills {
		total += LevelOrdinal(s.Level)
	}
	return float64(total) / float64(len(skills))
}

func clamp(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
