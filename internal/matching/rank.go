package matching

import (
	"sort"

	"github.com/hackflow/hackflow-api/internal/models"
)

// RankCandidates scores every candidate other than the requester and sorts
// them by match score, best first. Ties keep candidate order.
func RankCandidates(requester models.TeamMember, candidates []models.TeamMember) []models.TeamMatch {
	matches := make([]models.TeamMatch, 0, len(candidates))

	for _, candidate := range candidates {
		if requester.ID != "" && candidate.ID == requester.ID {
			continue
		}

		compatibility := Score(requester, candidate)
		matches = append(matches, models.TeamMatch{
			Member:             candidate,
			Compatibility:      compatibility,
			MatchScore:         MatchScore(compatibility),
			SharedSkills:       intersect(skillNames(requester.Skills), skillNames(candidate.Skills)),
			SharedInterests:    intersect(requester.ProjectPreferences, candidate.ProjectPreferences),
			CommonAvailability: intersect(requester.Availability, candidate.Availability),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	return matches
}
