package services

import (
	"context"
	"strings"

	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/repository"
)

type TeamProfileService struct {
	repo repository.TeamProfileRepository
}

func NewTeamProfileService(repo repository.TeamProfileRepository) *TeamProfileService {
	return &TeamProfileService{repo: repo}
}

func (s *TeamProfileService) List(ctx context.Context, teamID string) ([]models.TeamProfile, error) {
	return s.repo.ListByTeam(ctx, teamID)
}

func (s *TeamProfileService) Create(ctx context.Context, userID string, req *models.CreateTeamProfileRequest) (*models.TeamProfile, error) {
	profile := &models.TeamProfile{
		TeamID:       strings.TrimSpace(req.TeamID),
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Role:         strings.TrimSpace(req.Role),
		TechStack:    cleanList(req.TechStack),
		Skills:       cleanList(req.Skills),
		Availability: cleanList(req.Availability),
		LookingFor:   cleanList(req.LookingFor),
		GitHubRepo:   req.GitHubRepo,
		DiscordLink:  req.DiscordLink,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// cleanList trims entries and drops empty ones
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// splitCSV splits a comma-separated query value
func splitCSV(value string) []string {
	return cleanList(strings.Split(value, ","))
}
