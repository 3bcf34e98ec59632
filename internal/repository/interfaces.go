package repository

import (
	"context"

	"github.com/hackflow/hackflow-api/internal/models"
)

// IdeaRepository stores saved hackathon ideas
type IdeaRepository interface {
	// Create inserts the idea and fills its ID and CreatedAt
	Create(ctx context.Context, idea *models.Idea) error

	// ListByUser returns a user's ideas, newest first
	ListByUser(ctx context.Context, userID string) ([]models.Idea, error)
}

// MessageRepository stores team chat history
type MessageRepository interface {
	// Create inserts the message, assigning an ID and CreatedAt when missing
	Create(ctx context.Context, msg *models.TeamMessage) error

	// ListByTeam returns a team's messages, oldest first
	ListByTeam(ctx context.Context, teamID string) ([]models.TeamMessage, error)
}

// TeamProfileRepository stores member profiles per team
type TeamProfileRepository interface {
	// Create inserts the profile and fills its ID and CreatedAt
	Create(ctx context.Context, profile *models.TeamProfile) error

	// ListByTeam returns a team's profiles, oldest first
	ListByTeam(ctx context.Context, teamID string) ([]models.TeamProfile, error)
}
