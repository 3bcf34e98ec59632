package services

import (
	"context"
	"encoding/json"

	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/pkg/github"
)

// IdeaServiceInterface defines idea generation and storage
type IdeaServiceInterface interface {
	Generate(ctx context.Context, req *models.GenerateIdeaRequest) (*models.GenerateIdeaResponse, error)
	Save(ctx context.Context, userID string, req *models.CreateIdeaRequest) (*models.Idea, error)
	List(ctx context.Context, userID string) ([]models.Idea, error)
}

// MessageServiceInterface defines team chat history operations
type MessageServiceInterface interface {
	List(ctx context.Context, teamID string) ([]models.TeamMessage, error)
	Create(ctx context.Context, userID string, req *models.CreateMessageRequest) (*models.TeamMessage, error)
}

// TeamProfileServiceInterface defines team profile operations
type TeamProfileServiceInterface interface {
	List(ctx context.Context, teamID string) ([]models.TeamProfile, error)
	Create(ctx context.Context, userID string, req *models.CreateTeamProfileRequest) (*models.TeamProfile, error)
}

// MatchingServiceInterface defines teammate and mentor matching
type MatchingServiceInterface interface {
	FindTeammates(ctx context.Context, query *models.TeamMatchingQuery) (*models.TeamMatchingResponse, error)
	MatchMentors(ctx context.Context, membersJSON string) (*models.MentorshipResponse, error)
}

// ResearchServiceInterface defines project research helpers
type ResearchServiceInterface interface {
	AnalyzeProject(ctx context.Context, req *models.AnalyzeProjectRequest) (*models.ProjectAnalysis, error)
	FindHackathons(ctx context.Context, req *models.FindHackathonsRequest) (*models.FindHackathonsResponse, error)
}

// SustainabilityServiceInterface defines sustainability scoring
type SustainabilityServiceInterface interface {
	Analyze(ctx context.Context, req *models.SustainabilityRequest) (*models.SustainabilityReport, error)
	Dataset(kind string) (json.RawMessage, error)
}

// LaunchpadServiceInterface defines startup material generation
type LaunchpadServiceInterface interface {
	Pitch(ctx context.Context, req *models.StartupBrief) (*models.Pitch, error)
	Video(ctx context.Context, req *models.VideoRequest) (*models.VideoResponse, error)
	Monetization(ctx context.Context, req *models.StartupBrief) (*models.MonetizationResponse, error)
}

// LLM is a single-turn chat completion provider
type LLM interface {
	Complete(ctx context.Context, operation, systemPrompt, userPrompt string) (string, error)
}

// SpeechSynthesizer turns narration into audio
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

// AudioUploader stores generated audio and returns a public URL
type AudioUploader interface {
	UploadAudio(ctx context.Context, data []byte, key, contentType string) (string, error)
}

// ProfileSource resolves GitHub usernames to profiles
type ProfileSource interface {
	Get(ctx context.Context, username string) (*github.Profile, error)
}

// MessageBroadcaster pushes a stored message to live chat rooms
type MessageBroadcaster interface {
	Broadcast(ctx context.Context, msg *models.TeamMessage) error
}
