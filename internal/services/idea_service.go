package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hackflow/hackflow-api/config"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/repository"
	"github.com/hackflow/hackflow-api/pkg/flowchart"
	"github.com/hackflow/hackflow-api/pkg/httpclient"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"github.com/hackflow/hackflow-api/pkg/trigger"
	"go.uber.org/zap"
)

const ideaSystemPrompt = `You are a hackathon mentor. Expand the user's idea into a concise project plan in markdown.
Use "## " headings for each phase (Problem, Solution, Features, Tech Stack, Timeline, Pitch) and "- " bullets under each heading.
Keep bullets short and actionable.`

// IdeaService generates ideas with the LLM and stores saved ones
type IdeaService struct {
	llm        LLM
	repo       repository.IdeaRepository
	config     *config.Config
	httpClient httpclient.Client
}

func NewIdeaService(llm LLM, repo repository.IdeaRepository, cfg *config.Config, httpClient httpclient.Client) *IdeaService {
	return &IdeaService{
		llm:        llm,
		repo:       repo,
		config:     cfg,
		httpClient: httpClient,
	}
}

// Generate asks the model for an idea write-up and derives a flowchart from it
func (s *IdeaService) Generate(ctx context.Context, req *models.GenerateIdeaRequest) (*models.GenerateIdeaResponse, error) {
	prompt := fmt.Sprintf("Hackathon project title: %s", req.Title)
	if p := strings.TrimSpace(req.Prompt); p != "" {
		prompt += "\n\nDetails from the team:\n" + p
	}

	text, err := s.llm.Complete(ctx, "generateIdea", ideaSystemPrompt, prompt)
	if err != nil {
		metrics.IdeasGenerated.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.IdeasGenerated.WithLabelValues("success").Inc()

	return &models.GenerateIdeaResponse{
		Idea:      text,
		Flowchart: flowchart.Build(req.Title, text),
	}, nil
}

// Save stores the idea for userID and fires the idea-created trigger
func (s *IdeaService) Save(ctx context.Context, userID string, req *models.CreateIdeaRequest) (*models.Idea, error) {
	idea := &models.Idea{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Flowchart:   req.Flowchart,
		UserID:      userID,
	}

	if err := s.repo.Create(ctx, idea); err != nil {
		metrics.IdeasSaved.WithLabelValues("error").Inc()
		logger.Error("Failed to save idea", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}
	metrics.IdeasSaved.WithLabelValues("success").Inc()

	logger.Info("Idea saved", zap.String("idea_id", idea.ID), zap.String("user_id", userID))

	trigger.CallAsync(s.config.EventTriggers.IdeaCreatedTriggerURL, trigger.Event{
		Type:      "idea.created",
		RecordID:  idea.ID,
		UserID:    userID,
		CreatedAt: idea.CreatedAt,
	}, s.httpClient)

	return idea, nil
}

func (s *IdeaService) List(ctx context.Context, userID string) ([]models.Idea, error) {
	return s.repo.ListByUser(ctx, userID)
}
