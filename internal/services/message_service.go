package services

import (
	"context"
	"strings"

	"github.com/hackflow/hackflow-api/internal/chat"
	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/internal/repository"
	"github.com/hackflow/hackflow-api/pkg/errors"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"go.uber.org/zap"
)

type MessageService struct {
	repo        repository.MessageRepository
	broadcaster MessageBroadcaster
}

// NewMessageService creates the service. broadcaster may be nil.
func NewMessageService(repo repository.MessageRepository, broadcaster MessageBroadcaster) *MessageService {
	return &MessageService{repo: repo, broadcaster: broadcaster}
}

func (s *MessageService) List(ctx context.Context, teamID string) ([]models.TeamMessage, error) {
	return s.repo.ListByTeam(ctx, teamID)
}

// Create stores a message sent by userID and relays it to the team room
func (s *MessageService) Create(ctx context.Context, userID string, req *models.CreateMessageRequest) (*models.TeamMessage, error) {
	msg := &models.TeamMessage{
		TeamID:     strings.TrimSpace(req.TeamID),
		Sender:     userID,
		SenderName: strings.TrimSpace(req.SenderName),
		Message:    req.Message,
	}

	if !chat.ValidTeamID(msg.TeamID) {
		return nil, errors.InvalidInputError("teamId", "must not contain dots, wildcards or whitespace")
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		if err := s.broadcaster.Broadcast(ctx, msg); err != nil {
			logger.Warn("Failed to relay stored message", zap.String("team_id", msg.TeamID), zap.Error(err))
		}
	}

	return msg, nil
}
