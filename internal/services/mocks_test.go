package services_test

import (
	"context"

	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/hackflow/hackflow-api/pkg/github"
	"github.com/stretchr/testify/mock"
)

// MockLLM is a mock implementation of services.LLM
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Complete(ctx context.Context, operation, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, operation, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

// MockSynthesizer is a mock implementation of services.SpeechSynthesizer
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	args := m.Called(ctx, text, voiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockUploader is a mock implementation of services.AudioUploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadAudio(ctx context.Context, data []byte, key, contentType string) (string, error) {
	args := m.Called(ctx, data, key, contentType)
	return args.String(0), args.Error(1)
}

// MockProfileSource is a mock implementation of services.ProfileSource
type MockProfileSource struct {
	mock.Mock
}

func (m *MockProfileSource) Get(ctx context.Context, username string) (*github.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.Profile), args.Error(1)
}

// MockBroadcaster is a mock implementation of services.MessageBroadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(ctx context.Context, msg *models.TeamMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockIdeaRepository is a mock implementation of repository.IdeaRepository
type MockIdeaRepository struct {
	mock.Mock
}

func (m *MockIdeaRepository) Create(ctx context.Context, idea *models.Idea) error {
	args := m.Called(ctx, idea)
	return args.Error(0)
}

func (m *MockIdeaRepository) ListByUser(ctx context.Context, userID string) ([]models.Idea, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Idea), args.Error(1)
}
