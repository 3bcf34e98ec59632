package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hackflow/hackflow-api/pkg/errors"
	"github.com/hackflow/hackflow-api/pkg/httpclient"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"go.uber.org/zap"
)

const (
	serviceName = "elevenlabs"
	// AudioContentType is what the text-to-speech endpoint returns
	AudioContentType = "audio/mpeg"
)

// APIError is a non-2xx answer from ElevenLabs
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("elevenlabs API returned status %d", e.Status)
}

type Config struct {
	APIKey  string
	BaseURL string
	VoiceID string
	ModelID string
}

// Client converts narration text to speech
type Client struct {
	httpClient httpclient.Client
	apiKey     string
	baseURL    string
	voiceID    string
	modelID    string
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

func NewClient(cfg Config, httpClient httpclient.Client) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		voiceID:    cfg.VoiceID,
		modelID:    cfg.ModelID,
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Synthesize returns MP3 audio for text. An empty voiceID uses the default voice.
func (c *Client) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if !c.Configured() {
		return nil, errors.NotConfiguredError("elevenlabs")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.InvalidInputError("text", "narration text is empty")
	}
	if voiceID == "" {
		voiceID = c.voiceID
	}

	start := time.Now()
	operation := "textToSpeech"

	body, err := json.Marshal(ttsRequest{
		Text:    text,
		ModelID: c.modelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, url.PathEscape(voiceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", AudioContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to read elevenlabs response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.record(operation, "error", start, zap.Int("status_code", resp.StatusCode))
		return nil, &APIError{Status: resp.StatusCode, Detail: httpclient.ErrorDetail(audio, httpclient.MaxErrorDetail)}
	}

	c.record(operation, "success", start, zap.Int("size_bytes", len(audio)))
	return audio, nil
}

func (c *Client) record(operation, status string, start time.Time, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	metrics.RecordUpstream(serviceName, operation, status, duration)
	logger.LogAPICall(serviceName, operation, status, duration, fields...)
}
