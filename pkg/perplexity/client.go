package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hackflow/hackflow-api/pkg/errors"
	"github.com/hackflow/hackflow-api/pkg/httpclient"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"go.uber.org/zap"
)

const serviceName = "perplexity"


// APIError is a non-2xx answer from the Perplexity API
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("perplexity API returned status %d", e.Status)
}

// Config holds Perplexity connection settings
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client calls the Perplexity chat completions API
type Client struct {
	httpClient httpclient.Client
	apiKey     string
	baseURL    string
	model      string
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// NewClient creates a Perplexity client
func NewClient(cfg Config, httpClient httpclient.Client) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Complete sends one system+user exchange and returns the model's text.
// operation labels metrics and logs.
func (c *Client) Complete(ctx context.Context, operation, systemPrompt, userPrompt string) (string, error) {
	if !c.Configured() {
		return "", errors.NotConfiguredError("perplexity")
	}

	start := time.Now()

	messages := make([]message, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, message{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, message{Role: "user", Content: userPrompt})

	body, err := json.Marshal(completionRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(operation, "error", start, zap.Error(err))
		return "", fmt.Errorf("perplexity request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(operation, "error", start, zap.Error(err))
		return "", fmt.Errorf("failed to read perplexity response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := httpclient.ErrorDetail(respBody, httpclient.MaxErrorDetail)
		c.record(operation, "error", start, zap.Int("status_code", resp.StatusCode))
		return "", &APIError{Status: resp.StatusCode, Detail: detail}
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		c.record(operation, "error", start, zap.Error(err))
		return "", fmt.Errorf("failed to decode perplexity response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		c.record(operation, "error", start)
		return "", fmt.Errorf("perplexity response has no choices")
	}

	c.record(operation, "success", start)
	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) record(operation, status string, start time.Time, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	metrics.RecordUpstream(serviceName, operation, status, duration)
	logger.LogAPICall(serviceName, operation, status, duration, append(fields, zap.String("model", c.model))...)
}
