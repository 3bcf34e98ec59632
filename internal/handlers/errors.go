package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/hackflow/hackflow-api/pkg/aijson"
	"github.com/hackflow/hackflow-api/pkg/elevenlabs"
	"github.com/hackflow/hackflow-api/pkg/errors"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/perplexity"
	"go.uber.org/zap"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}

// respondBindError reports a request that failed binding or validation
func respondBindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", ParseValidationErrors(err), err)
		return
	}
	respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", err.Error(), err)
}

// respondServiceError maps a service error onto the API error taxonomy.
// message is used for failures that have no more specific mapping.
func respondServiceError(c *gin.Context, err error, message string) {
	var perplexityErr *perplexity.APIError
	var elevenLabsErr *elevenlabs.APIError
	var parseErr *aijson.ParseError

	switch {
	case errors.Is(err, errors.ErrNotConfigured):
		respondError(c, http.StatusServiceUnavailable, notConfiguredMessage(err), err)
	case errors.Is(err, errors.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, errors.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error(), err)
	case errors.As(err, &perplexityErr):
		respondErrorWithDetails(c, upstreamStatus(perplexityErr.Status), "Perplexity API request failed", perplexityErr.Detail, err)
	case errors.As(err, &elevenLabsErr):
		respondErrorWithDetails(c, upstreamStatus(elevenLabsErr.Status), "ElevenLabs API request failed", elevenLabsErr.Detail, err)
	case errors.As(err, &parseErr):
		attachError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse AI response", "raw": parseErr.Raw})
	default:
		logger.Error(message, zap.String("path", c.Request.URL.Path), zap.Error(err))
		respondError(c, http.StatusInternalServerError, message, err)
	}
}

func notConfiguredMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "perplexity"):
		return "Perplexity API key is not configured"
	case strings.HasPrefix(msg, "elevenlabs"):
		return "ElevenLabs API key is not configured"
	default:
		return "Service is not configured"
	}
}

// upstreamStatus keeps the upstream status unless it would read as success
func upstreamStatus(status int) int {
	if status < http.StatusBadRequest || status > 599 {
		return http.StatusBadGateway
	}
	return status
}
