package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Healthcheck(t *testing.T) {
	tests := []struct {
		name   string
		ping   func(ctx context.Context) error
		status int
		body   string
	}{
		{"offline", nil, http.StatusOK, `{"status":"ok","database":"offline"}`},
		{"healthy", func(context.Context) error { return nil }, http.StatusOK, `{"status":"ok","database":"ok"}`},
		{"db down", func(context.Context) error { return errors.New("refused") }, http.StatusServiceUnavailable, `{"status":"unavailable","database":"unreachable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/api/healthcheck", NewHealthHandler(tt.ping).Healthcheck)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/api/healthcheck", http.NoBody))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "no-cache, no-store, max-age=0, must-revalidate", w.Header().Get("Cache-Control"))
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
