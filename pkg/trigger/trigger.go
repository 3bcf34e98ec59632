package trigger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hackflow/hackflow-api/pkg/httpclient"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"go.uber.org/zap"
)

// Event is the JSON body posted to a trigger URL
type Event struct {
	Type      string    `json:"type"`
	RecordID  string    `json:"record_id"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CallAsync posts the event to triggerURL in the background.
// Failures are logged and never reach the caller.
func CallAsync(triggerURL string, event Event, httpClient httpclient.Client) <-chan struct{} {
	done := make(chan struct{})
	if triggerURL == "" {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		start := time.Now()

		body, err := json.Marshal(event)
		if err != nil {
			logger.Error("Failed to encode trigger event", zap.Error(err), zap.String("type", event.Type))
			return
		}

		logger.Info("Calling trigger URL",
			zap.String("url", triggerURL),
			zap.String("type", event.Type),
			zap.String("record_id", event.RecordID))

		resp, err := httpClient.Post(triggerURL, "application/json", bytes.NewReader(body))
		if err != nil {
			metrics.RecordUpstream("trigger", event.Type, "error", metrics.MeasureDuration(start))
			logger.Error("Failed to call trigger URL",
				zap.Error(err),
				zap.String("url", triggerURL),
				zap.String("record_id", event.RecordID))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
			metrics.RecordUpstream("trigger", event.Type, "success", metrics.MeasureDuration(start))
			logger.Info("Trigger URL called successfully",
				zap.String("url", triggerURL),
				zap.String("record_id", event.RecordID),
				zap.Int("status_code", resp.StatusCode))
		} else {
			metrics.RecordUpstream("trigger", event.Type, "error", metrics.MeasureDuration(start))
			logger.Warn("Trigger URL returned non-success status",
				zap.String("url", triggerURL),
				zap.String("record_id", event.RecordID),
				zap.Int("status_code", resp.StatusCode))
		}
	}()

	return done
}
