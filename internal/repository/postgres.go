package repository

import (
	"time"

	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"go.uber.org/zap"
)

// maxListRows caps every list query
const maxListRows = 500

func recordMetrics(operation, status string, start time.Time, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	metrics.DBOperationDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DBOperationTotal.WithLabelValues(operation, status).Inc()
	logger.LogAPICall("postgres", operation, status, duration, fields...)
}
