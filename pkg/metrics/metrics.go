package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry is served on /api/metrics
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// LLM and TTS calls routinely take several seconds, hence the long tail
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Database client metrics
	DBOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Database client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	DBOperationTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of database client operations",
		},
		[]string{"operation", "status"},
	)

	// Upstream API metrics (perplexity, elevenlabs, github)
	UpstreamRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_client_request_duration_seconds",
			Help:    "External API request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"service", "operation", "status"},
	)

	UpstreamRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_client_request_total",
			Help: "Total number of external API requests",
		},
		[]string{"service", "operation", "status"},
	)

	// Cache Metrics
	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	// Storage Client Metrics (S3-compatible)
	StorageRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_client_operation_duration_seconds",
			Help:    "Storage client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	StorageRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_client_operation_total",
			Help: "Total number of storage client operations",
		},
		[]string{"operation", "status"},
	)

	// Chat relay metrics
	ChatConnections = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "hackflow_chat_connections",
			Help: "Number of open chat socket connections",
		},
	)

	ChatMessagesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackflow_chat_messages_total",
			Help: "Total number of chat messages relayed",
		},
		[]string{"status"},
	)

	ChatDroppedConnections = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "hackflow_chat_dropped_connections_total",
			Help: "Connections dropped because their send buffer was full",
		},
	)

	// Business Metrics
	IdeasGenerated = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackflow_ideas_generated_total",
			Help: "Total number of AI idea generations",
		},
		[]string{"status"},
	)

	IdeasSaved = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackflow_ideas_saved_total",
			Help: "Total number of ideas persisted",
		},
		[]string{"status"},
	)

	MatchRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackflow_match_requests_total",
			Help: "Total number of team/mentorship matching requests",
		},
		[]string{"kind", "source"},
	)

	MatchResultsReturned = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hackflow_match_results_returned",
			Help:    "Number of matches returned per request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"kind"},
	)

	AIGenerations = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackflow_ai_generations_total",
			Help: "Total number of AI generations by feature",
		},
		[]string{"feature", "status"},
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

func init() {
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// RecordUpstream records one external API call
func RecordUpstream(service, operation, status string, duration float64) {
	UpstreamRequestDuration.WithLabelValues(service, operation, status).Observe(duration)
	UpstreamRequestTotal.WithLabelValues(service, operation, status).Inc()
}
