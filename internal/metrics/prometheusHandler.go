package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var notesIngested = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "notes_ingested_total",
	Help: "Ingestion outcomes labelled by result (inserted, deduplicated, replaced, failed)",
}, []string{"result"})

var notesPerTenant = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "default_collection_notes_count",
	Help: "Note count of the default collection as seen by the last health check",
})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

// WriteHeader shadows the embedded writer's method so the status a handler
// writes is visible after the request completes.
func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CountIngestResult(result string) {
	notesIngested.WithLabelValues(result).Inc()
}

func SetDefaultCollectionNotesCount(count int) {
	notesPerTenant.Set(float64(count))
}

var queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "process_query_duration_seconds",
	Help:    "Total time spent answering a tutor query.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30},
}, []string{"query_type"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureQueryMetrics(label string, timeElapsed time.Duration) {
	queryDuration.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
