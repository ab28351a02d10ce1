// Package metrics exposes Prometheus collectors for the API and its domain events.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TasksCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labquest_tasks_created_total",
			Help: "Total number of tasks created",
		},
		[]string{"status"},
	)
	TaskStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labquest_task_status_changes_total",
			Help: "Total number of task status updates by target status",
		},
		[]string{"status"},
	)
	TasksDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "labquest_tasks_deleted_total",
			Help: "Total number of tasks deleted",
		},
	)
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labquest_audio_uploads_total",
			Help: "Total number of processed audio uploads",
		},
		[]string{"mode", "outcome"},
	)
	UploadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labquest_audio_upload_duration_seconds",
			Help:    "Time spent transcribing and summarizing one upload",
			Buckets: []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"mode"},
	)
	ProviderCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labquest_provider_calls_total",
			Help: "Calls to the transcription/summarization provider",
		},
		[]string{"call", "outcome"},
	)
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labquest_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "labquest_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func RecordTaskCreated(status string) {
	TasksCreated.WithLabelValues(status).Inc()
}

func RecordTaskStatusChanged(status string) {
	TaskStatusChanges.WithLabelValues(status).Inc()
}

func RecordTaskDeleted() {
	TasksDeleted.Inc()
}

func RecordUpload(mode string, err error, duration time.Duration) {
	UploadsTotal.WithLabelValues(mode, outcome(err)).Inc()
	UploadDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

func RecordProviderCall(call string, err error) {
	ProviderCalls.WithLabelValues(call, outcome(err)).Inc()
}

func RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
