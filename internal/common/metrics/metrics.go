// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	FootprintCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "footprint_calculations_total",
			Help: "Total number of footprint pipeline runs by entry point",
		},
		[]string{"source"},
	)

	AnalysisOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "footprint_analysis_outcomes_total",
			Help: "Analysis generator terminal states",
		},
		[]string{"outcome"},
	)

	TextGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "footprint_text_generation_duration_seconds",
			Help:    "Duration of external text generation calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "footprint_http_requests_total",
			Help: "HTTP requests served by route and status code",
		},
		[]string{"route", "status"},
	)
)
