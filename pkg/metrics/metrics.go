package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for SubmissionsTotal
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Submissions sent to the collection endpoint, by result",
		},
		[]string{"result"},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_validation_failures_total",
			Help: "Submit attempts rejected by validation, by field",
		},
		[]string{"field"},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "form_submission_duration_seconds",
			Help:    "Time spent waiting on the collection endpoint",
			Buckets: prometheus.DefBuckets,
		},
	)
)
