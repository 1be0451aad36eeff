package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AdmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exambooking_admissions_total",
			Help: "Booking submissions by outcome",
		},
		[]string{"outcome"},
	)

	ReviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exambooking_reviews_total",
			Help: "Operator review decisions by resulting status",
		},
		[]string{"status"},
	)

	OrphansSwept = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exambooking_orphans_swept_total",
			Help: "Orphaned evidence objects processed by the sweeper",
		},
		[]string{"result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "exambooking_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Admission outcomes.
const (
	OutcomeAdmitted     = "admitted"
	OutcomeRejected     = "rejected"
	OutcomeUploadFailed = "upload_failed"
	OutcomeError        = "error"
)
