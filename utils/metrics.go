package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AppMetrics holds the Prometheus metrics for the service
type AppMetrics struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	BookingsCreated     prometheus.Counter
	StoreErrors         prometheus.Counter
	AvailabilityLookups prometheus.Counter
}

// NewMetrics registers and returns the application metrics
func NewMetrics() *AppMetrics {
	return &AppMetrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "barberbook_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "barberbook_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "barberbook_bookings_created_total",
			Help: "Total number of appointments booked",
		}),

		StoreErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "barberbook_store_errors_total",
			Help: "Total number of spreadsheet store errors",
		}),

		AvailabilityLookups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "barberbook_availability_lookups_total",
			Help: "Total number of availability lookups",
		}),
	}
}

// Metrics is the shared metrics instance
var Metrics = NewMetrics()
