package googlebooks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookcatalog",
			Subsystem: "googlebooks",
			Name:      "requests_total",
			Help:      "Requests sent to the Google Books API",
		},
		[]string{"op", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bookcatalog",
			Subsystem: "googlebooks",
			Name:      "request_duration_seconds",
			Help:      "Duration of Google Books API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)
