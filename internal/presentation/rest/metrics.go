package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scoreRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadscore_requests_total",
		Help: "Lead scoring requests by outcome.",
	}, []string{"outcome"})

	scoreDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "leadscore_request_duration_seconds",
		Help:    "Lead scoring request latency.",
		Buckets: prometheus.DefBuckets,
	})
)
