package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// analysesTotal counts analysis runs by outcome.
	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldvision_analyses_total",
			Help: "Total number of field analysis runs",
		},
		[]string{"status"},
	)

	// analysisDuration tracks end-to-end analysis run time, upstream
	// calls included.
	analysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fieldvision_analysis_duration_seconds",
			Help:    "Duration of field analysis runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// recommendationsTotal counts emitted recommendation records by severity.
	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldvision_recommendations_total",
			Help: "Total number of recommendation records emitted",
		},
		[]string{"severity"},
	)

	// upstreamRequests counts calls to external collaborators by outcome.
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldvision_upstream_requests_total",
			Help: "Total number of upstream API calls",
		},
		[]string{"upstream", "status"},
	)
)
