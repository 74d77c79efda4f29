package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "authentiview_analyses_total",
		Help: "Completed analyses by flow and verdict.",
	}, []string{"flow", "verdict"})

	analysisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "authentiview_analysis_errors_total",
		Help: "Rejected analysis requests by flow and reason.",
	}, []string{"flow", "reason"})

	analysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "authentiview_analysis_duration_seconds",
		Help:    "Engine evaluation time by flow.",
		Buckets: prometheus.DefBuckets,
	}, []string{"flow"})
)
