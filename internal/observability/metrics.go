// Package observability holds the Prometheus metric instruments shared
// across the application. HTTP request metrics come from the fiberprometheus
// middleware; the instruments here cover the reporting batch.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportStepDuration records the wall time of each reporting batch step.
	ReportStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "carelink_report_step_duration_seconds",
		Help:    "Reporting batch step duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"step"})

	// ReportStepFailures counts failed reporting batch steps.
	ReportStepFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carelink_report_step_failures_total",
		Help: "Total number of failed reporting batch steps",
	}, []string{"step"})
)
