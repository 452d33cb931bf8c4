// Package metrics defines Prometheus metrics for greenscore.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "greenscore"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)

// Scoring metrics.
var (
	AssessmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessments_total",
		Help:      "Total number of product assessments computed.",
	})

	ScoringDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scoring_distribution",
		Help:      "Distribution of computed sustainability scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, 20, ..., 100
	})

	InvalidInputTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invalid_input_total",
		Help:      "Total number of assessment requests rejected for non-finite inputs.",
	})
)

// Ranking metrics.
var (
	AlternativesServedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alternatives_served_total",
		Help:      "Total number of alternative records returned.",
	})

	RankerTierTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ranker_tier_total",
		Help:      "Ranking requests by the fallback tier that produced results.",
	}, []string{"tier"})
)

// Catalog metrics.
var (
	CatalogRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_records",
		Help:      "Number of records in the active catalog snapshot.",
	})

	CatalogRefreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_refreshes_total",
		Help:      "Total number of successful catalog refreshes.",
	})

	CatalogRefreshErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_refresh_errors_total",
		Help:      "Total number of failed catalog refreshes.",
	})
)

// Savings metrics.
var (
	CO2SavedKg = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "co2_saved_kg",
		Help:      "Cumulative kg CO2e saved through accepted alternative swaps.",
	})
)
