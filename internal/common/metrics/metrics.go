package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_recommendations_total",
			Help: "Total number of recommendation runs by outcome (succeeded, fallback)",
		},
		[]string{"outcome"},
	)

	RecommendationFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_recommendation_fallbacks_total",
			Help: "Total number of fallback recommendation lists served, by reason",
		},
		[]string{"reason"},
	)

	GeminiCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gemini_call_duration_seconds",
			Help: "Duration of upstream Gemini calls in seconds",
		},
		[]string{"operation"},
	)

	AssessmentsCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_completed_total",
			Help: "Total number of submitted assessments by type",
		},
		[]string{"type"},
	)
)
