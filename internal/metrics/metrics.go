package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huntwet_provider_calls_total",
			Help: "Upstream signal provider calls by outcome",
		},
		[]string{"provider", "outcome"},
	)

	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "huntwet_provider_latency_seconds",
			Help:    "Upstream signal provider call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huntwet_predictions_total",
			Help: "Predictions served by activity level",
		},
		[]string{"level"},
	)

	DegradedPredictionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "huntwet_degraded_predictions_total",
			Help: "Predictions served entirely from fallback data",
		},
	)

	HarvestsLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "huntwet_harvests_logged_total",
			Help: "Harvest records accepted into the logbook",
		},
	)
)
