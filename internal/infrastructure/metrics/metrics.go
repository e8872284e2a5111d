package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors for the settlement pipeline. Registered once by Init at startup.
var (
	// SettlementsTotal counts executed transactions reaching a terminal or
	// dispatched state, labelled by outcome (dispatched, completed,
	// failed_platform, failed_onchain).
	SettlementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlements_total",
			Help: "Settlements by outcome",
		},
		[]string{"outcome"},
	)

	// CompensationsTotal counts compensating credits applied to sponsorships
	CompensationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "compensating_credits_total",
			Help: "Compensating credits applied after failed transfers",
		},
	)

	// SweptChallengesTotal counts pending challenges expired by the sweeper
	SweptChallengesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "swept_challenges_total",
			Help: "Stale OTP challenges expired by the background sweep",
		},
	)

	// InFlightTransfers tracks transfers dispatched but not yet reconciled
	InFlightTransfers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "in_flight_transfers",
			Help: "Transfers awaiting asynchronous confirmation",
		},
	)

	// RequestsTotal counts HTTP requests by route, method and status
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests processed",
		},
		[]string{"route", "method", "status"},
	)

	// RequestDuration observes HTTP request latency by route, method and status
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

// Handler serves the /metrics endpoint
var Handler = promhttp.Handler()

// Init registers all collectors with the default registry
func Init() {
	prometheus.MustRegister(
		SettlementsTotal,
		CompensationsTotal,
		SweptChallengesTotal,
		InFlightTransfers,
		RequestsTotal,
		RequestDuration,
	)
}
