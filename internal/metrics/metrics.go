package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Security Metrics
var (
	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailuresTotal,
			Help: HelpTextAuthFailuresTotal,
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedTotal,
			Help: HelpTextRateLimitedTotal,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	TradesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradesTotal,
			Help: HelpTextTradesTotal,
		},
		[]string{LabelOutcome},
	)

	TradeValueTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradeValueTotal,
			Help: HelpTextTradeValueTotal,
		},
		[]string{LabelSide},
	)

	LedgerPersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLedgerPersistFailures,
			Help: HelpTextLedgerPersistFailures,
		},
	)

	ActiveViewers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveViewers,
			Help: HelpTextActiveViewers,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
