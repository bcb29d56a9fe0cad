package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Security metric names
const (
	MetricNameAuthFailuresTotal = "auth_failures_total"
	MetricNameRateLimitedTotal  = "rate_limited_requests_total"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameTradesTotal           = "trades_total"
	MetricNameTradeValueTotal       = "trade_value_total"
	MetricNameLedgerPersistFailures = "ledger_persist_failures_total"
	MetricNameActiveViewers         = "active_viewers"
	MetricNameActiveSessions        = "active_sessions"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextAuthFailuresTotal = "Requests rejected for a missing or wrong API key"
	HelpTextRateLimitedTotal  = "Requests rejected by the per-IP request budget"

	HelpTextEventsPublished = "Total number of events published"

	HelpTextTradesTotal           = "Trade requests by lifecycle outcome"
	HelpTextTradeValueTotal       = "Summed item value moved by settled trades, per side"
	HelpTextLedgerPersistFailures = "Inventory ledger writes that failed to persist"
	HelpTextActiveViewers         = "Viewers seen within the active window"
	HelpTextActiveSessions        = "Sessions held in the session registry"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelSide    = "side"
)

// Trade outcome label values
const (
	OutcomeProposed = "proposed"
	OutcomeAccepted = "accepted"
	OutcomeDeclined = "declined"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
