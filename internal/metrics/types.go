package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	RefreshRuns        prometheus.Counter
	RefreshRejected    prometheus.Counter
	RefreshDuration    prometheus.Histogram
	HistoryWrites      *prometheus.CounterVec
	MatchesIngested    prometheus.Counter
	MatchesInvalid     prometheus.Counter
	ProviderErrors     prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
