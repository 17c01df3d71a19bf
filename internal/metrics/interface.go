package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncRefreshRuns()
	IncRefreshRejected()
	ObserveRefreshDuration(duration float64)
	IncHistoryWrites(queue string)
	IncMatchesIngested()
	IncMatchesInvalid()
	IncProviderErrors()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
