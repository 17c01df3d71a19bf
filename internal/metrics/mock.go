package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	refreshRuns      int
	refreshRejected  int
	refreshDurations []float64
	historyWrites    map[string]int
	matchesIngested  int
	matchesInvalid   int
	providerErrors   int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		refreshDurations: make([]float64, 0),
		historyWrites:    make(map[string]int),
	}
}

func (m *Mock) IncRefreshRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshRuns++
}

func (m *Mock) IncRefreshRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshRejected++
}

func (m *Mock) ObserveRefreshDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshDurations = append(m.refreshDurations, duration)
}

func (m *Mock) IncHistoryWrites(queue string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historyWrites[queue]++
}

func (m *Mock) IncMatchesIngested() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesIngested++
}

func (m *Mock) IncMatchesInvalid() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesInvalid++
}

func (m *Mock) IncProviderErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providerErrors++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// RefreshRuns returns the number of times IncRefreshRuns was called.
func (m *Mock) RefreshRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshRuns
}

// RefreshRejected returns the number of times IncRefreshRejected was called.
func (m *Mock) RefreshRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshRejected
}

// HistoryWrites returns the number of history writes recorded for queue.
func (m *Mock) HistoryWrites(queue string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.historyWrites[queue]
}

// MatchesIngested returns the number of times IncMatchesIngested was called.
func (m *Mock) MatchesIngested() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesIngested
}

// MatchesInvalid returns the number of times IncMatchesInvalid was called.
func (m *Mock) MatchesInvalid() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesInvalid
}

// ProviderErrors returns the number of times IncProviderErrors was called.
func (m *Mock) ProviderErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.providerErrors
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
