package notifier

import (
	"sync"

	"github.com/mauv0809/summoner-tracker/internal/player"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendRankChangesFunc func(changes []player.RankChange) error

	// Call records
	SendRankChangesCalls [][]player.RankChange
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRankChangesCalls = nil
}

func (m *Mock) SendRankChanges(changes []player.RankChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRankChangesCalls = append(m.SendRankChangesCalls, changes)
	if m.SendRankChangesFunc != nil {
		return m.SendRankChangesFunc(changes)
	}
	return nil
}

// Calls returns a copy of the recorded batches.
func (m *Mock) Calls() [][]player.RankChange {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]player.RankChange(nil), m.SendRankChangesCalls...)
}
