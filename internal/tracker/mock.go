package tracker

import (
	"context"
	"encoding/json"
	"sync"
)

var _ Tracker = (*Mock)(nil)

// Mock is a mock implementation of the Tracker interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	RefreshAllFunc  func(ctx context.Context) (Summary, error)
	GetAllFunc      func() []json.RawMessage
	GetFunc         func(username string) (json.RawMessage, error)
	DateRangeFunc   func() []string
	ProfileIconFunc func(ctx context.Context, username string) ([]byte, error)

	// Call records
	RefreshAllCalls  int
	GetCalls         []string
	ProfileIconCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) RefreshAll(ctx context.Context) (Summary, error) {
	m.mu.Lock()
	m.RefreshAllCalls++
	fn := m.RefreshAllFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return Summary{}, nil
}

func (m *Mock) GetAll() []json.RawMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return []json.RawMessage{}
}

func (m *Mock) Get(username string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, username)
	if m.GetFunc != nil {
		return m.GetFunc(username)
	}
	return nil, ErrUnknownPlayer
}

func (m *Mock) DateRange() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DateRangeFunc != nil {
		return m.DateRangeFunc()
	}
	return []string{}
}

func (m *Mock) ProfileIcon(ctx context.Context, username string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProfileIconCalls = append(m.ProfileIconCalls, username)
	if m.ProfileIconFunc != nil {
		return m.ProfileIconFunc(ctx, username)
	}
	return nil, ErrUnknownPlayer
}
