package store

import (
	"sync"

	"github.com/mauv0809/summoner-tracker/internal/player"
)

// Mock is an in-memory DocumentStore for tests. It is safe for concurrent use.
// Without overrides it behaves like a real store and keeps deep copies.
type Mock struct {
	mu   sync.Mutex
	docs map[string]*player.Record

	// Spies for method calls
	GetFunc    func(username string) (*player.Record, error)
	UpsertFunc func(record *player.Record) error
	GetAllFunc func() ([]*player.Record, error)

	// Call records
	GetCalls    []string
	UpsertCalls []*player.Record
	GetAllCalls int
}

var _ DocumentStore = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{docs: make(map[string]*player.Record)}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = nil
	m.UpsertCalls = nil
	m.GetAllCalls = 0
}

func (m *Mock) Get(username string) (*player.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, username)
	if m.GetFunc != nil {
		return m.GetFunc(username)
	}
	doc, ok := m.docs[username]
	if !ok {
		return nil, ErrNotFound
	}
	return doc.Clone(), nil
}

func (m *Mock) Upsert(record *player.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := record.Clone()
	m.UpsertCalls = append(m.UpsertCalls, snapshot)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(record)
	}
	m.docs[record.Username] = snapshot
	return nil
}

func (m *Mock) GetAll() ([]*player.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAllCalls++
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	records := make([]*player.Record, 0, len(m.docs))
	for _, doc := range m.docs {
		records = append(records, doc.Clone())
	}
	return records, nil
}

// Document returns the last saved copy of username's record, or nil.
func (m *Mock) Document(username string) *player.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc, ok := m.docs[username]; ok {
		return doc.Clone()
	}
	return nil
}
