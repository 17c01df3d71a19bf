package riot

import (
	"context"
	"sync"
)

var _ Provider = (*MockClient)(nil)

// MockClient is a mock implementation of the Provider interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	GetAccountFunc       func(gameName, tagLine string) (Account, error)
	GetSummonerFunc      func(puuid string) (Summoner, error)
	GetLeagueEntriesFunc func(puuid string) ([]LeagueEntry, error)
	GetMatchIDsFunc      func(puuid string, count int) ([]string, error)
	GetMatchFunc         func(matchID string) (Match, error)
	GetProfileIconFunc   func(iconID int) ([]byte, error)
	RateLimitInfo        RateLimitInfo

	GetAccountCalls       []string
	GetSummonerCalls      []string
	GetLeagueEntriesCalls []string
	GetMatchIDsCalls      []string
	GetMatchCalls         []string
	GetProfileIconCalls   []int
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetAccountCalls = nil
	m.GetSummonerCalls = nil
	m.GetLeagueEntriesCalls = nil
	m.GetMatchIDsCalls = nil
	m.GetMatchCalls = nil
	m.GetProfileIconCalls = nil
}

// Funcs are invoked outside the lock so they may block.

func (m *MockClient) GetAccount(_ context.Context, gameName, tagLine string) (Account, error) {
	m.mu.Lock()
	m.GetAccountCalls = append(m.GetAccountCalls, gameName+"#"+tagLine)
	fn := m.GetAccountFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(gameName, tagLine)
	}
	return Account{Puuid: gameName + "-puuid", GameName: gameName, TagLine: tagLine}, nil
}

func (m *MockClient) GetSummoner(_ context.Context, puuid string) (Summoner, error) {
	m.mu.Lock()
	m.GetSummonerCalls = append(m.GetSummonerCalls, puuid)
	fn := m.GetSummonerFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(puuid)
	}
	return Summoner{Puuid: puuid}, nil
}

func (m *MockClient) GetLeagueEntries(_ context.Context, puuid string) ([]LeagueEntry, error) {
	m.mu.Lock()
	m.GetLeagueEntriesCalls = append(m.GetLeagueEntriesCalls, puuid)
	fn := m.GetLeagueEntriesFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(puuid)
	}
	return []LeagueEntry{}, nil
}

func (m *MockClient) GetMatchIDs(_ context.Context, puuid string, count int) ([]string, error) {
	m.mu.Lock()
	m.GetMatchIDsCalls = append(m.GetMatchIDsCalls, puuid)
	fn := m.GetMatchIDsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(puuid, count)
	}
	return []string{}, nil
}

func (m *MockClient) GetMatch(_ context.Context, matchID string) (Match, error) {
	m.mu.Lock()
	m.GetMatchCalls = append(m.GetMatchCalls, matchID)
	fn := m.GetMatchFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(matchID)
	}
	return Match{}, ErrNotFound
}

func (m *MockClient) GetProfileIcon(_ context.Context, iconID int) ([]byte, error) {
	m.mu.Lock()
	m.GetProfileIconCalls = append(m.GetProfileIconCalls, iconID)
	fn := m.GetProfileIconFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(iconID)
	}
	return nil, ErrNotFound
}

func (m *MockClient) GetRateLimitInfo() RateLimitInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.RateLimitInfo
}

// SetRateLimitInfo replaces the reported rate limit state.
func (m *MockClient) SetRateLimitInfo(info RateLimitInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RateLimitInfo = info
}

// MatchCalls returns a copy of GetMatchCalls.
func (m *MockClient) MatchCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.GetMatchCalls...)
}
