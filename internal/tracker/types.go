package tracker

import (
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/summoner-tracker/internal/icons"
	"github.com/mauv0809/summoner-tracker/internal/metrics"
	"github.com/mauv0809/summoner-tracker/internal/notifier"
	"github.com/mauv0809/summoner-tracker/internal/player"
	"github.com/mauv0809/summoner-tracker/internal/pubsub"
	"github.com/mauv0809/summoner-tracker/internal/rank"
	"github.com/mauv0809/summoner-tracker/internal/riot"
	"github.com/mauv0809/summoner-tracker/internal/store"
	"golang.org/x/sync/semaphore"
)

var (
	ErrRefreshInProgress = errors.New("refresh already in progress")
	ErrUnknownPlayer     = errors.New("unknown player")
)

// Match kinds ingested when Options.MatchQueues is empty.
var DefaultMatchQueues = []string{"ranked_solo_fives", "ranked_flex_fives", "normal_draft_fives"}

const (
	DefaultMatchHistoryLimit = 20
	DefaultTag               = "EUW"
)

// Deps are the collaborators a Manager drives. Notifier, Publisher, Codec and
// Icons fall back to no-op or default implementations when nil.
type Deps struct {
	Store     store.DocumentStore
	Provider  riot.Provider
	Metrics   metrics.Metrics
	Codec     rank.Codec
	Notifier  notifier.Notifier
	Publisher pubsub.Publisher
	Icons     *icons.Cache
}

type Options struct {
	// Queues tracked in rank history.
	Queues []player.QueueType
	// MatchQueues are the match kinds worth storing; others are marked invalid.
	MatchQueues       []string
	MatchHistoryLimit int
	// FetchParticipantRanks looks up every participant's rank when storing a match.
	FetchParticipantRanks bool
	// DefaultTag completes roster entries written without "#TAG".
	DefaultTag string
	IconDir    string
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// Summary counts what one RefreshAll did.
type Summary struct {
	Players         int           `json:"players"`
	Refreshed       int           `json:"refreshed"`
	Failed          int           `json:"failed"`
	Skipped         int           `json:"skipped"`
	HistoryWrites   int           `json:"history_writes"`
	MatchesIngested int           `json:"matches_ingested"`
	MatchesInvalid  int           `json:"matches_invalid"`
	Duration        time.Duration `json:"duration"`
}

// MatchResult is the outcome of one RefreshMatches call.
type MatchResult struct {
	Ingested []player.MatchRecord
	Invalid  int
}

// Manager owns the roster of player records and keeps them in sync with the provider.
type Manager struct {
	deps  Deps
	opts  Options
	gate  *semaphore.Weighted
	queue map[string]bool

	// mu guards records and every record in it. Provider calls happen without it.
	mu      sync.RWMutex
	records map[string]*player.Record
	order   []string

	scheduler *Scheduler
}
