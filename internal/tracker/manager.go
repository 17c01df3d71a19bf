package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/summoner-tracker/internal/history"
	"github.com/mauv0809/summoner-tracker/internal/icons"
	"github.com/mauv0809/summoner-tracker/internal/notifier"
	"github.com/mauv0809/summoner-tracker/internal/player"
	"github.com/mauv0809/summoner-tracker/internal/pubsub"
	"github.com/mauv0809/summoner-tracker/internal/rank"
	"github.com/mauv0809/summoner-tracker/internal/riot"
	"github.com/mauv0809/summoner-tracker/internal/store"
	"golang.org/x/sync/semaphore"
)

var _ Tracker = (*Manager)(nil)

// New builds a Manager. Call LoadRoster before refreshing.
func New(deps Deps, opts Options) *Manager {
	if len(opts.Queues) == 0 {
		opts.Queues = player.DefaultQueues
	}
	if len(opts.MatchQueues) == 0 {
		opts.MatchQueues = DefaultMatchQueues
	}
	if opts.MatchHistoryLimit <= 0 {
		opts.MatchHistoryLimit = DefaultMatchHistoryLimit
	}
	if opts.DefaultTag == "" {
		opts.DefaultTag = DefaultTag
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if deps.Codec == nil {
		deps.Codec = rank.NewCodec()
	}
	if deps.Notifier == nil {
		deps.Notifier = notifier.NewNop()
	}
	if deps.Publisher == nil {
		deps.Publisher = pubsub.NewNop()
	}
	if deps.Icons == nil {
		deps.Icons = icons.New(opts.IconDir, deps.Provider.GetProfileIcon)
	}

	accepted := make(map[string]bool, len(opts.MatchQueues))
	for _, q := range opts.MatchQueues {
		accepted[q] = true
	}

	return &Manager{
		deps:    deps,
		opts:    opts,
		gate:    semaphore.NewWeighted(1),
		queue:   accepted,
		records: make(map[string]*player.Record),
	}
}

// LoadRoster reads every player's document, creating fresh records for new
// usernames, and saves the roster back so new players exist in the store.
func (m *Manager) LoadRoster(usernames []string) ([]*player.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	loaded := make([]*player.Record, 0, len(usernames))
	for _, username := range usernames {
		if rec, ok := m.records[username]; ok {
			loaded = append(loaded, rec)
			continue
		}

		rec, err := m.deps.Store.Get(username)
		switch {
		case errors.Is(err, store.ErrNotFound):
			log.Info("Tracking new player", "username", username)
			rec = player.New(username, m.opts.Queues)
		case err != nil:
			return nil, fmt.Errorf("load %q: %w", username, err)
		default:
			rec.EnsureQueues(m.opts.Queues)
		}

		if err := m.deps.Store.Upsert(rec); err != nil {
			return nil, fmt.Errorf("save %q: %w", username, err)
		}
		m.records[username] = rec
		m.order = append(m.order, username)
		loaded = append(loaded, rec)
	}
	log.Info("Roster loaded", "players", len(loaded))
	return loaded, nil
}

// RefreshAll refreshes rank then matches for every player, one at a time.
// Only one refresh runs at once; a second caller is turned away, not queued.
func (m *Manager) RefreshAll(ctx context.Context) (Summary, error) {
	if !m.gate.TryAcquire(1) {
		m.deps.Metrics.IncRefreshRejected()
		return Summary{}, ErrRefreshInProgress
	}
	defer m.gate.Release(1)

	start := time.Now()
	m.deps.Metrics.IncRefreshRuns()

	m.mu.RLock()
	roster := make([]*player.Record, 0, len(m.order))
	for _, username := range m.order {
		roster = append(roster, m.records[username])
	}
	m.mu.RUnlock()

	summary := Summary{Players: len(roster)}
	var changes []player.RankChange
	var runErr error

	for _, rec := range roster {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		written, err := m.RefreshRank(ctx, rec)
		if err != nil {
			summary.Failed++
			log.Error("Rank refresh failed, skipping player", "username", rec.Username, "error", err)
			if runErr = m.backOff(err); runErr != nil {
				break
			}
			continue
		}
		changes = append(changes, written...)
		summary.HistoryWrites += len(written)

		result, err := m.RefreshMatches(ctx, rec)
		summary.MatchesIngested += len(result.Ingested)
		summary.MatchesInvalid += result.Invalid
		if err != nil {
			summary.Failed++
			log.Error("Match refresh stopped", "username", rec.Username, "error", err)
			if runErr = m.backOff(err); runErr != nil {
				break
			}
			continue
		}
		summary.Refreshed++
	}
	summary.Skipped = summary.Players - summary.Refreshed - summary.Failed

	if len(changes) > 0 {
		if err := m.deps.Notifier.SendRankChanges(changes); err != nil {
			log.Error("Failed to send rank changes", "error", err)
		}
	}

	summary.Duration = time.Since(start)
	m.deps.Metrics.ObserveRefreshDuration(summary.Duration.Seconds())
	log.Info("Refresh finished",
		"players", summary.Players,
		"refreshed", summary.Refreshed,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"history_writes", summary.HistoryWrites,
		"matches", summary.MatchesIngested,
		"invalid", summary.MatchesInvalid,
		"duration", summary.Duration,
	)
	return summary, runErr
}

// backOff ends the roster pass when the provider asked us to wait. Players
// not reached yet are picked up by the next run.
func (m *Manager) backOff(err error) error {
	if !errors.Is(err, riot.ErrRateLimited) {
		return nil
	}
	info := m.deps.Provider.GetRateLimitInfo()
	if info.RetryAfter <= 0 {
		return nil
	}
	log.Warn("Provider rate limit reached, ending refresh early",
		"retry_after_s", info.RetryAfter, "app_count", info.AppCount, "app_limit", info.AppLimit)
	return fmt.Errorf("%w: retry after %ds", err, info.RetryAfter)
}

// GetAll serialises every tracked record in roster order.
func (m *Manager) GetAll() []json.RawMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]json.RawMessage, 0, len(m.order))
	for _, username := range m.order {
		doc, err := json.Marshal(m.records[username])
		if err != nil {
			log.Error("Failed to serialise player", "username", username, "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

func (m *Manager) Get(username string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[username]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, username)
	}
	return json.Marshal(rec)
}

// DateRange lists every day from the roster's earliest to its latest history
// entry, inclusive, as dd/mm/yyyy. Empty when nobody has history yet.
func (m *Manager) DateRange() []string {
	m.mu.RLock()
	var dates []time.Time
	for _, rec := range m.records {
		dates = append(dates, rec.HistoryDates()...)
	}
	m.mu.RUnlock()

	first, last, err := history.Span(dates)
	if err != nil {
		return []string{}
	}
	days := history.Days(first, last)
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, history.FormatDate(d))
	}
	return out
}

// ProfileIcon serves the player's current profile icon, resolving the icon id
// from the provider the first time it is needed.
func (m *Manager) ProfileIcon(ctx context.Context, username string) ([]byte, error) {
	m.mu.RLock()
	rec, ok := m.records[username]
	var iconID int
	if ok {
		iconID = rec.ProfileIconID
	}
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, username)
	}

	// Zero means the summoner lookup has not succeeded yet.
	if iconID == 0 {
		puuid, err := m.resolvePuuid(ctx, rec)
		if err != nil {
			return nil, err
		}
		summoner, err := m.deps.Provider.GetSummoner(ctx, puuid)
		if err != nil {
			m.deps.Metrics.IncProviderErrors()
			return nil, err
		}
		iconID = summoner.ProfileIconID
		if err := m.mutate(rec, func(r *player.Record) {
			r.ProfileIconID = summoner.ProfileIconID
			r.SummonerLevel = summoner.SummonerLevel
		}); err != nil {
			log.Warn("Failed to save profile icon id", "username", username, "error", err)
		}
	}

	return m.deps.Icons.Get(ctx, username, iconID)
}

// mutate applies fn under the write lock and persists the whole record.
func (m *Manager) mutate(rec *player.Record, fn func(r *player.Record)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(rec)
	return m.deps.Store.Upsert(rec)
}

// Schedule starts periodic refreshes on a cron spec such as "@every 12h".
func (m *Manager) Schedule(spec string) (*Scheduler, error) {
	s, err := NewScheduler(m, spec)
	if err != nil {
		return nil, err
	}
	s.Start()
	m.scheduler = s
	return s, nil
}

// Close stops the scheduler, waiting for a running refresh to wind down.
func (m *Manager) Close() {
	if m.scheduler != nil {
		m.scheduler.Stop()
	}
}
