package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/summoner-tracker/internal/player"
	"github.com/mauv0809/summoner-tracker/internal/pubsub"
	"github.com/mauv0809/summoner-tracker/internal/riot"
)

var (
	// errInvalidMatch marks matches that are never worth storing.
	errInvalidMatch       = errors.New("invalid match")
	errParticipantMissing = fmt.Errorf("%w: tracked player is not a participant", errInvalidMatch)
)

// RefreshRank takes one league reading per tracked queue and reconciles it
// into the record's history, then persists the record. It returns the history
// entries that were written. If any reading cannot be encoded nothing is
// changed for this cycle.
func (m *Manager) RefreshRank(ctx context.Context, rec *player.Record) ([]player.RankChange, error) {
	puuid, err := m.resolvePuuid(ctx, rec)
	if err != nil {
		return nil, err
	}

	summoner, summonerErr := m.deps.Provider.GetSummoner(ctx, puuid)
	if summonerErr != nil {
		m.deps.Metrics.IncProviderErrors()
		log.Warn("Failed to fetch summoner, keeping previous icon", "username", rec.Username, "error", summonerErr)
	}

	entries, err := m.deps.Provider.GetLeagueEntries(ctx, puuid)
	if err != nil {
		m.deps.Metrics.IncProviderErrors()
		return nil, fmt.Errorf("fetch league entries: %w", err)
	}

	snapshots := make(map[player.QueueType]player.Snapshot, len(m.opts.Queues))
	for _, q := range m.opts.Queues {
		entry, ok := findEntry(entries, q)
		if !ok {
			snapshots[q] = player.Snapshot{}
			continue
		}
		snap, err := m.snapshot(entry)
		if err != nil {
			return nil, fmt.Errorf("encode %s rank: %w", q, err)
		}
		snapshots[q] = snap
	}

	today := m.opts.Now()
	var written []player.RankChange
	err = m.mutate(rec, func(r *player.Record) {
		if summonerErr == nil {
			r.ProfileIconID = summoner.ProfileIconID
			r.SummonerLevel = summoner.SummonerLevel
		}
		for _, q := range m.opts.Queues {
			change := r.ReconcileRank(q, snapshots[q], today)
			if change.Written {
				written = append(written, change)
			}
		}
		r.LastRefreshedAt = today.UnixMilli()
	})
	if err != nil {
		return nil, fmt.Errorf("persist rank: %w", err)
	}

	for _, change := range written {
		m.deps.Metrics.IncHistoryWrites(string(change.Queue))
		log.Info("Rank history updated", "username", change.Username, "queue", change.Queue,
			"date", change.Date, "rank", m.deps.Codec.FormatTier(change.Tier, change.Rank), "previous", change.Previous.Rank)
		if err := m.deps.Publisher.SendMessage(pubsub.EventRankChanged, change); err != nil {
			log.Warn("Failed to publish rank change", "username", change.Username, "error", err)
		}
	}
	return written, nil
}

// RefreshMatches ingests the player's most recent matches, newest first.
// Seen and invalid ids are skipped. The record is persisted after every match,
// so a provider error stops the loop without losing earlier progress.
func (m *Manager) RefreshMatches(ctx context.Context, rec *player.Record) (MatchResult, error) {
	var result MatchResult

	puuid, err := m.resolvePuuid(ctx, rec)
	if err != nil {
		return result, err
	}

	ids, err := m.deps.Provider.GetMatchIDs(ctx, puuid, m.opts.MatchHistoryLimit)
	if err != nil {
		m.deps.Metrics.IncProviderErrors()
		return result, fmt.Errorf("fetch match ids: %w", err)
	}
	if len(ids) > m.opts.MatchHistoryLimit {
		ids = ids[:m.opts.MatchHistoryLimit]
	}

	ranks := newRankLookup(m)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		m.mu.RLock()
		seen := rec.Processed(id)
		m.mu.RUnlock()
		if seen {
			continue
		}

		match, err := m.deps.Provider.GetMatch(ctx, id)
		if err != nil {
			m.deps.Metrics.IncProviderErrors()
			return result, fmt.Errorf("fetch match %s: %w", id, err)
		}

		record, err := m.buildMatch(ctx, id, puuid, match, ranks)
		if err != nil && !errors.Is(err, errInvalidMatch) {
			// Retried next cycle; the match is not marked.
			return result, fmt.Errorf("build match %s: %w", id, err)
		}
		if err != nil {
			log.Info("Marking match invalid", "username", rec.Username, "match", id, "reason", err)
			if err := m.mutate(rec, func(r *player.Record) { r.MarkInvalid(id) }); err != nil {
				return result, fmt.Errorf("persist invalid match %s: %w", id, err)
			}
			m.deps.Metrics.IncMatchesInvalid()
			result.Invalid++
			continue
		}

		var added bool
		if err := m.mutate(rec, func(r *player.Record) { added = r.AppendMatch(record) }); err != nil {
			return result, fmt.Errorf("persist match %s: %w", id, err)
		}
		if !added {
			continue
		}
		m.deps.Metrics.IncMatchesIngested()
		result.Ingested = append(result.Ingested, record)
		log.Debug("Match ingested", "username", rec.Username, "match", id, "queue", record.Queue)

		event := pubsub.MatchIngested{Username: rec.Username, Match: record}
		if err := m.deps.Publisher.SendMessage(pubsub.EventMatchIngested, event); err != nil {
			log.Warn("Failed to publish match", "username", rec.Username, "match", id, "error", err)
		}
	}
	return result, nil
}

// resolvePuuid looks the player's account up once and remembers the puuid.
func (m *Manager) resolvePuuid(ctx context.Context, rec *player.Record) (string, error) {
	m.mu.RLock()
	puuid := rec.Puuid
	m.mu.RUnlock()
	if puuid != "" {
		return puuid, nil
	}

	gameName, tagLine := riot.ParseRiotID(rec.Username, m.opts.DefaultTag)
	account, err := m.deps.Provider.GetAccount(ctx, gameName, tagLine)
	if err != nil {
		m.deps.Metrics.IncProviderErrors()
		return "", fmt.Errorf("resolve account: %w", err)
	}
	if account.Puuid == "" {
		return "", fmt.Errorf("resolve account: %w", riot.ErrNotFound)
	}

	m.mu.Lock()
	rec.Puuid = account.Puuid
	m.mu.Unlock()
	log.Debug("Resolved player account", "username", rec.Username, "puuid", account.Puuid)
	return account.Puuid, nil
}

func (m *Manager) snapshot(entry riot.LeagueEntry) (player.Snapshot, error) {
	value, err := m.deps.Codec.Encode(entry.Tier, entry.Rank, entry.LeaguePoints)
	if err != nil {
		return player.Snapshot{}, err
	}
	return player.Snapshot{
		Rank:         value,
		Winrate:      [2]int{entry.Wins, entry.Losses},
		Tier:         entry.Tier,
		Division:     entry.Rank,
		LeaguePoints: entry.LeaguePoints,
		HotStreak:    entry.HotStreak,
	}, nil
}

// findEntry returns the entry of queue. Entries without a tier count as missing.
func findEntry(entries []riot.LeagueEntry, queue player.QueueType) (riot.LeagueEntry, bool) {
	for _, e := range entries {
		if player.QueueType(e.QueueType) == queue && e.Tier != "" {
			return e, true
		}
	}
	return riot.LeagueEntry{}, false
}

// buildMatch classifies and flattens a match. Errors wrapping errInvalidMatch
// mean the id should be marked invalid; any other error is transient.
func (m *Manager) buildMatch(ctx context.Context, id, puuid string, match riot.Match, ranks *rankLookup) (player.MatchRecord, error) {
	queue, err := riot.QueueName(match.Info.QueueID)
	if err != nil {
		return player.MatchRecord{}, fmt.Errorf("%w: %w", errInvalidMatch, err)
	}
	if !m.queue[queue] {
		return player.MatchRecord{}, fmt.Errorf("%w: queue %s is not tracked", errInvalidMatch, queue)
	}

	record := player.MatchRecord{
		MatchID:     id,
		Queue:       queue,
		QueueID:     *match.Info.QueueID,
		Duration:    match.Info.GameDuration,
		CreatedAt:   match.Info.GameCreation,
		GameVersion: match.Info.GameVersion,
		Teams: player.Teams{
			Blue: []player.ParticipantSummary{},
			Red:  []player.ParticipantSummary{},
		},
	}

	found := false
	ladder := ladderFor(queue)
	for _, p := range match.Info.Participants {
		if p.Puuid == puuid {
			record.Stats = participantStats(p)
			found = true
		}

		summary := player.ParticipantSummary{
			Name:     p.DisplayName(),
			Puuid:    p.Puuid,
			Champion: p.ChampionName,
			Win:      p.Win,
		}
		if m.opts.FetchParticipantRanks {
			summary.Rank, summary.Winrate, err = ranks.get(ctx, p.Puuid, ladder)
			if err != nil {
				return player.MatchRecord{}, fmt.Errorf("rank of %s: %w", summary.Name, err)
			}
		}

		switch p.TeamID {
		case riot.TeamBlue:
			record.Teams.Blue = append(record.Teams.Blue, summary)
		case riot.TeamRed:
			record.Teams.Red = append(record.Teams.Red, summary)
		default:
			log.Debug("Participant without a side", "match", id, "team", p.TeamID)
		}
	}
	if !found {
		return player.MatchRecord{}, errParticipantMissing
	}
	return record, nil
}

// ladderFor is the ranked ladder used to describe participants of a match kind.
func ladderFor(queue string) player.QueueType {
	if queue == "ranked_flex_fives" {
		return player.QueueRankedFlex
	}
	return player.QueueRankedSolo
}

func participantStats(p riot.Participant) player.ParticipantStats {
	return player.ParticipantStats{
		Champion:                    p.ChampionName,
		Position:                    p.TeamPosition,
		Win:                         p.Win,
		Kills:                       p.Kills,
		Deaths:                      p.Deaths,
		Assists:                     p.Assists,
		DoubleKills:                 p.DoubleKills,
		TripleKills:                 p.TripleKills,
		QuadraKills:                 p.QuadraKills,
		PentaKills:                  p.PentaKills,
		LargestKillingSpree:         p.LargestKillingSpree,
		FirstBloodKill:              p.FirstBloodKill,
		GoldEarned:                  p.GoldEarned,
		TotalMinionsKilled:          p.TotalMinionsKilled,
		NeutralMinionsKilled:        p.NeutralMinionsKilled,
		VisionScore:                 p.VisionScore,
		WardsPlaced:                 p.WardsPlaced,
		WardsKilled:                 p.WardsKilled,
		ControlWardsPlaced:          p.DetectorWardsPlaced,
		TotalDamageDealtToChampions: p.TotalDamageDealtToChampions,
		TotalDamageTaken:            p.TotalDamageTaken,
		DamageDealtToObjectives:     p.DamageDealtToObjectives,
		DamageDealtToBuildings:      p.DamageDealtToBuildings,
		TurretKills:                 p.TurretKills,
		InhibitorKills:              p.InhibitorKills,
		DragonKills:                 p.DragonKills,
		BaronKills:                  p.BaronKills,
		TimeCCingOthers:             p.TimeCCingOthers,
		TotalHeal:                   p.TotalHeal,
		LongestTimeSpentLiving:      p.LongestTimeSpentLiving,
		TotalTimeSpentDead:          p.TotalTimeSpentDead,
	}
}

// rankLookup memoises participant league entries for one match refresh.
// A participant the provider does not know is left unranked; any other
// failure is returned so the match is not stored with a wrong rank.
type rankLookup struct {
	m       *Manager
	entries map[string][]riot.LeagueEntry
}

func newRankLookup(m *Manager) *rankLookup {
	return &rankLookup{m: m, entries: make(map[string][]riot.LeagueEntry)}
}

func (l *rankLookup) get(ctx context.Context, puuid string, ladder player.QueueType) (int, [2]int, error) {
	if puuid == "" {
		return 0, [2]int{}, nil
	}
	entries, ok := l.entries[puuid]
	if !ok {
		var err error
		entries, err = l.m.deps.Provider.GetLeagueEntries(ctx, puuid)
		switch {
		case errors.Is(err, riot.ErrNotFound):
			log.Debug("Participant has no league entries", "puuid", puuid)
			entries = nil
		case err != nil:
			l.m.deps.Metrics.IncProviderErrors()
			return 0, [2]int{}, err
		}
		l.entries[puuid] = entries
	}

	entry, ok := findEntry(entries, ladder)
	if !ok {
		return 0, [2]int{}, nil
	}
	snap, err := l.m.snapshot(entry)
	if err != nil {
		log.Debug("Participant rank not encodable", "puuid", puuid, "error", err)
		return 0, [2]int{}, nil
	}
	return snap.Rank, snap.Winrate, nil
}
