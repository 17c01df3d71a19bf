package player

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/summoner-tracker/internal/history"
)

// New returns a zero-value record with a slot for every queue.
func New(username string, queues []QueueType) *Record {
	r := &Record{
		SchemaVersion: CurrentSchemaVersion,
		Username:      username,
	}
	r.ensureMaps()
	r.EnsureQueues(queues)
	return r
}

func (r *Record) ensureMaps() {
	if r.Rank == nil {
		r.Rank = make(map[QueueType]Snapshot)
	}
	if r.RankHistory == nil {
		r.RankHistory = make(map[QueueType]History)
	}
	if r.RankInfo == nil {
		r.RankInfo = make(map[QueueType]NearestRank)
	}
	if r.MatchHistory.IDs == nil {
		r.MatchHistory.IDs = make(IDSet)
	}
	if r.MatchHistory.Matches == nil {
		r.MatchHistory.Matches = []MatchRecord{}
	}
	if r.InvalidMatchIDs == nil {
		r.InvalidMatchIDs = make(IDSet)
	}
}

// EnsureQueues adds empty rank, history and nearest slots for queues the
// record does not know yet. Existing data is left alone.
func (r *Record) EnsureQueues(queues []QueueType) {
	r.ensureMaps()
	for _, q := range queues {
		if _, ok := r.Rank[q]; !ok {
			r.Rank[q] = Snapshot{}
		}
		if _, ok := r.RankHistory[q]; !ok {
			r.RankHistory[q] = History{}
		}
		if _, ok := r.RankInfo[q]; !ok {
			r.RankInfo[q] = NearestRank{}
		}
	}
}

// NearestExcluding finds the history entry of queue closest to today,
// ignoring today's own entry.
func (r *Record) NearestExcluding(queue QueueType, today time.Time) (NearestRank, bool) {
	todayKey := history.FormatDate(today)
	hist := r.RankHistory[queue]

	dates := make([]time.Time, 0, len(hist))
	for key := range hist {
		if key == todayKey {
			continue
		}
		d, err := history.ParseDate(key)
		if err != nil {
			log.Warn("Skipping malformed history date", "username", r.Username, "queue", queue, "date", key)
			continue
		}
		dates = append(dates, d)
	}
	// Map order is random; sort so ties resolve the same way every run.
	slices.SortFunc(dates, time.Time.Compare)

	nearest, err := history.Nearest(dates, history.Day(today))
	if err != nil {
		return NearestRank{}, false
	}
	key := history.FormatDate(nearest)
	return NearestRank{Date: key, Rank: hist[key]}, true
}

// ReconcileRank stores snap as the current reading of queue and decides whether
// today gets a history entry. The comparison is against the nearest prior entry,
// not today's own. History is append-only: a reading equal to the prior entry
// changes nothing, even when today already has an entry. Unranked readings
// never touch history.
func (r *Record) ReconcileRank(queue QueueType, snap Snapshot, today time.Time) RankChange {
	r.EnsureQueues([]QueueType{queue})
	today = history.Day(today)
	todayKey := history.FormatDate(today)

	r.Rank[queue] = snap
	prior, hasPrior := r.NearestExcluding(queue, today)
	change := RankChange{
		Username: r.Username,
		Queue:    queue,
		Date:     todayKey,
		Rank:     snap.Rank,
		Tier:     snap.Tier,
		Previous: prior,
	}

	hist := r.RankHistory[queue]
	switch {
	case !snap.Ranked():
	case !hasPrior:
		if current, ok := hist[todayKey]; !ok || current != snap.Rank {
			hist[todayKey] = snap.Rank
			change.Written = true
		}
	case prior.Rank == snap.Rank:
		// Unchanged since the last recorded day.
	default:
		if current, ok := hist[todayKey]; !ok || current != snap.Rank {
			hist[todayKey] = snap.Rank
			change.Written = true
		}
	}

	r.RankInfo[queue] = prior
	return change
}

// Processed reports whether a match was already ingested or rejected.
func (r *Record) Processed(matchID string) bool {
	return r.MatchHistory.IDs.Has(matchID) || r.InvalidMatchIDs.Has(matchID)
}

// AppendMatch adds m unless its id was seen before.
func (r *Record) AppendMatch(m MatchRecord) bool {
	r.ensureMaps()
	if r.Processed(m.MatchID) {
		return false
	}
	r.MatchHistory.IDs[m.MatchID] = struct{}{}
	r.MatchHistory.Matches = append(r.MatchHistory.Matches, m)
	return true
}

// MarkInvalid excludes a match id from every future refresh.
func (r *Record) MarkInvalid(matchID string) {
	r.ensureMaps()
	r.InvalidMatchIDs[matchID] = struct{}{}
}

// HistoryDates lists every day with a history entry, across all queues.
func (r *Record) HistoryDates() []time.Time {
	var dates []time.Time
	for _, hist := range r.RankHistory {
		for key := range hist {
			d, err := history.ParseDate(key)
			if err != nil {
				continue
			}
			dates = append(dates, d)
		}
	}
	return dates
}

// Clone returns a deep copy, safe to hand to readers while the original mutates.
func (r *Record) Clone() *Record {
	data, err := json.Marshal(r)
	if err != nil {
		log.Error("Failed to clone player record", "username", r.Username, "error", err)
		return nil
	}
	var c Record
	if err := json.Unmarshal(data, &c); err != nil {
		log.Error("Failed to clone player record", "username", r.Username, "error", err)
		return nil
	}
	c.ensureMaps()
	return &c
}
