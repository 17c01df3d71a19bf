package player

import (
	"testing"
	"time"

	"github.com/mauv0809/summoner-tracker/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := history.ParseDate(s)
	require.NoError(t, err)
	return d
}

func ranked(value int) Snapshot {
	return Snapshot{Rank: value, Winrate: [2]int{10, 8}, Tier: "GOLD", Division: "II", LeaguePoints: value % 100}
}

func TestNew(t *testing.T) {
	r := New("Alice", DefaultQueues)

	assert.Equal(t, "Alice", r.Username)
	assert.Equal(t, CurrentSchemaVersion, r.SchemaVersion)
	for _, q := range DefaultQueues {
		assert.Equal(t, Snapshot{}, r.Rank[q])
		assert.Empty(t, r.RankHistory[q])
		assert.Equal(t, NearestRank{}, r.RankInfo[q])
	}
	assert.Empty(t, r.MatchHistory.Matches)
	assert.Empty(t, r.InvalidMatchIDs)
}

func TestReconcileRank(t *testing.T) {
	t.Run("first entry is written unconditionally", func(t *testing.T) {
		r := New("Alice", DefaultQueues)
		change := r.ReconcileRank(QueueRankedSolo, ranked(1445), day(t, "02/01/2024"))

		assert.True(t, change.Written)
		assert.True(t, change.First())
		assert.Equal(t, History{"02/01/2024": 1445}, r.RankHistory[QueueRankedSolo])
		assert.Equal(t, 1445, r.Rank[QueueRankedSolo].Rank)
		assert.Equal(t, NearestRank{}, r.RankInfo[QueueRankedSolo])
	})

	t.Run("unchanged rank writes nothing", func(t *testing.T) {
		r := New("Alice", DefaultQueues)
		r.RankHistory[QueueRankedSolo] = History{"01/01/2024": 1400}

		change := r.ReconcileRank(QueueRankedSolo, ranked(1400), day(t, "02/01/2024"))

		assert.False(t, change.Written)
		assert.Equal(t, History{"01/01/2024": 1400}, r.RankHistory[QueueRankedSolo])
		assert.Equal(t, NearestRank{Date: "01/01/2024", Rank: 1400}, r.RankInfo[QueueRankedSolo])
	})

	t.Run("changed rank is written under today", func(t *testing.T) {
		r := New("Alice", DefaultQueues)
		r.RankHistory[QueueRankedSolo] = History{"01/01/2024": 1400}

		change := r.ReconcileRank(QueueRankedSolo, ranked(1460), day(t, "03/01/2024"))

		assert.True(t, change.Written)
		assert.Equal(t, NearestRank{Date: "01/01/2024", Rank: 1400}, change.Previous)
		assert.Equal(t, History{"01/01/2024": 1400, "03/01/2024": 1460}, r.RankHistory[QueueRankedSolo])
		assert.Equal(t, NearestRank{Date: "01/01/2024", Rank: 1400}, r.RankInfo[QueueRankedSolo])
	})

	t.Run("second refresh on the same day is idempotent", func(t *testing.T) {
		r := New("Alice", DefaultQueues)
		r.RankHistory[QueueRankedSolo] = History{"01/01/2024": 1400}
		today := day(t, "02/01/2024").Add(9 * time.Hour)

		first := r.ReconcileRank(QueueRankedSolo, ranked(1420), today)
		second := r.ReconcileRank(QueueRankedSolo, ranked(1420), today.Add(3*time.Hour))

		assert.True(t, first.Written)
		assert.False(t, second.Written)
		assert.Len(t, r.RankHistory[QueueRankedSolo], 2)
	})

	t.Run("same day return to the prior rank keeps today's entry", func(t *testing.T) {
		r := New("Alice", DefaultQueues)
		r.RankHistory[QueueRankedSolo] = History{"01/01/2024": 1400}
		morning := day(t, "02/01/2024").Add(9 * time.Hour)

		first := r.ReconcileRank(QueueRankedSolo, ranked(1500), morning)
		evening := r.ReconcileRank(QueueRankedSolo, ranked(1400), morning.Add(8*time.Hour))

		assert.True(t, first.Written)
		assert.False(t, evening.Written)
		assert.Equal(t, History{"01/01/2024": 1400, "02/01/2024": 1500}, r.RankHistory[QueueRankedSolo])
		assert.Equal(t, 1400, r.Rank[QueueRankedSolo].Rank, "current reading is still refreshed")
		assert.Equal(t, NearestRank{Date: "01/01/2024", Rank: 1400}, r.RankInfo[QueueRankedSolo])
	})

	t.Run("unranked snapshot never writes history", func(t *testing.T) {
		r := New("Alice", DefaultQueues)
		change := r.ReconcileRank(QueueRankedFlex, Snapshot{}, day(t, "02/01/2024"))

		assert.False(t, change.Written)
		assert.Empty(t, r.RankHistory[QueueRankedFlex])
		assert.Equal(t, Snapshot{}, r.Rank[QueueRankedFlex])
	})

	t.Run("unknown queue gets a slot", func(t *testing.T) {
		r := New("Alice", []QueueType{QueueRankedSolo})
		r.ReconcileRank(QueueType("RANKED_TFT"), ranked(800), day(t, "02/01/2024"))

		assert.Equal(t, History{"02/01/2024": 800}, r.RankHistory["RANKED_TFT"])
	})
}

func TestNearestExcluding(t *testing.T) {
	r := New("Alice", DefaultQueues)
	r.RankHistory[QueueRankedSolo] = History{
		"01/01/2024": 1400,
		"05/01/2024": 1500,
		"06/01/2024": 1550,
	}

	nearest, ok := r.NearestExcluding(QueueRankedSolo, day(t, "06/01/2024"))
	require.True(t, ok)
	assert.Equal(t, NearestRank{Date: "05/01/2024", Rank: 1500}, nearest)

	_, ok = r.NearestExcluding(QueueRankedFlex, day(t, "06/01/2024"))
	assert.False(t, ok)
}

func TestMatches(t *testing.T) {
	r := New("Alice", DefaultQueues)

	assert.True(t, r.AppendMatch(MatchRecord{MatchID: "EUW1_1"}))
	assert.False(t, r.AppendMatch(MatchRecord{MatchID: "EUW1_1"}), "duplicates are ignored")

	r.MarkInvalid("EUW1_2")
	assert.True(t, r.Processed("EUW1_1"))
	assert.True(t, r.Processed("EUW1_2"))
	assert.False(t, r.Processed("EUW1_3"))
	assert.False(t, r.AppendMatch(MatchRecord{MatchID: "EUW1_2"}), "invalid ids are never appended")

	assert.Len(t, r.MatchHistory.Matches, 1)
}

func TestHistoryDatesAndClone(t *testing.T) {
	r := New("Alice", DefaultQueues)
	r.RankHistory[QueueRankedSolo] = History{"01/01/2024": 1400}
	r.RankHistory[QueueRankedFlex] = History{"03/01/2024": 900, "bad-date": 1}
	r.AppendMatch(MatchRecord{MatchID: "EUW1_1"})

	assert.Len(t, r.HistoryDates(), 2)

	c := r.Clone()
	require.NotNil(t, c)
	c.RankHistory[QueueRankedSolo]["02/01/2024"] = 1500
	c.MarkInvalid("EUW1_9")
	assert.Len(t, r.RankHistory[QueueRankedSolo], 1)
	assert.False(t, r.InvalidMatchIDs.Has("EUW1_9"))
	assert.True(t, c.MatchHistory.IDs.Has("EUW1_1"))
}
