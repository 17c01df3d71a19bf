package pubsub

import (
	"testing"

	"github.com/mauv0809/summoner-tracker/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestProcessMessage_RankChange(t *testing.T) {
	change := player.RankChange{
		Username: "Alice",
		Queue:    player.QueueRankedSolo,
		Date:     "05/01/2024",
		Rank:     1445,
		Previous: player.NearestRank{Date: "03/01/2024", Rank: 1400},
		Written:  true,
	}
	data, err := msgpack.Marshal(change)
	require.NoError(t, err)

	var got player.RankChange
	require.NoError(t, NewNop().ProcessMessage(data, &got))
	assert.Equal(t, change, got)
}

func TestProcessMessage_Invalid(t *testing.T) {
	var got MatchIngested
	assert.Error(t, NewNop().ProcessMessage([]byte{0xc1}, &got))
}

func TestMock_RecordsTopics(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.SendMessage(EventRankChanged, player.RankChange{Username: "Alice"}))
	require.NoError(t, m.SendMessage(EventMatchIngested, MatchIngested{Username: "Alice"}))

	assert.Equal(t, []EventType{EventRankChanged, EventMatchIngested}, m.Topics())
	m.Reset()
	assert.Empty(t, m.Topics())
}
