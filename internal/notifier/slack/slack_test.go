package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/summoner-tracker/internal/metrics"
	"github.com/mauv0809/summoner-tracker/internal/player"
	"github.com/mauv0809/summoner-tracker/internal/rank"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sectionText(t *testing.T, block slackapi.Block) string {
	t.Helper()
	section, ok := block.(*slackapi.SectionBlock)
	require.True(t, ok, "expected a section block")
	return section.Text.Text
}

func TestSendRankChanges_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", m, rank.NewCodec())

	err := n.SendRankChanges([]player.RankChange{{Username: "Alice", Queue: player.QueueRankedSolo, Rank: 1445, Written: true}})
	require.NoError(t, err)
	assert.True(t, postMessageCalled)
	assert.Equal(t, 1, m.SlackNotifSent())
	assert.Equal(t, 0, m.SlackNotifFailed())
}

func TestSendRankChanges_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", m, rank.NewCodec())

	err := n.SendRankChanges([]player.RankChange{{Username: "Alice", Queue: player.QueueRankedSolo, Rank: 1445}})
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, m.SlackNotifSent())
	assert.Equal(t, 1, m.SlackNotifFailed())
}

func TestSendRankChanges_EmptyBatch(t *testing.T) {
	// The api is nil; it must not be touched.
	n := NewNotifierWithAPI(nil, "C123", metrics.NewMock(), rank.NewCodec())
	assert.NoError(t, n.SendRankChanges(nil))
}

func TestFormatRankChanges(t *testing.T) {
	n := &Notifier{channelID: "C123", codec: rank.NewCodec()}
	msg := n.formatRankChanges([]player.RankChange{
		{Username: "Alice", Queue: player.QueueRankedSolo, Date: "05/01/2024", Rank: 1445},
		{
			Username: "Bob",
			Queue:    player.QueueRankedFlex,
			Date:     "05/01/2024",
			Rank:     1445,
			Previous: player.NearestRank{Date: "03/01/2024", Rank: 1400},
		},
		{
			Username: "Carol",
			Queue:    player.QueueRankedSolo,
			Date:     "05/01/2024",
			Rank:     1400,
			Previous: player.NearestRank{Date: "01/01/2024", Rank: 1445},
		},
		{
			Username: "Dave",
			Queue:    player.QueueRankedSolo,
			Date:     "05/01/2024",
			Rank:     3300,
			Tier:     "MASTER",
			Previous: player.NearestRank{Date: "04/01/2024", Rank: 3150},
		},
	})

	require.Len(t, msg.Blocks.BlockSet, 5)
	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Rank update")

	assert.Equal(t, "🆕 Alice (Solo/Duo): GOLD II 45 LP", sectionText(t, msg.Blocks.BlockSet[1]))
	assert.Equal(t, "⬆️ Bob (Flex): GOLD II 0 LP → GOLD II 45 LP\n> since 03/01/2024 (+45)", sectionText(t, msg.Blocks.BlockSet[2]))
	assert.Equal(t, "⬇️ Carol (Solo/Duo): GOLD II 45 LP → GOLD II 0 LP\n> since 01/01/2024 (-45)", sectionText(t, msg.Blocks.BlockSet[3]))
	assert.Equal(t, "⬆️ Dave (Solo/Duo): MASTER 350 LP → MASTER 500 LP\n> since 04/01/2024 (+150)", sectionText(t, msg.Blocks.BlockSet[4]))
}
