package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/summoner-tracker/internal/metrics"
	"github.com/mauv0809/summoner-tracker/internal/notifier"
	"github.com/mauv0809/summoner-tracker/internal/player"
	"github.com/mauv0809/summoner-tracker/internal/rank"
	"github.com/slack-go/slack"
)

const postTimeout = 10 * time.Second

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts rank changes to a Slack channel.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	codec     rank.Codec
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics, codec rank.Codec) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics, codec)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics, codec rank.Codec) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		codec:     codec,
	}
}

func (s *Notifier) sendMessage(message slack.Message) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), postTimeout)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendRankChanges posts one message for the whole batch. An empty batch sends nothing.
func (s *Notifier) SendRankChanges(changes []player.RankChange) error {
	if len(changes) == 0 {
		return nil
	}
	_, _, err := s.sendMessage(s.formatRankChanges(changes))
	return err
}

func (s *Notifier) formatRankChanges(changes []player.RankChange) slack.Message {
	blocks := make([]slack.Block, 0, len(changes)+1)

	headerText := slack.NewTextBlockObject("plain_text", "📊 Rank update 📊", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	for _, c := range changes {
		current := s.codec.FormatTier(c.Tier, c.Rank)
		var line string
		switch {
		case c.First():
			line = fmt.Sprintf("🆕 %s (%s): %s", c.Username, queueLabel(c.Queue), current)
		case c.Rank > c.Previous.Rank:
			line = fmt.Sprintf("⬆️ %s (%s): %s → %s", c.Username, queueLabel(c.Queue), s.codec.Format(c.Previous.Rank), current)
		default:
			line = fmt.Sprintf("⬇️ %s (%s): %s → %s", c.Username, queueLabel(c.Queue), s.codec.Format(c.Previous.Rank), current)
		}
		if !c.First() {
			line += fmt.Sprintf("\n> since %s (%+d)", c.Previous.Date, c.Rank-c.Previous.Rank)
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", line, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

func queueLabel(q player.QueueType) string {
	switch q {
	case player.QueueRankedSolo:
		return "Solo/Duo"
	case player.QueueRankedFlex:
		return "Flex"
	default:
		return string(q)
	}
}
