package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(lookupFrom(map[string]string{
		"RIOT_API_KEY":    "RGAPI-test",
		"TRACKED_PLAYERS": "Alice#EUW, Bob ,,",
	}))
	require.NoError(t, err)

	assert.Equal(t, "RGAPI-test", cfg.Riot.APIKey)
	assert.Equal(t, []string{"Alice#EUW", "Bob"}, cfg.Tracking.Players)
	assert.Equal(t, []string{"RANKED_SOLO_5x5", "RANKED_FLEX_SR"}, cfg.Tracking.Queues)
	assert.Equal(t, []string{"ranked_solo_fives", "ranked_flex_fives", "normal_draft_fives"}, cfg.Tracking.MatchQueues)
	assert.Equal(t, 20, cfg.Tracking.MatchHistoryLimit)
	assert.True(t, cfg.Tracking.FetchParticipantRanks)
	assert.Equal(t, "@every 12h", cfg.Sync.Schedule)
	assert.False(t, cfg.Sync.OnStartup)
	assert.Equal(t, 30*time.Minute, cfg.Sync.Timeout)
	assert.Equal(t, "euw1", cfg.Riot.Platform)
	assert.Equal(t, "europe", cfg.Riot.Region)
	assert.Equal(t, "players.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Slack.Enabled())
	assert.Empty(t, cfg.ProjectID)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(lookupFrom(map[string]string{
		"RIOT_API_KEY":            "RGAPI-test",
		"TRACKED_PLAYERS":         "Alice",
		"TRACKED_QUEUES":          "RANKED_SOLO_5x5",
		"MATCH_HISTORY_LIMIT":     "5",
		"FETCH_PARTICIPANT_RANKS": "false",
		"SYNC_ON_STARTUP":         "true",
		"SLACK_BOT_TOKEN":         "xoxb",
		"SLACK_CHANNEL_ID":        "C123",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"RANKED_SOLO_5x5"}, cfg.Tracking.Queues)
	assert.Equal(t, 5, cfg.Tracking.MatchHistoryLimit)
	assert.False(t, cfg.Tracking.FetchParticipantRanks)
	assert.True(t, cfg.Sync.OnStartup)
	assert.True(t, cfg.Slack.Enabled())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing required", map[string]string{}, "RIOT_API_KEY, TRACKED_PLAYERS"},
		{"bad int", map[string]string{"RIOT_API_KEY": "k", "TRACKED_PLAYERS": "A", "MATCH_HISTORY_LIMIT": "many"}, "MATCH_HISTORY_LIMIT"},
		{"bad bool", map[string]string{"RIOT_API_KEY": "k", "TRACKED_PLAYERS": "A", "SYNC_ON_STARTUP": "sometimes"}, "SYNC_ON_STARTUP"},
		{"empty roster", map[string]string{"RIOT_API_KEY": "k", "TRACKED_PLAYERS": " , "}, "no players"},
		{"zero limit", map[string]string{"RIOT_API_KEY": "k", "TRACKED_PLAYERS": "A", "MATCH_HISTORY_LIMIT": "0"}, "positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(lookupFrom(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
