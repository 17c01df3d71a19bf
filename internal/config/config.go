package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// A missing required variable is fatal.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg, err := load(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return cfg
}

func load(lookup func(string) (string, bool)) (Config, error) {
	var missing []string
	// getEnv reads a required variable.
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		missing = append(missing, key)
		return ""
	}
	getEnvDefault := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	var parseErr error
	getInt := func(key string, fallback int) int {
		raw := getEnvDefault(key, strconv.Itoa(fallback))
		v, err := strconv.Atoi(raw)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("%s must be an integer, got %q", key, raw)
		}
		return v
	}
	getBool := func(key string, fallback bool) bool {
		raw := getEnvDefault(key, strconv.FormatBool(fallback))
		v, err := strconv.ParseBool(raw)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("%s must be a boolean, got %q", key, raw)
		}
		return v
	}
	getDuration := func(key string, fallback time.Duration) time.Duration {
		raw := getEnvDefault(key, fallback.String())
		v, err := time.ParseDuration(raw)
		if err != nil && parseErr == nil {
			parseErr = fmt.Errorf("%s must be a duration, got %q", key, raw)
		}
		return v
	}

	cfg := Config{
		DBName:   getEnvDefault("DB_NAME", "players.db"),
		Port:     getEnvDefault("PORT", "8080"),
		LogLevel: getEnvDefault("LOG_LEVEL", "info"),
		Riot: RiotConfig{
			APIKey:     getEnv("RIOT_API_KEY"),
			Platform:   getEnvDefault("RIOT_PLATFORM", "euw1"),
			Region:     getEnvDefault("RIOT_REGION", "europe"),
			DefaultTag: getEnvDefault("RIOT_DEFAULT_TAG", "EUW"),
		},
		Tracking: TrackingConfig{
			Players:               splitList(getEnv("TRACKED_PLAYERS")),
			Queues:                splitList(getEnvDefault("TRACKED_QUEUES", "RANKED_SOLO_5x5,RANKED_FLEX_SR")),
			MatchQueues:           splitList(getEnvDefault("MATCH_QUEUES", "ranked_solo_fives,ranked_flex_fives,normal_draft_fives")),
			MatchHistoryLimit:     getInt("MATCH_HISTORY_LIMIT", 20),
			FetchParticipantRanks: getBool("FETCH_PARTICIPANT_RANKS", true),
		},
		Sync: SyncConfig{
			Schedule:  getEnvDefault("SYNC_SCHEDULE", "@every 12h"),
			OnStartup: getBool("SYNC_ON_STARTUP", false),
			Timeout:   getDuration("SYNC_TIMEOUT", 30*time.Minute),
		},
		IconDir: getEnvDefault("ICON_CACHE_DIR", "./cache/icons"),
		Slack: SlackConfig{
			Token:     getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvDefault("SLACK_CHANNEL_ID", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnvDefault("GCP_PROJECT", ""),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if parseErr != nil {
		return Config{}, parseErr
	}
	if len(cfg.Tracking.Players) == 0 {
		return Config{}, fmt.Errorf("TRACKED_PLAYERS lists no players")
	}
	if cfg.Tracking.MatchHistoryLimit <= 0 {
		return Config{}, fmt.Errorf("MATCH_HISTORY_LIMIT must be positive")
	}
	return cfg, nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
