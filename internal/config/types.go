package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName   string
	Port     string
	LogLevel string
	Riot     RiotConfig
	Tracking TrackingConfig
	Sync     SyncConfig
	IconDir  string
	Slack    SlackConfig
	Turso    TursoConfig
	// ProjectID enables Pub/Sub publishing when set.
	ProjectID string
}

type RiotConfig struct {
	APIKey     string
	Platform   string
	Region     string
	DefaultTag string
}

type TrackingConfig struct {
	Players               []string
	Queues                []string
	MatchQueues           []string
	MatchHistoryLimit     int
	FetchParticipantRanks bool
}

type SyncConfig struct {
	Schedule  string
	OnStartup bool
	// Timeout bounds a manual refresh triggered over HTTP.
	Timeout time.Duration
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether both Slack settings are present.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
