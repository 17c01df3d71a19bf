package riot

import "context"

// Provider is the read-only view of the Riot API the tracker needs.
// Every field of every response may be missing.
type Provider interface {
	GetAccount(ctx context.Context, gameName, tagLine string) (Account, error)
	GetSummoner(ctx context.Context, puuid string) (Summoner, error)
	GetLeagueEntries(ctx context.Context, puuid string) ([]LeagueEntry, error)
	// GetMatchIDs lists the most recent match ids, newest first.
	GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error)
	GetMatch(ctx context.Context, matchID string) (Match, error)
	GetProfileIcon(ctx context.Context, iconID int) ([]byte, error)
	// GetRateLimitInfo reports the limits seen on the last authenticated response.
	GetRateLimitInfo() RateLimitInfo
}
