package riot

import (
	"errors"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrUnknownQueue = errors.New("unknown queue")
)

// Options configures where the client sends requests.
type Options struct {
	APIKey string
	// Platform routing value, e.g. "euw1".
	Platform string
	// Regional routing value, e.g. "europe".
	Region string

	// Base URLs, derived from Platform and Region when empty.
	PlatformURL string
	RegionalURL string
	DDragonURL  string
}

// Client talks to the Riot API over fasthttp.
type Client struct {
	apiKey      string
	platformURL string
	regionalURL string
	ddragonURL  string
	client      *fasthttp.Client

	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo

	versionMu sync.Mutex
	version   string
}

// RateLimitInfo mirrors the rate limit headers. RetryAfter is in seconds and
// only set while the last response was a 429.
type RateLimitInfo struct {
	AppLimit    string    `json:"app_limit"`
	AppCount    string    `json:"app_count"`
	MethodCount string    `json:"method_count"`
	RetryAfter  int       `json:"retry_after"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type Summoner struct {
	Puuid         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
	RevisionDate  int64  `json:"revisionDate"`
}

type LeagueEntry struct {
	LeagueID     string `json:"leagueId"`
	Puuid        string `json:"puuid"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation int64         `json:"gameCreation"`
	GameDuration int           `json:"gameDuration"`
	GameVersion  string        `json:"gameVersion"`
	QueueID      *int          `json:"queueId"`
	Participants []Participant `json:"participants"`
}

// Team ids as reported in match participants.
const (
	TeamBlue = 100
	TeamRed  = 200
)

type Participant struct {
	Puuid          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	SummonerName   string `json:"summonerName"`
	ChampionName   string `json:"championName"`
	TeamID         int    `json:"teamId"`
	TeamPosition   string `json:"teamPosition"`
	Win            bool   `json:"win"`

	Kills                       int  `json:"kills"`
	Deaths                      int  `json:"deaths"`
	Assists                     int  `json:"assists"`
	DoubleKills                 int  `json:"doubleKills"`
	TripleKills                 int  `json:"tripleKills"`
	QuadraKills                 int  `json:"quadraKills"`
	PentaKills                  int  `json:"pentaKills"`
	LargestKillingSpree         int  `json:"largestKillingSpree"`
	FirstBloodKill              bool `json:"firstBloodKill"`
	GoldEarned                  int  `json:"goldEarned"`
	TotalMinionsKilled          int  `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int  `json:"neutralMinionsKilled"`
	VisionScore                 int  `json:"visionScore"`
	WardsPlaced                 int  `json:"wardsPlaced"`
	WardsKilled                 int  `json:"wardsKilled"`
	DetectorWardsPlaced         int  `json:"detectorWardsPlaced"`
	TotalDamageDealtToChampions int  `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int  `json:"totalDamageTaken"`
	DamageDealtToObjectives     int  `json:"damageDealtToObjectives"`
	DamageDealtToBuildings      int  `json:"damageDealtToBuildings"`
	TurretKills                 int  `json:"turretKills"`
	InhibitorKills              int  `json:"inhibitorKills"`
	DragonKills                 int  `json:"dragonKills"`
	BaronKills                  int  `json:"baronKills"`
	TimeCCingOthers             int  `json:"timeCCingOthers"`
	TotalHeal                   int  `json:"totalHeal"`
	LongestTimeSpentLiving      int  `json:"longestTimeSpentLiving"`
	TotalTimeSpentDead          int  `json:"totalTimeSpentDead"`
}

// DisplayName prefers the Riot ID over the legacy summoner name.
func (p Participant) DisplayName() string {
	if p.RiotIDGameName != "" {
		if p.RiotIDTagline != "" {
			return p.RiotIDGameName + "#" + p.RiotIDTagline
		}
		return p.RiotIDGameName
	}
	return p.SummonerName
}
