package player

// QueueType names a ranked ladder as the provider reports it.
type QueueType string

const (
	QueueRankedSolo QueueType = "RANKED_SOLO_5x5"
	QueueRankedFlex QueueType = "RANKED_FLEX_SR"
)

// DefaultQueues is the roster of ladders tracked when nothing is configured.
var DefaultQueues = []QueueType{QueueRankedSolo, QueueRankedFlex}

// CurrentSchemaVersion is written to every persisted document.
const CurrentSchemaVersion = 1

// Record is everything tracked for one player. It is persisted whole.
type Record struct {
	SchemaVersion   int                       `json:"schema_version"`
	Username        string                    `json:"username"`
	Puuid           string                    `json:"puuid,omitempty"`
	ProfileIconID   int                       `json:"profile_icon_id"`
	SummonerLevel   int                       `json:"summoner_level"`
	Rank            map[QueueType]Snapshot    `json:"rank"`
	RankHistory     map[QueueType]History     `json:"rank_history"`
	RankInfo        map[QueueType]NearestRank `json:"rank_info"`
	MatchHistory    MatchHistory              `json:"match_history"`
	InvalidMatchIDs IDSet                     `json:"invalid_match_ids"`
	LastRefreshedAt int64                     `json:"last_refreshed_at"`
}

// Snapshot is a single rank reading. The zero value means unranked.
type Snapshot struct {
	Rank         int    `json:"rank"`
	Winrate      [2]int `json:"winrate"`
	Tier         string `json:"tier,omitempty"`
	Division     string `json:"division,omitempty"`
	LeaguePoints int    `json:"league_points"`
	HotStreak    bool   `json:"hot_streak"`
}

// Ranked reports whether the snapshot came from an actual league entry.
func (s Snapshot) Ranked() bool {
	return s.Tier != ""
}

// History maps a dd/mm/yyyy day to the rank recorded on it.
type History map[string]int

// NearestRank points at the history entry closest to today, today excluded.
// An empty Date means there is no prior entry.
type NearestRank struct {
	Date string `json:"nearest_date"`
	Rank int    `json:"nearest_rank"`
}

// RankChange describes the outcome of reconciling one snapshot.
type RankChange struct {
	Username string      `json:"username" msgpack:"username"`
	Queue    QueueType   `json:"queue" msgpack:"queue"`
	Date     string      `json:"date" msgpack:"date"`
	Rank     int         `json:"rank" msgpack:"rank"`
	Tier     string      `json:"tier,omitempty" msgpack:"tier"`
	Previous NearestRank `json:"previous" msgpack:"previous"`
	Written  bool        `json:"written" msgpack:"written"`
}

// First reports whether the change started the queue's history.
func (c RankChange) First() bool {
	return c.Previous.Date == ""
}

// MatchHistory keeps ingested matches in processing order plus the set of their ids.
type MatchHistory struct {
	IDs     IDSet         `json:"ids"`
	Matches []MatchRecord `json:"matches"`
}

// MatchRecord is one finished game as seen by the tracked player. Never updated once stored.
type MatchRecord struct {
	MatchID     string           `json:"match_id" msgpack:"match_id"`
	Queue       string           `json:"queue" msgpack:"queue"`
	QueueID     int              `json:"queue_id" msgpack:"queue_id"`
	Duration    int              `json:"duration" msgpack:"duration"`
	CreatedAt   int64            `json:"created_at" msgpack:"created_at"`
	GameVersion string           `json:"game_version,omitempty" msgpack:"game_version"`
	Stats       ParticipantStats `json:"stats" msgpack:"stats"`
	Teams       Teams            `json:"teams" msgpack:"teams"`
}

// Teams splits participants by map side.
type Teams struct {
	Blue []ParticipantSummary `json:"blue" msgpack:"blue"`
	Red  []ParticipantSummary `json:"red" msgpack:"red"`
}

type ParticipantSummary struct {
	Name     string `json:"name" msgpack:"name"`
	Puuid    string `json:"puuid" msgpack:"puuid"`
	Champion string `json:"champion" msgpack:"champion"`
	Rank     int    `json:"rank" msgpack:"rank"`
	Winrate  [2]int `json:"winrate" msgpack:"winrate"`
	Win      bool   `json:"win" msgpack:"win"`
}

// ParticipantStats is the tracked player's end-of-game scoreboard.
type ParticipantStats struct {
	Champion                    string `json:"champion" msgpack:"champion"`
	Position                    string `json:"position" msgpack:"position"`
	Win                         bool   `json:"win" msgpack:"win"`
	Kills                       int    `json:"kills" msgpack:"kills"`
	Deaths                      int    `json:"deaths" msgpack:"deaths"`
	Assists                     int    `json:"assists" msgpack:"assists"`
	DoubleKills                 int    `json:"double_kills" msgpack:"double_kills"`
	TripleKills                 int    `json:"triple_kills" msgpack:"triple_kills"`
	QuadraKills                 int    `json:"quadra_kills" msgpack:"quadra_kills"`
	PentaKills                  int    `json:"penta_kills" msgpack:"penta_kills"`
	LargestKillingSpree         int    `json:"largest_killing_spree" msgpack:"largest_killing_spree"`
	FirstBloodKill              bool   `json:"first_blood_kill" msgpack:"first_blood_kill"`
	GoldEarned                  int    `json:"gold_earned" msgpack:"gold_earned"`
	TotalMinionsKilled          int    `json:"total_minions_killed" msgpack:"total_minions_killed"`
	NeutralMinionsKilled        int    `json:"neutral_minions_killed" msgpack:"neutral_minions_killed"`
	VisionScore                 int    `json:"vision_score" msgpack:"vision_score"`
	WardsPlaced                 int    `json:"wards_placed" msgpack:"wards_placed"`
	WardsKilled                 int    `json:"wards_killed" msgpack:"wards_killed"`
	ControlWardsPlaced          int    `json:"control_wards_placed" msgpack:"control_wards_placed"`
	TotalDamageDealtToChampions int    `json:"total_damage_dealt_to_champions" msgpack:"total_damage_dealt_to_champions"`
	TotalDamageTaken            int    `json:"total_damage_taken" msgpack:"total_damage_taken"`
	DamageDealtToObjectives     int    `json:"damage_dealt_to_objectives" msgpack:"damage_dealt_to_objectives"`
	DamageDealtToBuildings      int    `json:"damage_dealt_to_buildings" msgpack:"damage_dealt_to_buildings"`
	TurretKills                 int    `json:"turret_kills" msgpack:"turret_kills"`
	InhibitorKills              int    `json:"inhibitor_kills" msgpack:"inhibitor_kills"`
	DragonKills                 int    `json:"dragon_kills" msgpack:"dragon_kills"`
	BaronKills                  int    `json:"baron_kills" msgpack:"baron_kills"`
	TimeCCingOthers             int    `json:"time_ccing_others" msgpack:"time_ccing_others"`
	TotalHeal                   int    `json:"total_heal" msgpack:"total_heal"`
	LongestTimeSpentLiving      int    `json:"longest_time_spent_living" msgpack:"longest_time_spent_living"`
	TotalTimeSpentDead          int    `json:"total_time_spent_dead" msgpack:"total_time_spent_dead"`
}
