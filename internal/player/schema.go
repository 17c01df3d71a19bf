package player

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/summoner-tracker/internal/rank"
)

type recordAlias Record

// Decode reads a stored document of any known schema version and upgrades it
// to CurrentSchemaVersion. Missing fields come back as empty values.
func Decode(data []byte) (*Record, error) {
	var doc struct {
		recordAlias
		RankInfo json.RawMessage `json:"rank_info"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode player document: %w", err)
	}

	rec := Record(doc.recordAlias)
	r := &rec
	r.ensureMaps()

	switch {
	case r.SchemaVersion > CurrentSchemaVersion:
		return nil, fmt.Errorf("player document %q has unsupported schema version %d", r.Username, r.SchemaVersion)
	case r.SchemaVersion == CurrentSchemaVersion:
		if len(doc.RankInfo) > 0 && string(doc.RankInfo) != "null" {
			if err := json.Unmarshal(doc.RankInfo, &r.RankInfo); err != nil {
				return nil, fmt.Errorf("failed to decode rank_info of %q: %w", r.Username, err)
			}
		}
	default:
		upgradeV0(r, time.Now())
	}

	for q, hist := range r.RankHistory {
		if hist == nil {
			r.RankHistory[q] = History{}
		}
	}
	return r, nil
}

// upgradeV0 converts the legacy layout, which kept a single nearest_date for
// all queues and had no match history. Apex readings are repacked with
// rank.FromLegacy and the nearest pointers are rebuilt from the histories.
func upgradeV0(r *Record, now time.Time) {
	log.Info("Upgrading player document", "username", r.Username, "from", r.SchemaVersion, "to", CurrentSchemaVersion)
	for _, hist := range r.RankHistory {
		for date, value := range hist {
			hist[date] = rank.FromLegacy(value)
		}
	}
	for q, snap := range r.Rank {
		snap.Rank = rank.FromLegacy(snap.Rank)
		r.Rank[q] = snap
	}
	r.RankInfo = make(map[QueueType]NearestRank)
	for q := range r.RankHistory {
		nearest, _ := r.NearestExcluding(q, now)
		r.RankInfo[q] = nearest
	}
	for q := range r.Rank {
		if _, ok := r.RankInfo[q]; !ok {
			r.RankInfo[q] = NearestRank{}
		}
	}
	r.SchemaVersion = CurrentSchemaVersion
}

// Encode serialises the record in the current schema.
func Encode(r *Record) ([]byte, error) {
	r.SchemaVersion = CurrentSchemaVersion
	r.ensureMaps()
	return json.Marshal(r)
}
