package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauv0809/summoner-tracker/internal/player"
	"github.com/mauv0809/summoner-tracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyDB = `{
  "_default": {
    "2": {
      "username": "ATM Kryder",
      "rank": {"RANKED_SOLO_5x5": {"rank": 3157, "winrate": [3, 4]}},
      "rank_history": {"RANKED_SOLO_5x5": {"01/01/2024": 3100, "02/01/2024": 3157}},
      "rank_info": {"nearest_date": "00/00/0000"}
    },
    "1": {
      "username": "TURBO Trusty",
      "rank": {"RANKED_SOLO_5x5": {"rank": 1445, "winrate": [12, 9]}},
      "rank_history": {"RANKED_SOLO_5x5": {"01/01/2024": 1400, "02/01/2024": 1445}},
      "rank_info": {"nearest_date": "00/00/0000"}
    },
    "10": {"rank": {}}
  }
}`

func TestImportFile(t *testing.T) {
	st := store.NewMock()

	res, err := importFile(strings.NewReader(legacyDB), st, false)
	require.NoError(t, err)
	assert.Equal(t, importResult{Imported: 2}, res)

	require.Len(t, st.UpsertCalls, 2)
	assert.Equal(t, "TURBO Trusty", st.UpsertCalls[0].Username, "documents are imported in id order")
	assert.Equal(t, "ATM Kryder", st.UpsertCalls[1].Username)

	rec := st.Document("TURBO Trusty")
	require.NotNil(t, rec)
	assert.Equal(t, player.CurrentSchemaVersion, rec.SchemaVersion)
	assert.Equal(t, "02/01/2024", rec.RankInfo[player.QueueRankedSolo].Date)
}

func TestImportFile_RepacksApexRanks(t *testing.T) {
	st := store.NewMock()

	_, err := importFile(strings.NewReader(legacyDB), st, false)
	require.NoError(t, err)

	rec := st.Document("ATM Kryder")
	require.NotNil(t, rec)
	assert.Equal(t, player.History{"01/01/2024": 2800, "02/01/2024": 2857}, rec.RankHistory[player.QueueRankedSolo])
	assert.Equal(t, 2857, rec.Rank[player.QueueRankedSolo].Rank)
}

func TestImportFile_DryRun(t *testing.T) {
	st := store.NewMock()
	require.NoError(t, st.Upsert(player.New("ATM Kryder", player.DefaultQueues)))
	st.Reset()

	res, err := importFile(strings.NewReader(legacyDB), st, true)
	require.NoError(t, err)
	assert.Equal(t, importResult{Imported: 2, Replaced: 1}, res)
	assert.Equal(t, 1, st.GetAllCalls)
	assert.Empty(t, st.UpsertCalls)
}

func TestImportFile_Errors(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		_, err := importFile(strings.NewReader("nope"), store.NewMock(), false)
		assert.Error(t, err)
	})

	t.Run("missing default table", func(t *testing.T) {
		_, err := importFile(strings.NewReader(`{"players": {}}`), store.NewMock(), false)
		assert.ErrorContains(t, err, "_default")
	})

	t.Run("listing stored players fails", func(t *testing.T) {
		st := store.NewMock()
		st.GetAllFunc = func() ([]*player.Record, error) { return nil, errors.New("locked") }

		_, err := importFile(strings.NewReader(legacyDB), st, true)
		assert.ErrorContains(t, err, "locked")
	})

	t.Run("store failure", func(t *testing.T) {
		st := store.NewMock()
		st.UpsertFunc = func(*player.Record) error { return errors.New("disk full") }

		res, err := importFile(strings.NewReader(legacyDB), st, false)
		assert.ErrorContains(t, err, "disk full")
		assert.Zero(t, res.Imported)
	})
}
