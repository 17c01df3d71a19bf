package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer db.Close()

	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='player_documents'").Scan(&tableName)
	require.NoError(t, err, "Querying for player_documents table should not produce an error")
	assert.Equal(t, "player_documents", tableName)

	var version int64
	err = db.QueryRow("SELECT MAX(version_id) FROM goose_db_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestInitDB_IsRerunnable(t *testing.T) {
	path := t.TempDir() + "/players.db"

	db, err := InitDB(path, "", "")
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO player_documents (username, schema_version, document, updated_at) VALUES ('a', 1, '{}', 0)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDB(path, "", "")
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM player_documents").Scan(&count))
	assert.Equal(t, 1, count)
}
