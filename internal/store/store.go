package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/summoner-tracker/internal/player"
)

var _ DocumentStore = (*store)(nil)

// New creates a DocumentStore backed by db.
func New(db *sql.DB) DocumentStore {
	return &store{
		db: db,
	}
}

func (s *store) Get(username string) (*player.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var document string
	err := s.db.QueryRow("SELECT document FROM player_documents WHERE username = ?", username).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load document for %q: %w", username, err)
	}

	record, err := player.Decode([]byte(document))
	if err != nil {
		return nil, err
	}
	// The key column is authoritative if a document was edited by hand.
	record.Username = username
	return record, nil
}

// Upsert writes the full document. There is no partial update path.
func (s *store) Upsert(record *player.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	document, err := player.Encode(record)
	if err != nil {
		return fmt.Errorf("failed to encode document for %q: %w", record.Username, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO player_documents (username, schema_version, document, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			schema_version = excluded.schema_version,
			document = excluded.document,
			updated_at = excluded.updated_at;
	`, record.Username, record.SchemaVersion, string(document), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save document for %q: %w", record.Username, err)
	}
	log.Debug("Saved player document", "username", record.Username, "bytes", len(document))
	return nil
}

func (s *store) GetAll() ([]*player.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT username, document FROM player_documents ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*player.Record
	for rows.Next() {
		var username, document string
		if err := rows.Scan(&username, &document); err != nil {
			return nil, err
		}
		record, err := player.Decode([]byte(document))
		if err != nil {
			log.Error("Failed to decode player document", "username", username, "error", err)
			continue
		}
		record.Username = username
		records = append(records, record)
	}
	return records, rows.Err()
}
