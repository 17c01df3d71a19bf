package store

import "github.com/mauv0809/summoner-tracker/internal/player"

// DocumentStore persists one JSON document per tracked player, keyed by username.
type DocumentStore interface {
	// Get returns ErrNotFound when the player has never been saved.
	Get(username string) (*player.Record, error)
	// Upsert inserts the record or overwrites the whole stored document.
	Upsert(record *player.Record) error
	GetAll() ([]*player.Record, error)
}
