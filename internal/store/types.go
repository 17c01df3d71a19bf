package store

import (
	"database/sql"
	"errors"
	"sync"
)

var ErrNotFound = errors.New("player document not found")

// store keeps player documents in the player_documents table.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
