package tracker

import (
	"context"
	"encoding/json"
)

// Tracker is what the HTTP layer needs from the roster.
type Tracker interface {
	// RefreshAll returns ErrRefreshInProgress when another refresh holds the gate.
	RefreshAll(ctx context.Context) (Summary, error)
	GetAll() []json.RawMessage
	Get(username string) (json.RawMessage, error)
	DateRange() []string
	ProfileIcon(ctx context.Context, username string) ([]byte, error)
}

// Refresher runs a roster refresh. Satisfied by *Manager.
type Refresher interface {
	RefreshAll(ctx context.Context) (Summary, error)
}
