package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/summoner-tracker/internal/player"
)

// Notifier defines a high-level interface for sending notifications about rank movements.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendRankChanges announces the history entries written by one refresh.
	SendRankChanges(changes []player.RankChange) error
}

type nop struct{}

// NewNop returns a Notifier that only logs.
func NewNop() Notifier {
	return nop{}
}

func (nop) SendRankChanges(changes []player.RankChange) error {
	log.Debug("Notifications disabled, dropping rank changes", "count", len(changes))
	return nil
}
