package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/summoner-tracker/internal/tracker"
)

func GetAllPlayersHandler(t tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, t.GetAll())
	}
}

func GetPlayerHandler(t tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("player")
		if username == "" {
			http.Error(w, "Missing 'player' parameter", http.StatusBadRequest)
			return
		}
		doc, err := t.Get(username)
		if err != nil {
			if errors.Is(err, tracker.ErrUnknownPlayer) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to get player", "username", username, "error", err)
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			return
		}
		writeJSON(w, r, doc)
	}
}

// RefreshHandler runs a full refresh before answering. A refresh already in
// flight is reported as 404 so callers retry later. The refresh outlives a
// client that hangs up, bounded by timeout.
func RefreshHandler(t tracker.Tracker, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithoutCancel(r.Context())
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		summary, err := t.RefreshAll(ctx)
		if errors.Is(err, tracker.ErrRefreshInProgress) {
			log.Info("Refresh rejected, one is already running", "request_id", RequestIDFromContext(r))
			http.Error(w, "Refresh already in progress", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Warn("Refresh ended early", "error", err, "refreshed", summary.Refreshed, "request_id", RequestIDFromContext(r))
		}
		writeJSON(w, r, struct{}{})
	}
}

func ProfileIconHandler(t tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("player")
		if username == "" {
			http.Error(w, "Missing 'player' parameter", http.StatusBadRequest)
			return
		}
		icon, err := t.ProfileIcon(r.Context(), username)
		if err != nil {
			if errors.Is(err, tracker.ErrUnknownPlayer) {
				http.Error(w, "Player not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to get profile icon", "username", username, "error", err)
			http.Error(w, "Failed to get profile icon", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if _, err := w.Write(icon); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	}
}

func DateRangeHandler(t tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, t.DateRange())
	}
}
