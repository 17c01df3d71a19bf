package handlers

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
)

// HealthCheckHandler answers liveness probes. It does not touch the tracker or the store.
func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Health check", "request_id", RequestIDFromContext(r))
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK!")
	}
}
