package http

import (
	"net/http"

	"github.com/mauv0809/summoner-tracker/internal/config"
	"github.com/mauv0809/summoner-tracker/internal/tracker"
)

type Server struct {
	Tracker        tracker.Tracker
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
	handler        http.Handler
}
