package http

import (
	"net/http"

	"github.com/mauv0809/summoner-tracker/internal/config"
	"github.com/mauv0809/summoner-tracker/internal/http/handlers"
	"github.com/mauv0809/summoner-tracker/internal/tracker"
	"github.com/rs/cors"
)

func NewServer(t tracker.Tracker, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Tracker:        t,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	server.handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(server.Router)
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), requestIDMiddleware, paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(handlers.HealthCheckHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("/player/get_all", Chain(handlers.GetAllPlayersHandler(s.Tracker), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("/player/get", Chain(handlers.GetPlayerHandler(s.Tracker), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("/player/add_rank_to_history", Chain(handlers.RefreshHandler(s.Tracker, s.Cfg.Sync.Timeout), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("/player/profile_icon", Chain(handlers.ProfileIconHandler(s.Tracker), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("/player/get_date_range", Chain(handlers.DateRangeHandler(s.Tracker), requestIDMiddleware, paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
