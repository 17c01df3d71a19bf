package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RefreshRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "summoner_refresh_runs_total",
			Help: "The total number of roster refreshes started.",
		}),
		RefreshRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "summoner_refresh_rejected_total",
			Help: "The total number of refresh requests rejected because one was in flight.",
		}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "summoner_refresh_duration_seconds",
			Help:    "The duration of a full roster refresh.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		}),
		HistoryWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "summoner_rank_history_writes_total",
			Help: "The total number of rank history entries written.",
		}, []string{"queue"}),
		MatchesIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "summoner_matches_ingested_total",
			Help: "The total number of matches added to a match history.",
		}),
		MatchesInvalid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "summoner_matches_invalid_total",
			Help: "The total number of matches marked invalid.",
		}),
		ProviderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "summoner_provider_errors_total",
			Help: "The total number of failed Riot API calls.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "summoner_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "summoner_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "summoner_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RefreshRuns,
		s.RefreshRejected,
		s.RefreshDuration,
		s.HistoryWrites,
		s.MatchesIngested,
		s.MatchesInvalid,
		s.ProviderErrors,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRefreshRuns() {
	s.RefreshRuns.Inc()
}

func (s *Service) IncRefreshRejected() {
	s.RefreshRejected.Inc()
}

func (s *Service) ObserveRefreshDuration(duration float64) {
	s.RefreshDuration.Observe(duration)
}

func (s *Service) IncHistoryWrites(queue string) {
	s.HistoryWrites.WithLabelValues(queue).Inc()
}

func (s *Service) IncMatchesIngested() {
	s.MatchesIngested.Inc()
}

func (s *Service) IncMatchesInvalid() {
	s.MatchesInvalid.Inc()
}

func (s *Service) IncProviderErrors() {
	s.ProviderErrors.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
