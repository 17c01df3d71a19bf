package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// Scheduler triggers roster refreshes on a cron spec. Runs that find a refresh
// already in flight are skipped.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewScheduler(refresher Refresher, spec string) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:      cron.New(cron.WithLogger(cronLogger{})),
		refresher: refresher,
		ctx:       ctx,
		cancel:    cancel,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid sync schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info("Refresh scheduler started", "next", s.Next())
}

// Stop cancels a running refresh and waits for it to return.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	log.Info("Refresh scheduler stopped")
}

// RunNow starts one refresh in the background.
func (s *Scheduler) RunNow() {
	go s.run()
}

// Next is the time of the next scheduled run.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) run() {
	summary, err := s.refresher.RefreshAll(s.ctx)
	switch {
	case errors.Is(err, ErrRefreshInProgress):
		log.Info("Skipping scheduled refresh, one is already running")
	case err != nil:
		log.Error("Scheduled refresh failed", "error", err, "refreshed", summary.Refreshed)
	default:
		log.Info("Scheduled refresh finished", "refreshed", summary.Refreshed, "failed", summary.Failed)
	}
}

// cronLogger routes cron's own logging through the application logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error(msg, append(keysAndValues, "error", err)...)
}
