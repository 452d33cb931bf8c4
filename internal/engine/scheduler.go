package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler refreshes the catalog snapshot on a fixed interval so long-running
// servers pick up newly scraped alternatives without a restart.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that refreshes the engine's catalog
// every refreshInterval.
func NewScheduler(
	eng *Engine,
	refreshInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+refreshInterval.String(),
		s.runCatalogRefresh,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runCatalogRefresh() {
	ctx := context.Background()
	s.log.Info("scheduled catalog refresh starting")
	if err := s.engine.RefreshCatalog(ctx); err != nil {
		s.log.Error("scheduled catalog refresh failed", "error", err)
	}
}
