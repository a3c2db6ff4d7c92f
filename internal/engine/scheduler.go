package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/facturio/invoice-price-alerts/internal/metrics"
	"github.com/facturio/invoice-price-alerts/internal/store"
)

// Job names recorded in the job run ledger.
const (
	JobCatalogRefresh = "catalog_refresh"
	JobConfigReload   = "config_reload"
)

// Scheduler manages periodic catalog snapshot refresh and alert config
// reload tasks, recording each run in the job run ledger.
type Scheduler struct {
	cron     *cron.Cron
	analyzer *Analyzer
	store    store.Store
	log      *slog.Logger
}

// NewScheduler creates a Scheduler that runs analyzer maintenance tasks on a
// schedule. The catalog refresh job is only registered when the analyzer has
// a catalog configured.
func NewScheduler(
	a *Analyzer,
	s store.Store,
	catalogRefreshInterval time.Duration,
	configReloadInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:     c,
		analyzer: a,
		store:    s,
		log:      log,
	}

	if a.Snapshot() != nil {
		if _, err := c.AddFunc(
			"@every "+catalogRefreshInterval.String(),
			sched.runCatalogRefresh,
		); err != nil {
			return nil, err
		}
	}

	if _, err := c.AddFunc(
		"@every "+configReloadInterval.String(),
		sched.runConfigReload,
	); err != nil {
		return nil, err
	}

	return sched, nil
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

	s.runJob(ctx, JobCatalogRefresh, func() (int, error) {
		snap := s.analyzer.Snapshot()
		if err := snap.Refresh(ctx); err != nil {
			return 0, err
		}
		metrics.CatalogSnapshotSize.Set(float64(snap.Len()))
		return snap.Len(), nil
	})
}

func (s *Scheduler) runConfigReload() {
	ctx := context.Background()
	s.log.Debug("scheduled config reload starting")

	s.runJob(ctx, JobConfigReload, func() (int, error) {
		if err := s.analyzer.Reload(ctx); err != nil {
			return 0, err
		}
		return 1, nil
	})
}

// runJob wraps a task with ledger bookkeeping and metrics. Ledger failures
// are logged but do not prevent the task from running.
func (s *Scheduler) runJob(ctx context.Context, name string, task func() (int, error)) {
	start := time.Now()

	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Warn("recording job start failed", "job", name, "error", err)
	}

	rows, taskErr := task()

	status := "success"
	errText := ""
	if taskErr != nil {
		status = "error"
		errText = taskErr.Error()
		s.log.Error("scheduled job failed", "job", name, "error", taskErr)
	}

	metrics.JobRunsTotal.WithLabelValues(name, status).Inc()
	metrics.JobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if runID == "" {
		return
	}
	if err := s.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
		s.log.Warn("recording job completion failed", "job", name, "error", err)
	}
}
