// Package engine orchestrates document analysis: product matching, price
// variation classification, alert persistence, and the follow-up actions that
// depend on the active alert configuration.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/facturio/invoice-price-alerts/internal/catalog"
	"github.com/facturio/invoice-price-alerts/internal/notify"
	"github.com/facturio/invoice-price-alerts/internal/store"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

const defaultConcurrency = 4

// Analyzer runs price variation analysis over digitized documents.
type Analyzer struct {
	store       store.Store
	catalog     catalog.Catalog
	snapshot    *catalog.Snapshot
	log         *slog.Logger
	concurrency int
	nowFunc     func() time.Time
	notifier    notify.Notifier
	notifyMin   domain.Severity

	mu  sync.RWMutex
	cfg domain.AlertConfig
}

// Option configures the Analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		a.log = l
	}
}

// WithConcurrency sets how many line items are analyzed in parallel.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithSnapshotTTL sets the catalog snapshot cache TTL.
func WithSnapshotTTL(ttl time.Duration) Option {
	return func(a *Analyzer) {
		if a.catalog != nil {
			a.snapshot = catalog.NewSnapshot(a.catalog, catalog.WithSnapshotTTL(ttl))
		}
	}
}

// WithNotifier sets the alert notifier and the minimum severity that gets
// pushed through it.
func WithNotifier(n notify.Notifier, minSeverity domain.Severity) Option {
	return func(a *Analyzer) {
		a.notifier = n
		a.notifyMin = minSeverity
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(a *Analyzer) {
		a.nowFunc = f
	}
}

// NewAnalyzer creates an Analyzer. cat may be nil, in which case matching
// runs against the local product store only. The analyzer starts with the
// default alert thresholds; call Reload to pick up persisted configuration.
func NewAnalyzer(s store.Store, cat catalog.Catalog, opts ...Option) *Analyzer {
	a := &Analyzer{
		store:       s,
		catalog:     cat,
		log:         slog.Default(),
		concurrency: defaultConcurrency,
		nowFunc:     time.Now,
		notifyMin:   domain.SeverityHigh,
		cfg:         domain.DefaultAlertConfig(),
	}
	if cat != nil {
		a.snapshot = catalog.NewSnapshot(cat)
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.notifier == nil {
		a.notifier = notify.NewNoOpNotifier(a.log)
	}
	return a
}

// Config returns the active alert configuration.
func (a *Analyzer) Config() domain.AlertConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// SetConfig persists the given configuration and makes it active.
func (a *Analyzer) SetConfig(ctx context.Context, cfg domain.AlertConfig) error {
	if err := a.store.SaveAlertConfig(ctx, &cfg); err != nil {
		return err
	}

	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()

	a.log.Info("alert configuration updated",
		"max_increase_pct", cfg.MaxPriceIncreasePct,
		"critical_increase_pct", cfg.CriticalPriceIncreasePct,
		"auto_updates", cfg.EnableAutomaticUpdates,
	)
	return nil
}

// Reload reads the persisted alert configuration from the store and makes it
// active. When no configuration row exists yet, the defaults are kept and
// seeded into the store.
func (a *Analyzer) Reload(ctx context.Context) error {
	cfg, err := a.store.GetAlertConfig(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		seed := domain.DefaultAlertConfig()
		if saveErr := a.store.SaveAlertConfig(ctx, &seed); saveErr != nil {
			a.log.Warn("seeding default alert config failed", "error", saveErr)
		}

		a.mu.Lock()
		a.cfg = seed
		a.mu.Unlock()
		return nil
	}
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.cfg = *cfg
	a.mu.Unlock()

	a.log.Debug("alert configuration reloaded", "updated_at", cfg.UpdatedAt)
	return nil
}

// Snapshot returns the catalog snapshot cache, or nil when no catalog is
// configured.
func (a *Analyzer) Snapshot() *catalog.Snapshot {
	return a.snapshot
}
