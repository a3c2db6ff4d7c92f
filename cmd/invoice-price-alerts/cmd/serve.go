package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/facturio/invoice-price-alerts/internal/api/handlers"
	"github.com/facturio/invoice-price-alerts/internal/api/middleware"
	"github.com/facturio/invoice-price-alerts/internal/catalog"
	"github.com/facturio/invoice-price-alerts/internal/config"
	"github.com/facturio/invoice-price-alerts/internal/engine"
	"github.com/facturio/invoice-price-alerts/internal/notify"
	"github.com/facturio/invoice-price-alerts/internal/store"
	"github.com/facturio/invoice-price-alerts/pkg/logger"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	var cat catalog.Catalog
	if cfg.Catalog.Enabled {
		rl := catalog.NewRateLimiter(
			cfg.Catalog.RateLimit.PerSecond,
			cfg.Catalog.RateLimit.Burst,
			cfg.Catalog.RateLimit.DailyLimit,
		)
		cat = catalog.NewHTTPCatalog(
			cfg.Catalog.BaseURL,
			cfg.Catalog.APIKey,
			catalog.WithRateLimiter(rl),
		)
		log.Info("catalog enabled", "base_url", cfg.Catalog.BaseURL)
	}

	var notifier notify.Notifier = notify.NewNoOpNotifier(log)
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewDiscordNotifier(cfg.Notify.WebhookURL)
		log.Info("alert notifications enabled", "min_severity", cfg.Notify.MinSeverity)
	}

	analyzer := engine.NewAnalyzer(st, cat,
		engine.WithLogger(log),
		engine.WithConcurrency(cfg.Matching.Concurrency),
		engine.WithSnapshotTTL(cfg.Catalog.SnapshotTTL),
		engine.WithNotifier(notifier, domain.Severity(cfg.Notify.MinSeverity)),
	)

	reloadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := analyzer.Reload(reloadCtx); err != nil {
		log.Warn("loading alert config, using defaults", "err", err)
	}
	cancel()

	scheduler, err := engine.NewScheduler(analyzer, st,
		cfg.Schedule.CatalogRefreshInterval,
		cfg.Schedule.ConfigReloadInterval,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	scheduler.Start()

	e := newEcho(log, st, analyzer)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newEcho(log *slog.Logger, st store.Store, analyzer *engine.Analyzer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	healthHandler := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/readyz", healthHandler.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	analyzeHandler := handlers.NewAnalyzeHandler(analyzer)
	e.POST("/api/v1/analyze", analyzeHandler.AnalyzeDocument)
	e.POST("/api/v1/analyze/item", analyzeHandler.AnalyzeItem)

	alertHandler := handlers.NewAlertHandler(st)
	e.GET("/api/v1/alerts", alertHandler.List)
	e.GET("/api/v1/alerts/summary", alertHandler.Summary)
	e.GET("/api/v1/alerts/:id", alertHandler.Get)
	e.POST("/api/v1/alerts/:id/process", alertHandler.Process)

	productHandler := handlers.NewProductHandler(st)
	e.GET("/api/v1/products", productHandler.Search)
	e.GET("/api/v1/products/:id", productHandler.Get)
	e.GET("/api/v1/products/:id/history", productHandler.History)

	configHandler := handlers.NewConfigHandler(analyzer)
	e.GET("/api/v1/config", configHandler.Get)
	e.PUT("/api/v1/config", configHandler.Update)
	e.POST("/api/v1/config/reload", configHandler.Reload)

	jobsHandler := handlers.NewJobsHandler(st)
	e.GET("/api/v1/jobs", jobsHandler.List)

	return e
}
