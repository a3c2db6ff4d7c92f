package main

import "errors"

// KnownMetrics is the set of metric names exported by invoice-price-alerts
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"facturio_http_request_duration_seconds": true,
	"facturio_http_requests_total":           true,

	// Health metrics.
	"facturio_healthz_up": true,
	"facturio_readyz_up":  true,

	// Analysis metrics.
	"facturio_documents_analyzed_total":    true,
	"facturio_items_analyzed_total":        true,
	"facturio_analysis_errors_total":       true,
	"facturio_analysis_duration_seconds":   true,
	"facturio_match_confidence":            true,
	"facturio_alerts_created_total":        true,
	"facturio_products_auto_updated_total": true,

	// Catalog API metrics.
	"facturio_catalog_api_calls_total":  true,
	"facturio_catalog_errors_total":     true,
	"facturio_catalog_daily_usage":      true,
	"facturio_catalog_quota_hits_total": true,
	"facturio_catalog_snapshot_size":    true,

	// Scheduled job metrics.
	"facturio_job_runs_total":       true,
	"facturio_job_duration_seconds": true,

	// Recording rules.
	"facturio:http_requests:rate5m":     true,
	"facturio:http_errors:rate5m":       true,
	"facturio:documents:rate5m":         true,
	"facturio:items:rate5m":             true,
	"facturio:analysis_errors:rate5m":   true,
	"facturio:catalog_api_calls:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
