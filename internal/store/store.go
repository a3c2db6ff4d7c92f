// Package store defines the datastore abstraction for invoice-price-alerts.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// VariationQuery defines optional filters for price variation queries.
type VariationQuery struct {
	Severity  *domain.Severity
	AlertType *domain.AlertType
	ProductID *string
	Processed *bool
	Limit     int // default 50
	Offset    int
}

// Store defines all data access operations for invoice-price-alerts.
type Store interface {
	// Products (local product store)
	UpsertProduct(ctx context.Context, p *domain.ProductRecord) error
	GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error)
	GetProductBySKU(ctx context.Context, sku string) (*domain.ProductRecord, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]domain.ProductRecord, error)
	UpdateProductPrice(ctx context.Context, id string, price float64, cost *float64) error

	// Price variations (alerts)
	CreateVariation(ctx context.Context, v *domain.PriceVariation) error
	GetVariation(ctx context.Context, id string) (*domain.PriceVariation, error)
	ListVariations(ctx context.Context, q *VariationQuery) ([]domain.PriceVariation, int, error)
	MarkVariationProcessed(ctx context.Context, id string, notes string) error
	CountVariationsBySeverity(ctx context.Context) (map[domain.Severity]int, error)

	// Price history (append-only ledger)
	InsertPriceHistory(ctx context.Context, h *domain.PriceHistory) error
	ListPriceHistory(ctx context.Context, productID string, limit int) ([]domain.PriceHistory, error)

	// Alert configuration (single row)
	GetAlertConfig(ctx context.Context) (*domain.AlertConfig, error)
	SaveAlertConfig(ctx context.Context, cfg *domain.AlertConfig) error

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
