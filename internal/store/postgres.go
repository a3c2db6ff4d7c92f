package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Methods require live Postgres and are covered by integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertProduct inserts or updates a product keyed by SKU. Products without
// a SKU are always inserted as new rows.
func (s *PostgresStore) UpsertProduct(ctx context.Context, p *domain.ProductRecord) error {
	args := pgx.NamedArgs{
		"name":  p.Name,
		"sku":   p.SKU,
		"price": p.Price,
		"cost":  p.Cost,
	}

	return s.pool.QueryRow(ctx, queryUpsertProduct, args).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
	)
}

// GetProduct retrieves a product by its internal UUID.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error) {
	p := &domain.ProductRecord{Source: domain.SourceLocal}
	if err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProductBySKU retrieves a product by SKU, case-insensitively.
func (s *PostgresStore) GetProductBySKU(ctx context.Context, sku string) (*domain.ProductRecord, error) {
	p := &domain.ProductRecord{Source: domain.SourceLocal}
	if err := scanProduct(s.pool.QueryRow(ctx, queryGetProductBySKU, sku), p); err != nil {
		return nil, err
	}
	return p, nil
}

// SearchProducts returns products whose name or SKU contains the query
// string. This is an ILIKE prefilter; fuzzy scoring happens in the matcher.
func (s *PostgresStore) SearchProducts(
	ctx context.Context,
	query string,
	limit int,
) ([]domain.ProductRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, querySearchProducts, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.ProductRecord
	for rows.Next() {
		p := domain.ProductRecord{Source: domain.SourceLocal}
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// UpdateProductPrice sets the current price (and optionally cost) of a product.
func (s *PostgresStore) UpdateProductPrice(
	ctx context.Context,
	id string,
	price float64,
	cost *float64,
) error {
	_, err := s.pool.Exec(ctx, queryUpdateProductPrice, id, price, cost)
	if err != nil {
		return fmt.Errorf("updating product price: %w", err)
	}
	return nil
}

// CreateVariation inserts a new price variation alert.
func (s *PostgresStore) CreateVariation(ctx context.Context, v *domain.PriceVariation) error {
	args := pgx.NamedArgs{
		"product_id":       v.ProductID,
		"product_name":     v.ProductName,
		"product_sku":      v.ProductSKU,
		"old_price":        v.OldPrice,
		"new_price":        v.NewPrice,
		"variation_pct":    v.VariationPercentage,
		"variation_amount": v.VariationAmount,
		"document_number":  v.DocumentNumber,
		"document_date":    v.DocumentDate,
		"supplier_name":    v.SupplierName,
		"alert_type":       string(v.AlertType),
		"severity":         string(v.Severity),
		"notes":            v.Notes,
	}

	return s.pool.QueryRow(ctx, queryCreateVariation, args).Scan(&v.ID, &v.CreatedAt)
}

// GetVariation retrieves a price variation by ID.
func (s *PostgresStore) GetVariation(ctx context.Context, id string) (*domain.PriceVariation, error) {
	v := &domain.PriceVariation{}
	if err := scanVariation(s.pool.QueryRow(ctx, queryGetVariation, id), v); err != nil {
		return nil, err
	}
	return v, nil
}

// ListVariations queries variations with optional filters, returning results
// and total count.
func (s *PostgresStore) ListVariations(
	ctx context.Context,
	q *VariationQuery,
) ([]domain.PriceVariation, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting variations: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying variations: %w", err)
	}
	defer rows.Close()

	var variations []domain.PriceVariation
	for rows.Next() {
		var v domain.PriceVariation
		if err := scanVariation(rows, &v); err != nil {
			return nil, 0, fmt.Errorf("scanning variation: %w", err)
		}
		variations = append(variations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating variations: %w", err)
	}

	return variations, total, nil
}

// MarkVariationProcessed sets the processed flag and optional notes.
func (s *PostgresStore) MarkVariationProcessed(ctx context.Context, id string, notes string) error {
	tag, err := s.pool.Exec(ctx, queryMarkVariationProcessed, id, notes)
	if err != nil {
		return fmt.Errorf("marking variation processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountVariationsBySeverity returns unprocessed alert counts keyed by severity.
func (s *PostgresStore) CountVariationsBySeverity(
	ctx context.Context,
) (map[domain.Severity]int, error) {
	rows, err := s.pool.Query(ctx, queryCountVariationsBySeverity)
	if err != nil {
		return nil, fmt.Errorf("counting variations: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Severity]int)
	for rows.Next() {
		var sev string
		var count int
		if err := rows.Scan(&sev, &count); err != nil {
			return nil, fmt.Errorf("scanning variation count: %w", err)
		}
		counts[domain.Severity(sev)] = count
	}

	return counts, rows.Err()
}

// InsertPriceHistory appends one entry to the price ledger.
func (s *PostgresStore) InsertPriceHistory(ctx context.Context, h *domain.PriceHistory) error {
	args := pgx.NamedArgs{
		"product_id":      h.ProductID,
		"price":           h.Price,
		"cost":            h.Cost,
		"quantity":        h.Quantity,
		"total_amount":    h.TotalAmount,
		"document_number": h.DocumentNumber,
		"document_date":   h.DocumentDate,
		"supplier_name":   h.SupplierName,
	}

	return s.pool.QueryRow(ctx, queryInsertPriceHistory, args).Scan(&h.ID, &h.CreatedAt)
}

// ListPriceHistory returns the newest history entries for a product.
func (s *PostgresStore) ListPriceHistory(
	ctx context.Context,
	productID string,
	limit int,
) ([]domain.PriceHistory, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListPriceHistory, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying price history: %w", err)
	}
	defer rows.Close()

	var history []domain.PriceHistory
	for rows.Next() {
		var h domain.PriceHistory
		if err := rows.Scan(
			&h.ID, &h.ProductID, &h.Price, &h.Cost, &h.Quantity, &h.TotalAmount,
			&h.DocumentNumber, &h.DocumentDate, &h.SupplierName, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning price history: %w", err)
		}
		history = append(history, h)
	}

	return history, rows.Err()
}

// GetAlertConfig reads the single alert configuration row. Returns
// pgx.ErrNoRows when no configuration has been persisted yet.
func (s *PostgresStore) GetAlertConfig(ctx context.Context) (*domain.AlertConfig, error) {
	cfg := &domain.AlertConfig{}
	err := s.pool.QueryRow(ctx, queryGetAlertConfig).Scan(
		&cfg.MaxPriceIncreasePct, &cfg.CriticalPriceIncreasePct,
		&cfg.NormalDiscountPct, &cfg.AnomalousDiscountPct,
		&cfg.EnableAutomaticUpdates, &cfg.EnablePriceHistory, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveAlertConfig upserts the single alert configuration row.
func (s *PostgresStore) SaveAlertConfig(ctx context.Context, cfg *domain.AlertConfig) error {
	_, err := s.pool.Exec(ctx, querySaveAlertConfig,
		cfg.MaxPriceIncreasePct, cfg.CriticalPriceIncreasePct,
		cfg.NormalDiscountPct, cfg.AnomalousDiscountPct,
		cfg.EnableAutomaticUpdates, cfg.EnablePriceHistory,
	)
	if err != nil {
		return fmt.Errorf("saving alert config: %w", err)
	}
	return nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanProduct(row scannable, p *domain.ProductRecord) error {
	return row.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Cost, &p.CreatedAt, &p.UpdatedAt)
}

func scanVariation(row scannable, v *domain.PriceVariation) error {
	return row.Scan(
		&v.ID, &v.ProductID, &v.ProductName, &v.ProductSKU,
		&v.OldPrice, &v.NewPrice, &v.VariationPercentage, &v.VariationAmount,
		&v.DocumentNumber, &v.DocumentDate, &v.SupplierName,
		&v.AlertType, &v.Severity, &v.IsProcessed, &v.Notes, &v.CreatedAt,
	)
}
