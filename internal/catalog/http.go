package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/facturio/invoice-price-alerts/internal/metrics"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

const defaultSearchLimit = 50

// HTTPCatalog implements Catalog against the ERP catalog REST API.
type HTTPCatalog struct {
	baseURL     string
	apiKey      string
	client      *http.Client
	rateLimiter *RateLimiter
}

// Option configures the HTTPCatalog.
type Option func(*HTTPCatalog)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPCatalog) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every catalog call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *HTTPCatalog) {
		c.rateLimiter = r
	}
}

// NewHTTPCatalog creates a catalog client for the API at baseURL,
// authenticating with apiKey.
func NewHTTPCatalog(baseURL, apiKey string, opts ...Option) *HTTPCatalog {
	c := &HTTPCatalog{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type catalogProduct struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	SKU   string   `json:"sku"`
	Price float64  `json:"price"`
	Cost  *float64 `json:"cost"`
}

type productListResponse struct {
	Products []catalogProduct `json:"products"`
	Total    int              `json:"total"`
}

// ListProducts implements Catalog.ListProducts.
func (c *HTTPCatalog) ListProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	body, err := c.get(ctx, "/api/products", nil)
	if err != nil {
		return nil, err
	}

	var resp productListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing product list: %w", err)
	}

	return toRecords(resp.Products), nil
}

// SearchProducts implements Catalog.SearchProducts.
func (c *HTTPCatalog) SearchProducts(
	ctx context.Context,
	query string,
	limit int,
) ([]domain.ProductRecord, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "/api/products/search", params)
	if err != nil {
		return nil, err
	}

	var resp productListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return toRecords(resp.Products), nil
}

// GetProduct implements Catalog.GetProduct.
func (c *HTTPCatalog) GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error) {
	body, err := c.get(ctx, "/api/products/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var p catalogProduct
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("parsing product: %w", err)
	}

	rec := toRecord(p)
	return &rec, nil
}

// UpdateProduct implements Catalog.UpdateProduct.
func (c *HTTPCatalog) UpdateProduct(ctx context.Context, id string, update ProductUpdate) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("encoding product update: %w", err)
	}

	u := c.baseURL + "/api/products/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.CatalogErrorsTotal.Inc()
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

func (c *HTTPCatalog) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.CatalogErrorsTotal.Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return body, nil
}

func (c *HTTPCatalog) wait(ctx context.Context) error {
	if c.rateLimiter == nil {
		return nil
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		if errors.Is(err, ErrDailyQuotaReached) {
			metrics.CatalogQuotaHits.Inc()
		}
		return fmt.Errorf("rate limit: %w", err)
	}
	metrics.CatalogAPICallsTotal.Inc()
	metrics.CatalogDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	return nil
}

func (c *HTTPCatalog) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

func (c *HTTPCatalog) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		metrics.CatalogErrorsTotal.Inc()
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("catalog API error (status %d): %s", resp.StatusCode, string(body))
	}
}

func toRecord(p catalogProduct) domain.ProductRecord {
	return domain.ProductRecord{
		ID:     p.ID,
		Name:   p.Name,
		SKU:    p.SKU,
		Price:  p.Price,
		Cost:   p.Cost,
		Source: domain.SourceCatalog,
	}
}

func toRecords(products []catalogProduct) []domain.ProductRecord {
	records := make([]domain.ProductRecord, 0, len(products))
	for _, p := range products {
		records = append(records, toRecord(p))
	}
	return records
}
