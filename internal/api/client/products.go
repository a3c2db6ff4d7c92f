package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// SearchProducts returns local products whose name or SKU matches the query.
func (c *Client) SearchProducts(ctx context.Context, query string, limit int) ([]domain.ProductRecord, error) {
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var products []domain.ProductRecord
	if err := c.get(ctx, "/api/v1/products?"+q.Encode(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error) {
	var p domain.ProductRecord
	if err := c.get(ctx, "/api/v1/products/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPriceHistory returns the price history ledger for a product, newest first.
func (c *Client) GetPriceHistory(ctx context.Context, productID string, limit int) ([]domain.PriceHistory, error) {
	path := fmt.Sprintf("/api/v1/products/%s/history", productID)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var history []domain.PriceHistory
	if err := c.get(ctx, path, &history); err != nil {
		return nil, err
	}
	return history, nil
}
