// Package catalog provides a client for the external ERP product catalog,
// abstracted behind an interface for testability.
package catalog

import (
	"context"
	"errors"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// ErrUnavailable is returned when the catalog cannot be reached or answers
// with a server error. Callers degrade to local-only matching on this error.
var ErrUnavailable = errors.New("catalog unavailable")

// ErrNotFound is returned when the requested product does not exist in the
// catalog.
var ErrNotFound = errors.New("product not found in catalog")

// ProductUpdate carries the mutable fields of a catalog product. Nil fields
// are left unchanged.
type ProductUpdate struct {
	Price *float64 `json:"price,omitempty"`
	Cost  *float64 `json:"cost,omitempty"`
}

// Catalog defines the operations against the external product catalog.
type Catalog interface {
	// ListProducts returns the full catalog product list.
	ListProducts(ctx context.Context) ([]domain.ProductRecord, error)

	// SearchProducts returns catalog products matching the query string.
	SearchProducts(ctx context.Context, query string, limit int) ([]domain.ProductRecord, error)

	// GetProduct returns a single catalog product by its catalog ID.
	GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error)

	// UpdateProduct applies a partial update to a catalog product.
	UpdateProduct(ctx context.Context, id string, update ProductUpdate) error
}
