package catalog_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturio/invoice-price-alerts/internal/catalog"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

func TestHTTPCatalog_ListProducts(t *testing.T) {
	t.Parallel()

	t.Run("successful list", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"products": [
					{"id": "cat-1", "name": "Tornillo 4x40", "sku": "TOR-4X40", "price": 12.50, "cost": 8.50},
					{"id": "cat-2", "name": "Tuerca M8", "sku": "TUE-M8", "price": 3.20}
				],
				"total": 2
			}`))
		}))
		defer srv.Close()

		c := catalog.NewHTTPCatalog(srv.URL, "test-key")
		products, err := c.ListProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, domain.SourceCatalog, products[0].Source)
		assert.Equal(t, "TOR-4X40", products[0].SKU)
		require.NotNil(t, products[0].Cost)
		assert.InDelta(t, 8.50, *products[0].Cost, 0.001)
		assert.Nil(t, products[1].Cost)
	})

	t.Run("server error maps to ErrUnavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := catalog.NewHTTPCatalog(srv.URL, "test-key")
		_, err := c.ListProducts(context.Background())
		assert.ErrorIs(t, err, catalog.ErrUnavailable)
	})

	t.Run("connection refused maps to ErrUnavailable", func(t *testing.T) {
		t.Parallel()

		c := catalog.NewHTTPCatalog("http://127.0.0.1:1", "test-key")
		_, err := c.ListProducts(context.Background())
		assert.ErrorIs(t, err, catalog.ErrUnavailable)
	})
}

func TestHTTPCatalog_SearchProducts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/search", r.URL.Path)
		assert.Equal(t, "tornillo", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products": [{"id": "cat-1", "name": "Tornillo 4x40", "sku": "TOR-4X40", "price": 12.50}], "total": 1}`))
	}))
	defer srv.Close()

	c := catalog.NewHTTPCatalog(srv.URL, "test-key")
	products, err := c.SearchProducts(context.Background(), "tornillo", 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "cat-1", products[0].ID)
}

func TestHTTPCatalog_GetProduct(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/cat-1", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "cat-1", "name": "Tornillo 4x40", "sku": "TOR-4X40", "price": 12.50}`))
		}))
		defer srv.Close()

		c := catalog.NewHTTPCatalog(srv.URL, "test-key")
		p, err := c.GetProduct(context.Background(), "cat-1")
		require.NoError(t, err)
		assert.Equal(t, "Tornillo 4x40", p.Name)
		assert.Equal(t, domain.SourceCatalog, p.Source)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := catalog.NewHTTPCatalog(srv.URL, "test-key")
		_, err := c.GetProduct(context.Background(), "missing")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestHTTPCatalog_UpdateProduct(t *testing.T) {
	t.Parallel()

	t.Run("sends partial update", func(t *testing.T) {
		t.Parallel()

		var gotBody string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/products/cat-1", r.URL.Path)

			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		price := 15.0
		c := catalog.NewHTTPCatalog(srv.URL, "test-key")
		err := c.UpdateProduct(context.Background(), "cat-1", catalog.ProductUpdate{Price: &price})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price": 15}`, gotBody)
	})

	t.Run("client error is not ErrUnavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error": "negative price"}`))
		}))
		defer srv.Close()

		price := -1.0
		c := catalog.NewHTTPCatalog(srv.URL, "test-key")
		err := c.UpdateProduct(context.Background(), "cat-1", catalog.ProductUpdate{Price: &price})
		require.Error(t, err)
		assert.NotErrorIs(t, err, catalog.ErrUnavailable)
		assert.Contains(t, err.Error(), "status 422")
	})
}

func TestHTTPCatalog_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products": [], "total": 0}`))
	}))
	defer srv.Close()

	rl := catalog.NewRateLimiter(100, 10, 1)
	c := catalog.NewHTTPCatalog(srv.URL, "test-key", catalog.WithRateLimiter(rl))

	_, err := c.ListProducts(context.Background())
	require.NoError(t, err)

	_, err = c.ListProducts(context.Background())
	assert.ErrorIs(t, err, catalog.ErrDailyQuotaReached)
}
