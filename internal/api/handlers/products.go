package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/facturio/invoice-price-alerts/internal/store"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

const (
	defaultProductSearchLimit = 20
	defaultHistoryLimit       = 50
)

// ProductHandler handles local product store endpoints.
type ProductHandler struct {
	store store.Store
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(s store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

// Search handles GET /api/v1/products.
//
// @Summary Search local products
// @Description Returns local products whose name or SKU matches the query.
// @Tags products
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Number of results (default 20)"
// @Success 200 {array} domain.ProductRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products [get]
func (h *ProductHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "q query parameter is required",
		})
	}

	limit := defaultProductSearchLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	products, err := h.store.SearchProducts(c.Request().Context(), query, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "searching products: " + err.Error(),
		})
	}

	if products == nil {
		products = []domain.ProductRecord{}
	}

	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/v1/products/:id.
//
// @Summary Get a product by ID
// @Description Returns a single local product by its UUID.
// @Tags products
// @Produce json
// @Param id path string true "Product UUID"
// @Success 200 {object} domain.ProductRecord
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id := c.Param("id")

	p, err := h.store.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "product not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "fetching product: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, p)
}

// History handles GET /api/v1/products/:id/history.
//
// @Summary Get product price history
// @Description Returns the price history ledger for a product, newest first.
// @Tags products
// @Produce json
// @Param id path string true "Product UUID"
// @Param limit query int false "Number of entries (default 50)"
// @Success 200 {array} domain.PriceHistory
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products/{id}/history [get]
func (h *ProductHandler) History(c echo.Context) error {
	id := c.Param("id")

	limit := defaultHistoryLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	history, err := h.store.ListPriceHistory(c.Request().Context(), id, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "fetching price history: " + err.Error(),
		})
	}

	if history == nil {
		history = []domain.PriceHistory{}
	}

	return c.JSON(http.StatusOK, history)
}
