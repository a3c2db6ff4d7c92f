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

// AlertHandler handles price variation alert endpoints.
type AlertHandler struct {
	store store.Store
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(s store.Store) *AlertHandler {
	return &AlertHandler{store: s}
}

// ListAlertsResponse is the paginated response for listing alerts.
type ListAlertsResponse struct {
	Alerts []domain.PriceVariation `json:"alerts"`
	Total  int                     `json:"total"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
}

// AlertSummaryResponse aggregates unprocessed alerts by severity.
type AlertSummaryResponse struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Total    int `json:"total"`
}

type processAlertRequest struct {
	Notes string `json:"notes" example:"verified with supplier"`
}

// List handles GET /api/v1/alerts.
//
// @Summary List price variation alerts
// @Description Returns alerts with optional filters for severity, alert type, product, and processed status.
// @Tags alerts
// @Produce json
// @Param severity query string false "Filter by severity" Enums(low, medium, high, critical)
// @Param alert_type query string false "Filter by alert type" Enums(price_increase, price_decrease, discount_anomaly)
// @Param product_id query string false "Filter by product UUID"
// @Param processed query string false "Filter by processed status" Enums(true, false)
// @Param limit query int false "Number of results (default 50)"
// @Param offset query int false "Pagination offset"
// @Success 200 {object} ListAlertsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	q := &store.VariationQuery{}

	if v := c.QueryParam("severity"); v != "" {
		sev := domain.Severity(v)
		q.Severity = &sev
	}

	if v := c.QueryParam("alert_type"); v != "" {
		typ := domain.AlertType(v)
		q.AlertType = &typ
	}

	if v := c.QueryParam("product_id"); v != "" {
		q.ProductID = &v
	}

	if v := c.QueryParam("processed"); v != "" {
		processed := v == "true"
		q.Processed = &processed
	}

	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		q.Limit = v
	}

	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		q.Offset = v
	}

	alerts, total, err := h.store.ListVariations(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing alerts: " + err.Error(),
		})
	}

	if alerts == nil {
		alerts = []domain.PriceVariation{}
	}

	return c.JSON(http.StatusOK, ListAlertsResponse{
		Alerts: alerts,
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
}

// Get handles GET /api/v1/alerts/:id.
//
// @Summary Get an alert by ID
// @Description Returns a single price variation alert by its UUID.
// @Tags alerts
// @Produce json
// @Param id path string true "Alert UUID"
// @Success 200 {object} domain.PriceVariation
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts/{id} [get]
func (h *AlertHandler) Get(c echo.Context) error {
	id := c.Param("id")

	v, err := h.store.GetVariation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "alert not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "fetching alert: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, v)
}

// Process handles POST /api/v1/alerts/:id/process.
//
// @Summary Mark an alert as processed
// @Description Marks a price variation alert as reviewed, with optional notes.
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path string true "Alert UUID"
// @Param body body processAlertRequest false "Review notes"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts/{id}/process [post]
func (h *AlertHandler) Process(c echo.Context) error {
	id := c.Param("id")

	var req processAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if err := h.store.MarkVariationProcessed(c.Request().Context(), id, req.Notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "alert not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "processing alert: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "processed",
	})
}

// Summary handles GET /api/v1/alerts/summary.
//
// @Summary Summarize unprocessed alerts
// @Description Returns unprocessed alert counts bucketed by severity.
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts/summary [get]
func (h *AlertHandler) Summary(c echo.Context) error {
	counts, err := h.store.CountVariationsBySeverity(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "summarizing alerts: " + err.Error(),
		})
	}

	resp := AlertSummaryResponse{
		Critical: counts[domain.SeverityCritical],
		High:     counts[domain.SeverityHigh],
		Medium:   counts[domain.SeverityMedium],
		Low:      counts[domain.SeverityLow],
	}
	resp.Total = resp.Critical + resp.High + resp.Medium + resp.Low

	return c.JSON(http.StatusOK, resp)
}
