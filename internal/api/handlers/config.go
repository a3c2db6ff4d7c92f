package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// ConfigProvider defines the engine methods required by the config handler.
type ConfigProvider interface {
	Config() domain.AlertConfig
	SetConfig(ctx context.Context, cfg domain.AlertConfig) error
	Reload(ctx context.Context) error
}

// ConfigHandler handles alert threshold configuration endpoints.
type ConfigHandler struct {
	provider ConfigProvider
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(p ConfigProvider) *ConfigHandler {
	return &ConfigHandler{provider: p}
}

// Get handles GET /api/v1/config.
//
// @Summary Get alert thresholds
// @Description Returns the active alert threshold configuration.
// @Tags config
// @Produce json
// @Success 200 {object} domain.AlertConfig
// @Router /api/v1/config [get]
func (h *ConfigHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.provider.Config())
}

// Update handles PUT /api/v1/config.
//
// @Summary Update alert thresholds
// @Description Persists and activates a new alert threshold configuration.
// @Tags config
// @Accept json
// @Produce json
// @Param config body domain.AlertConfig true "New threshold configuration"
// @Success 200 {object} domain.AlertConfig
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/config [put]
func (h *ConfigHandler) Update(c echo.Context) error {
	var cfg domain.AlertConfig
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if msg := validateConfig(cfg); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg,
		})
	}

	if err := h.provider.SetConfig(c.Request().Context(), cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "saving config: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, h.provider.Config())
}

// Reload handles POST /api/v1/config/reload.
//
// @Summary Reload alert thresholds
// @Description Re-reads the alert threshold configuration from the database.
// @Tags config
// @Produce json
// @Success 200 {object} domain.AlertConfig
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/config/reload [post]
func (h *ConfigHandler) Reload(c echo.Context) error {
	if err := h.provider.Reload(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "reloading config: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, h.provider.Config())
}

func validateConfig(cfg domain.AlertConfig) string {
	switch {
	case cfg.MaxPriceIncreasePct <= 0:
		return "max_price_increase_percentage must be positive"
	case cfg.CriticalPriceIncreasePct <= cfg.MaxPriceIncreasePct:
		return "critical_price_increase_percentage must exceed max_price_increase_percentage"
	case cfg.NormalDiscountPct < 0:
		return "normal_discount_percentage must not be negative"
	case cfg.AnomalousDiscountPct <= cfg.NormalDiscountPct:
		return "anomalous_discount_percentage must exceed normal_discount_percentage"
	}
	return ""
}
