package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// DocumentAnalyzer defines the engine methods required by the analyze handler.
type DocumentAnalyzer interface {
	AnalyzeDocument(ctx context.Context, info domain.DocumentInfo, items []domain.LineItem) (*domain.BatchResult, error)
	AnalyzeItem(ctx context.Context, info domain.DocumentInfo, item domain.LineItem) (*domain.ItemAnalysis, error)
}

// AnalyzeHandler handles document and line item analysis requests.
type AnalyzeHandler struct {
	analyzer DocumentAnalyzer
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(a DocumentAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: a}
}

// AnalyzeDocumentRequest is the request body for document analysis.
type AnalyzeDocumentRequest struct {
	DocumentInfo domain.DocumentInfo `json:"document_info"`
	Items        []domain.LineItem   `json:"items"`
}

// AnalyzeItemRequest is the request body for single item analysis.
type AnalyzeItemRequest struct {
	DocumentInfo domain.DocumentInfo `json:"document_info"`
	Item         domain.LineItem     `json:"item"`
}

// AnalyzeDocument handles POST /api/v1/analyze.
//
// @Summary Analyze a digitized document
// @Description Matches every line item against the product catalogs, classifies price variations, and persists alerts.
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body AnalyzeDocumentRequest true "Document info and line items"
// @Success 200 {object} domain.BatchResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/analyze [post]
func (h *AnalyzeHandler) AnalyzeDocument(c echo.Context) error {
	var req AnalyzeDocumentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "items is required and must not be empty",
		})
	}

	result, err := h.analyzer.AnalyzeDocument(
		c.Request().Context(),
		req.DocumentInfo,
		req.Items,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "analyzing document: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// AnalyzeItem handles POST /api/v1/analyze/item.
//
// @Summary Analyze a single line item
// @Description Matches one line item against the product catalogs and classifies its price variation.
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body AnalyzeItemRequest true "Document info and a single line item"
// @Success 200 {object} domain.ItemAnalysis
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/analyze/item [post]
func (h *AnalyzeHandler) AnalyzeItem(c echo.Context) error {
	var req AnalyzeItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	analysis, err := h.analyzer.AnalyzeItem(
		c.Request().Context(),
		req.DocumentInfo,
		req.Item,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "analyzing item: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, analysis)
}
