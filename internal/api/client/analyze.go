package client

import (
	"context"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// analyzeDocumentRequest is the request body for document analysis.
type analyzeDocumentRequest struct {
	DocumentInfo domain.DocumentInfo `json:"document_info"`
	Items        []domain.LineItem   `json:"items"`
}

// AnalyzeDocument submits a digitized document for price variation analysis.
func (c *Client) AnalyzeDocument(
	ctx context.Context,
	info domain.DocumentInfo,
	items []domain.LineItem,
) (*domain.BatchResult, error) {
	req := analyzeDocumentRequest{DocumentInfo: info, Items: items}

	var result domain.BatchResult
	if err := c.post(ctx, "/api/v1/analyze", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
