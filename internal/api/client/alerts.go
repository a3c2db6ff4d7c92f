package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// AlertFilter holds optional query filters for listing alerts.
type AlertFilter struct {
	Severity  string
	AlertType string
	ProductID string
	Processed *bool
	Limit     int
	Offset    int
}

// AlertList is the paginated alert listing returned by the API.
type AlertList struct {
	Alerts []domain.PriceVariation `json:"alerts"`
	Total  int                     `json:"total"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
}

// AlertSummary aggregates unprocessed alerts by severity.
type AlertSummary struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Total    int `json:"total"`
}

// ListAlerts returns alerts matching the given filters.
func (c *Client) ListAlerts(ctx context.Context, f AlertFilter) (*AlertList, error) {
	q := url.Values{}
	if f.Severity != "" {
		q.Set("severity", f.Severity)
	}
	if f.AlertType != "" {
		q.Set("alert_type", f.AlertType)
	}
	if f.ProductID != "" {
		q.Set("product_id", f.ProductID)
	}
	if f.Processed != nil {
		q.Set("processed", strconv.FormatBool(*f.Processed))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}

	path := "/api/v1/alerts"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list AlertList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetAlert returns a single alert by ID.
func (c *Client) GetAlert(ctx context.Context, id string) (*domain.PriceVariation, error) {
	var v domain.PriceVariation
	if err := c.get(ctx, "/api/v1/alerts/"+id, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ProcessAlert marks an alert as reviewed, with optional notes.
func (c *Client) ProcessAlert(ctx context.Context, id, notes string) error {
	body := map[string]string{"notes": notes}
	return c.post(ctx, fmt.Sprintf("/api/v1/alerts/%s/process", id), body, nil)
}

// AlertsSummary returns unprocessed alert counts bucketed by severity.
func (c *Client) AlertsSummary(ctx context.Context) (*AlertSummary, error) {
	var s AlertSummary
	if err := c.get(ctx, "/api/v1/alerts/summary", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
