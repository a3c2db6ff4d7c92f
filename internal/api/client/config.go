package client

import (
	"context"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// GetConfig returns the active alert threshold configuration.
func (c *Client) GetConfig(ctx context.Context) (*domain.AlertConfig, error) {
	var cfg domain.AlertConfig
	if err := c.get(ctx, "/api/v1/config", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateConfig persists and activates a new alert threshold configuration.
func (c *Client) UpdateConfig(ctx context.Context, cfg *domain.AlertConfig) (*domain.AlertConfig, error) {
	var updated domain.AlertConfig
	if err := c.put(ctx, "/api/v1/config", cfg, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
