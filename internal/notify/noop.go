package notify

import (
	"context"
	"log/slog"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when no webhook backend is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// Notify logs and discards an alert.
func (n *NoOpNotifier) Notify(_ context.Context, v *domain.PriceVariation) error {
	n.log.Debug("notification discarded (no backend configured)",
		"product", v.ProductName,
		"alert_type", v.AlertType,
		"severity", v.Severity,
	)
	return nil
}
