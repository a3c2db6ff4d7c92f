// Package notify defines the notification interface and implementations
// for price variation alert delivery.
package notify

import (
	"context"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// Notifier defines the interface for pushing price variation alerts to an
// external channel. Delivery is best-effort; callers log failures and move on.
type Notifier interface {
	Notify(ctx context.Context, v *domain.PriceVariation) error
}
