// Package classifier turns a price observation into an alert type and
// severity using configurable thresholds.
package classifier

import (
	"fmt"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// Result is the outcome of classifying a single price observation.
// VariationPct and VariationAmount are only meaningful when HasPrior is true.
type Result struct {
	AlertType       domain.AlertType
	Severity        domain.Severity
	Message         string
	HasPrior        bool
	VariationPct    float64
	VariationAmount float64
}

// HasVariation reports whether the observation crossed a threshold worth
// flagging. Normal classifications are not variations.
func (r Result) HasVariation() bool {
	return r.AlertType != domain.AlertNormal
}

// Classify evaluates a newly observed price against the previous one.
// oldPrice nil or zero means there is no prior price: the observation is
// normal and no percentage is ever computed. A discount above the normal
// band wins over the price-delta rules; a discount at or below the normal
// band falls through to the price-delta evaluation, so a small discount
// never suppresses a price-increase alert.
func Classify(oldPrice *float64, newPrice float64, discountPct *float64, cfg domain.AlertConfig) Result {
	if oldPrice == nil || *oldPrice == 0 {
		return Result{
			AlertType: domain.AlertNormal,
			Severity:  domain.SeverityLow,
			Message:   "no prior price to compare, treating as new product",
		}
	}

	amount := newPrice - *oldPrice
	pct := amount / *oldPrice * 100

	r := Result{
		HasPrior:        true,
		VariationPct:    pct,
		VariationAmount: amount,
	}

	if discountPct != nil && *discountPct > 0 {
		d := *discountPct
		switch {
		case d > cfg.AnomalousDiscountPct:
			r.AlertType = domain.AlertDiscountAnomaly
			r.Severity = domain.SeverityHigh
			r.Message = fmt.Sprintf("discount of %.1f%% exceeds the anomalous bound of %.1f%%", d, cfg.AnomalousDiscountPct)
			return r
		case d > cfg.NormalDiscountPct:
			r.AlertType = domain.AlertDiscountAnomaly
			r.Severity = domain.SeverityMedium
			r.Message = fmt.Sprintf("discount of %.1f%% is above the usual %.1f%%", d, cfg.NormalDiscountPct)
			return r
		}
		// Small discounts fall through to the price-delta rules.
	}

	switch {
	case amount > 0:
		r.AlertType = domain.AlertPriceIncrease
		switch {
		case pct > cfg.CriticalPriceIncreasePct:
			r.Severity = domain.SeverityCritical
		case pct > cfg.MaxPriceIncreasePct:
			r.Severity = domain.SeverityHigh
		default:
			r.Severity = domain.SeverityMedium
		}
		r.Message = fmt.Sprintf("price increased %.1f%% (%.2f to %.2f)", pct, *oldPrice, newPrice)
	case amount < 0:
		r.AlertType = domain.AlertPriceDecrease
		r.Severity = domain.SeverityLow
		r.Message = fmt.Sprintf("price decreased %.1f%% (%.2f to %.2f)", -pct, *oldPrice, newPrice)
	default:
		r.AlertType = domain.AlertNormal
		r.Severity = domain.SeverityLow
		r.Message = "price unchanged"
	}

	return r
}
