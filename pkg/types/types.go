// Package domain defines the core business types for invoice price analysis.
package domain

import (
	"time"
)

// AlertType classifies the kind of price observation that triggered an alert.
type AlertType string

// Alert type constants.
const (
	AlertPriceIncrease   AlertType = "price_increase"
	AlertPriceDecrease   AlertType = "price_decrease"
	AlertDiscountAnomaly AlertType = "discount_anomaly"
	AlertNormal          AlertType = "normal"
)

// Severity is the ordinal urgency classification of an alert.
type Severity string

// Severity constants, lowest to highest.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns the ordinal position of a severity, higher is more urgent.
// Unknown severities rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// DiscountType distinguishes percentage discounts from absolute amounts.
type DiscountType string

// Discount type constants.
const (
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

// LineItem is one extracted product row from a scanned document. It carries
// no identity beyond its position in the document and is never persisted as-is.
type LineItem struct {
	Reference    string       `json:"reference,omitempty"`
	Description  string       `json:"description,omitempty"`
	SKU          string       `json:"sku,omitempty"`
	Quantity     *float64     `json:"quantity,omitempty"`
	UnitPrice    *float64     `json:"unit_price,omitempty"`
	Discount     *float64     `json:"discount,omitempty"`
	DiscountType DiscountType `json:"discount_type,omitempty"`
	TotalPrice   *float64     `json:"total_price,omitempty"`
}

// DiscountPct returns the discount as a percentage, or nil when the item
// carries no percentage discount. Absolute-amount discounts are converted
// against the line total when possible.
func (li *LineItem) DiscountPct() *float64 {
	if li.Discount == nil || *li.Discount <= 0 {
		return nil
	}
	if li.DiscountType == DiscountAmount {
		if li.TotalPrice == nil || *li.TotalPrice <= 0 {
			return nil
		}
		pct := *li.Discount / (*li.TotalPrice + *li.Discount) * 100
		return &pct
	}
	return li.Discount
}

// ProductSource identifies which lookup table a product record came from.
type ProductSource string

// Product source constants.
const (
	SourceLocal   ProductSource = "local"
	SourceCatalog ProductSource = "catalog"
)

// ProductRecord is the unified read-only product shape both the local store
// and the external catalog adapt into before matching.
type ProductRecord struct {
	ID        string        `json:"id"                   db:"id"`
	Name      string        `json:"name"                 db:"name"`
	SKU       string        `json:"sku,omitempty"        db:"sku"`
	Price     float64       `json:"price"                db:"price"`
	Cost      *float64      `json:"cost,omitempty"       db:"cost"`
	Source    ProductSource `json:"source,omitempty"     db:"-"`
	CreatedAt time.Time     `json:"created_at,omitzero"  db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at,omitzero"  db:"updated_at"`
}

// MatchType classifies how a line item was matched to a product.
type MatchType string

// Match type constants.
const (
	MatchExactSKU    MatchType = "exact_sku"
	MatchExactName   MatchType = "exact_name"
	MatchSimilarName MatchType = "similar_name"
	MatchPartial     MatchType = "partial_match"
)

// SuggestedAction is the recommended follow-up for a product match.
type SuggestedAction string

// Suggested action constants.
const (
	ActionUpdateExisting SuggestedAction = "update_existing"
	ActionManualReview   SuggestedAction = "manual_review"
	ActionCreateNew      SuggestedAction = "create_new"
)

// ProductMatch is the result of matching a line item against the product
// catalogs. Product is nil when no candidate cleared the similarity floor.
type ProductMatch struct {
	Product         *ProductRecord  `json:"product,omitempty"`
	Confidence      float64         `json:"confidence"`
	MatchType       MatchType       `json:"match_type"`
	SuggestedAction SuggestedAction `json:"suggested_action"`
}

// DocumentInfo carries the provenance of a price observation.
type DocumentInfo struct {
	DocumentNumber string `json:"document_number"`
	DocumentDate   string `json:"document_date"`
	SupplierName   string `json:"supplier_name"`
}

// PriceVariation is a persisted alert flagging a price observation that
// crossed a configured threshold. Created once per flagged observation and
// never mutated except for the processed flag and notes.
type PriceVariation struct {
	ID                  string    `json:"id"                    db:"id"`
	ProductID           string    `json:"product_id"            db:"product_id"`
	ProductName         string    `json:"product_name"          db:"product_name"`
	ProductSKU          string    `json:"product_sku,omitempty" db:"product_sku"`
	OldPrice            float64   `json:"old_price"             db:"old_price"`
	NewPrice            float64   `json:"new_price"             db:"new_price"`
	VariationPercentage float64   `json:"variation_percentage"  db:"variation_pct"`
	VariationAmount     float64   `json:"variation_amount"      db:"variation_amount"`
	DocumentNumber      string    `json:"document_number"       db:"document_number"`
	DocumentDate        string    `json:"document_date"         db:"document_date"`
	SupplierName        string    `json:"supplier_name"         db:"supplier_name"`
	AlertType           AlertType `json:"alert_type"            db:"alert_type"`
	Severity            Severity  `json:"severity"              db:"severity"`
	IsProcessed         bool      `json:"is_processed"          db:"is_processed"`
	Notes               string    `json:"notes,omitempty"       db:"notes"`
	CreatedAt           time.Time `json:"created_at"            db:"created_at"`
}

// PriceHistory is one entry in the append-only price ledger: the price a
// supplier charged for a product on a specific document.
type PriceHistory struct {
	ID             string    `json:"id"              db:"id"`
	ProductID      string    `json:"product_id"      db:"product_id"`
	Price          float64   `json:"price"           db:"price"`
	Cost           *float64  `json:"cost,omitempty"  db:"cost"`
	Quantity       float64   `json:"quantity"        db:"quantity"`
	TotalAmount    float64   `json:"total_amount"    db:"total_amount"`
	DocumentNumber string    `json:"document_number" db:"document_number"`
	DocumentDate   string    `json:"document_date"   db:"document_date"`
	SupplierName   string    `json:"supplier_name"   db:"supplier_name"`
	CreatedAt      time.Time `json:"created_at"      db:"created_at"`
}

// AlertConfig holds the threshold configuration for price variation analysis.
// Read-only after load; a new load requires reconstructing the analyzer or an
// explicit reload call.
type AlertConfig struct {
	MaxPriceIncreasePct      float64   `json:"max_price_increase_percentage"      db:"max_price_increase_pct"`
	CriticalPriceIncreasePct float64   `json:"critical_price_increase_percentage" db:"critical_price_increase_pct"`
	NormalDiscountPct        float64   `json:"normal_discount_percentage"         db:"normal_discount_pct"`
	AnomalousDiscountPct     float64   `json:"anomalous_discount_percentage"      db:"anomalous_discount_pct"`
	EnableAutomaticUpdates   bool      `json:"enable_automatic_updates"           db:"enable_automatic_updates"`
	EnablePriceHistory       bool      `json:"enable_price_history"               db:"enable_price_history"`
	UpdatedAt                time.Time `json:"updated_at,omitzero"                db:"updated_at"`
}

// DefaultAlertConfig returns the hardcoded fallback thresholds used when no
// persisted configuration exists or the store is unreachable.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		MaxPriceIncreasePct:      10.0,
		CriticalPriceIncreasePct: 25.0,
		NormalDiscountPct:        15.0,
		AnomalousDiscountPct:     60.0,
		EnableAutomaticUpdates:   false,
		EnablePriceHistory:       true,
	}
}

// ItemAnalysis is the per-line-item outcome of a document analysis.
type ItemAnalysis struct {
	Index             int           `json:"index"`
	Item              LineItem      `json:"item"`
	Match             *ProductMatch `json:"match,omitempty"`
	HasPriceVariation bool          `json:"has_price_variation"`
	AlertType         AlertType     `json:"alert_type"`
	Severity          Severity      `json:"severity"`
	Message           string        `json:"message,omitempty"`
	OldPrice          *float64      `json:"old_price,omitempty"`
	NewPrice          float64       `json:"new_price"`
	VariationPct      *float64      `json:"variation_percentage,omitempty"`
	VariationAmount   *float64      `json:"variation_amount,omitempty"`
	Error             string        `json:"error,omitempty"`
}

// AlertCounts aggregates variation-flagged items by severity. Total counts
// every flagged item regardless of bucket.
type AlertCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Total    int `json:"total"`
}

// Add buckets one flagged analysis into the counts.
func (c *AlertCounts) Add(sev Severity) {
	switch sev {
	case SeverityCritical:
		c.Critical++
	case SeverityHigh:
		c.High++
	case SeverityMedium:
		c.Medium++
	case SeverityLow:
		c.Low++
	}
	c.Total++
}

// BatchResult is the outcome of analyzing every line item of a document.
// Analyses always has the same length and order as the input items.
type BatchResult struct {
	DocumentInfo DocumentInfo   `json:"document_info"`
	Analyses     []ItemAnalysis `json:"analyses"`
	AlertCounts  AlertCounts    `json:"alert_counts"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
