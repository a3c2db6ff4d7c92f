package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/facturio/invoice-price-alerts/internal/catalog"
	"github.com/facturio/invoice-price-alerts/internal/metrics"
	"github.com/facturio/invoice-price-alerts/pkg/classifier"
	"github.com/facturio/invoice-price-alerts/pkg/matcher"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

const (
	unknownSupplier      = "Proveedor desconocido"
	localCandidateLimit  = 25
	documentNumberFormat = "20060102150405"
)

// AnalyzeDocument analyzes every line item of a digitized document. Line
// items are processed concurrently; per-item failures are recorded in the
// corresponding analysis instead of aborting the batch. When the context is
// canceled mid-batch, completed analyses are kept and the remaining items
// carry a cancellation error, so the result always covers every input item
// in order.
func (a *Analyzer) AnalyzeDocument(
	ctx context.Context,
	info domain.DocumentInfo,
	items []domain.LineItem,
) (*domain.BatchResult, error) {
	start := time.Now()
	defer func() {
		metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	a.applyDocumentDefaults(&info)
	cfg := a.Config()

	// One catalog fetch per document, not per item. Matching degrades to
	// local-only when the catalog is unreachable.
	var catalogProducts []domain.ProductRecord
	if a.snapshot != nil {
		var err error
		catalogProducts, err = a.snapshot.Products(ctx)
		if err != nil {
			a.log.Warn("catalog unavailable, matching against local products only",
				"error", err,
			)
			catalogProducts = nil
		}
	}

	analyses := make([]domain.ItemAnalysis, len(items))

	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for i := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				analyses[i] = canceledAnalysis(i, items[i], err)
				return nil
			}
			analyses[i] = a.analyzeItem(ctx, i, items[i], info, catalogProducts, cfg)
			return nil
		})
	}

	// Cancellation is recorded per item, never returned by a goroutine.
	_ = g.Wait()

	result := &domain.BatchResult{
		DocumentInfo: info,
		Analyses:     analyses,
	}
	for i := range analyses {
		if analyses[i].HasPriceVariation {
			result.AlertCounts.Add(analyses[i].Severity)
		}
	}

	metrics.DocumentsAnalyzedTotal.Inc()
	a.log.Info("document analyzed",
		"document", info.DocumentNumber,
		"supplier", info.SupplierName,
		"items", len(items),
		"alerts", result.AlertCounts.Total,
	)

	return result, nil
}

// AnalyzeItem analyzes a single line item outside of a batch.
func (a *Analyzer) AnalyzeItem(
	ctx context.Context,
	info domain.DocumentInfo,
	item domain.LineItem,
) (*domain.ItemAnalysis, error) {
	a.applyDocumentDefaults(&info)
	cfg := a.Config()

	var catalogProducts []domain.ProductRecord
	if a.snapshot != nil {
		var err error
		catalogProducts, err = a.snapshot.Products(ctx)
		if err != nil {
			a.log.Warn("catalog unavailable, matching against local products only",
				"error", err,
			)
			catalogProducts = nil
		}
	}

	analysis := a.analyzeItem(ctx, 0, item, info, catalogProducts, cfg)
	return &analysis, nil
}

// canceledAnalysis is the placeholder recorded for items the batch never
// reached before its context was canceled.
func canceledAnalysis(index int, item domain.LineItem, err error) domain.ItemAnalysis {
	metrics.AnalysisErrorsTotal.Inc()
	return domain.ItemAnalysis{
		Index:     index,
		Item:      item,
		AlertType: domain.AlertNormal,
		Severity:  domain.SeverityLow,
		Error:     fmt.Sprintf("analysis canceled: %v", err),
	}
}

func (a *Analyzer) applyDocumentDefaults(info *domain.DocumentInfo) {
	now := a.nowFunc()
	if info.DocumentNumber == "" {
		info.DocumentNumber = "DOC-" + now.Format(documentNumberFormat)
	}
	if info.DocumentDate == "" {
		info.DocumentDate = now.Format("2006-01-02")
	}
	if info.SupplierName == "" {
		info.SupplierName = unknownSupplier
	}
}

func (a *Analyzer) analyzeItem(
	ctx context.Context,
	index int,
	item domain.LineItem,
	info domain.DocumentInfo,
	catalogProducts []domain.ProductRecord,
	cfg domain.AlertConfig,
) domain.ItemAnalysis {
	metrics.ItemsAnalyzedTotal.Inc()

	analysis := domain.ItemAnalysis{
		Index:     index,
		Item:      item,
		AlertType: domain.AlertNormal,
		Severity:  domain.SeverityLow,
	}

	if item.Description == "" && item.SKU == "" && item.Reference == "" {
		analysis.Error = "line item has no description, SKU, or reference"
		metrics.AnalysisErrorsTotal.Inc()
		return analysis
	}

	local, err := a.localCandidates(ctx, item)
	if err != nil {
		analysis.Error = fmt.Sprintf("loading local candidates: %v", err)
		metrics.AnalysisErrorsTotal.Inc()
		return analysis
	}

	match := matcher.Find(matcher.FromLineItem(&item), local, catalogProducts)
	analysis.Match = &match
	metrics.MatchConfidence.Observe(match.Confidence)

	if match.Product == nil {
		analysis.Message = "no matching product found"
		return analysis
	}

	if item.UnitPrice == nil {
		analysis.Message = "line item has no unit price, skipping comparison"
		return analysis
	}
	newPrice := *item.UnitPrice
	analysis.NewPrice = newPrice

	oldPrice := match.Product.Price
	if oldPrice > 0 {
		analysis.OldPrice = &oldPrice
	}

	result := classifier.Classify(analysis.OldPrice, newPrice, item.DiscountPct(), cfg)
	analysis.AlertType = result.AlertType
	analysis.Severity = result.Severity
	analysis.Message = result.Message
	if result.HasPrior {
		analysis.VariationPct = &result.VariationPct
		analysis.VariationAmount = &result.VariationAmount
	}
	analysis.HasPriceVariation = result.HasVariation()

	localID, err := a.ensureLocal(ctx, match.Product)
	if err != nil {
		analysis.Error = fmt.Sprintf("registering matched product: %v", err)
		metrics.AnalysisErrorsTotal.Inc()
		return analysis
	}

	// The history ledger records every observed price, so it is appended
	// before alert persistence and survives an alert write failure.
	a.recordHistory(ctx, localID, &analysis, item, info, cfg)

	if analysis.HasPriceVariation {
		if err := a.createAlert(ctx, localID, match.Product, &analysis, info); err != nil {
			analysis.Error = fmt.Sprintf("persisting alert: %v", err)
			metrics.AnalysisErrorsTotal.Inc()
			return analysis
		}
	}

	a.autoUpdate(ctx, localID, match, &analysis, cfg)

	return analysis
}

// localCandidates gathers local products worth scoring against the item:
// exact SKU and reference lookups plus a substring search on the description.
func (a *Analyzer) localCandidates(
	ctx context.Context,
	item domain.LineItem,
) ([]domain.ProductRecord, error) {
	var candidates []domain.ProductRecord
	seen := make(map[string]bool)

	appendUnique := func(records ...domain.ProductRecord) {
		for _, r := range records {
			if !seen[r.ID] {
				seen[r.ID] = true
				candidates = append(candidates, r)
			}
		}
	}

	for _, code := range []string{item.SKU, item.Reference} {
		if code == "" {
			continue
		}
		p, err := a.store.GetProductBySKU(ctx, code)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return nil, err
		}
		appendUnique(*p)
	}

	if item.Description != "" {
		found, err := a.store.SearchProducts(ctx, item.Description, localCandidateLimit)
		if err != nil {
			return nil, err
		}
		appendUnique(found...)
	}

	return candidates, nil
}

// ensureLocal returns the local product ID for the matched product, creating
// a local record first when the match came from the external catalog.
func (a *Analyzer) ensureLocal(ctx context.Context, p *domain.ProductRecord) (string, error) {
	if p.Source != domain.SourceCatalog {
		return p.ID, nil
	}

	local := &domain.ProductRecord{
		Name:  p.Name,
		SKU:   p.SKU,
		Price: p.Price,
		Cost:  p.Cost,
	}
	if err := a.store.UpsertProduct(ctx, local); err != nil {
		return "", err
	}
	return local.ID, nil
}

func (a *Analyzer) createAlert(
	ctx context.Context,
	localID string,
	product *domain.ProductRecord,
	analysis *domain.ItemAnalysis,
	info domain.DocumentInfo,
) error {
	variation := &domain.PriceVariation{
		ProductID:      localID,
		ProductName:    product.Name,
		ProductSKU:     product.SKU,
		NewPrice:       analysis.NewPrice,
		DocumentNumber: info.DocumentNumber,
		DocumentDate:   info.DocumentDate,
		SupplierName:   info.SupplierName,
		AlertType:      analysis.AlertType,
		Severity:       analysis.Severity,
	}
	if analysis.OldPrice != nil {
		variation.OldPrice = *analysis.OldPrice
	}
	if analysis.VariationPct != nil {
		variation.VariationPercentage = *analysis.VariationPct
	}
	if analysis.VariationAmount != nil {
		variation.VariationAmount = *analysis.VariationAmount
	}

	if err := a.store.CreateVariation(ctx, variation); err != nil {
		return err
	}

	metrics.AlertsCreatedTotal.WithLabelValues(
		string(analysis.AlertType), string(analysis.Severity),
	).Inc()
	a.log.Info("price variation alert created",
		"product", product.Name,
		"alert_type", analysis.AlertType,
		"severity", analysis.Severity,
		"document", info.DocumentNumber,
	)

	if analysis.Severity.Rank() >= a.notifyMin.Rank() {
		if err := a.notifier.Notify(ctx, variation); err != nil {
			a.log.Warn("alert notification failed",
				"product", product.Name,
				"severity", analysis.Severity,
				"error", err,
			)
		}
	}
	return nil
}

// recordHistory appends the observed price to the product's history ledger.
// Failures are logged, not surfaced, since the analysis itself succeeded.
func (a *Analyzer) recordHistory(
	ctx context.Context,
	localID string,
	analysis *domain.ItemAnalysis,
	item domain.LineItem,
	info domain.DocumentInfo,
	cfg domain.AlertConfig,
) {
	if !cfg.EnablePriceHistory {
		return
	}

	history := &domain.PriceHistory{
		ProductID:      localID,
		Price:          analysis.NewPrice,
		DocumentNumber: info.DocumentNumber,
		DocumentDate:   info.DocumentDate,
		SupplierName:   info.SupplierName,
	}
	if item.Quantity != nil {
		history.Quantity = *item.Quantity
	}
	if item.TotalPrice != nil {
		history.TotalAmount = *item.TotalPrice
	}
	if err := a.store.InsertPriceHistory(ctx, history); err != nil {
		a.log.Warn("recording price history failed",
			"product_id", localID, "error", err,
		)
	}
}

// autoUpdate applies the automatic product price update when enabled and the
// match suggested updating the existing product. Failures are logged, not
// surfaced.
func (a *Analyzer) autoUpdate(
	ctx context.Context,
	localID string,
	match domain.ProductMatch,
	analysis *domain.ItemAnalysis,
	cfg domain.AlertConfig,
) {
	if !cfg.EnableAutomaticUpdates {
		return
	}
	if match.SuggestedAction != domain.ActionUpdateExisting {
		return
	}
	if analysis.OldPrice == nil || analysis.NewPrice == *analysis.OldPrice {
		return
	}

	if err := a.store.UpdateProductPrice(ctx, localID, analysis.NewPrice, nil); err != nil {
		a.log.Warn("automatic price update failed",
			"product_id", localID, "error", err,
		)
		return
	}
	metrics.ProductsAutoUpdatedTotal.Inc()

	if match.Product.Source == domain.SourceCatalog && a.catalog != nil {
		update := catalogUpdate(analysis.NewPrice)
		if err := a.catalog.UpdateProduct(ctx, match.Product.ID, update); err != nil {
			a.log.Warn("catalog price update failed",
				"catalog_id", match.Product.ID, "error", err,
			)
		}
	}

	a.log.Info("product price updated automatically",
		"product_id", localID,
		"old_price", *analysis.OldPrice,
		"new_price", analysis.NewPrice,
	)
}

func catalogUpdate(price float64) catalog.ProductUpdate {
	return catalog.ProductUpdate{Price: &price}
}
