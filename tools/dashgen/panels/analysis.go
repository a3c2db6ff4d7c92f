package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DocumentsRate returns a timeseries panel showing documents analyzed per minute.
func DocumentsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Documents / min").
		Description("Rate of documents analyzed per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`facturio:documents:rate5m * 60`, "documents/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ItemsRate returns a timeseries panel showing line items analyzed per minute.
func ItemsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Line Items / min").
		Description("Rate of line items analyzed per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`facturio:items:rate5m * 60`, "items/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AnalysisErrors returns a timeseries panel showing analysis errors per minute.
func AnalysisErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Errors / min").
		Description("Rate of per-item analysis errors per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`facturio:analysis_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AnalysisDuration returns a timeseries panel showing the p95 document
// analysis duration.
func AnalysisDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Analysis Duration (p95)").
		Description("95th percentile document analysis duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(facturio_analysis_duration_seconds_bucket{job="invoice-price-alerts"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
