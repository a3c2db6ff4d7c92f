package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AlertsBySeverity returns a timeseries panel showing the rate of price
// variation alerts created, broken down by severity.
func AlertsBySeverity() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Alerts Created Rate").
		Description("Rate of price variation alerts created per second, by severity").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(facturio_alerts_created_total{job="invoice-price-alerts"}[5m])) by (severity)`,
			"{{severity}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AutoUpdates returns a stat panel showing automatic product price updates
// in the past 24 hours.
func AutoUpdates() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Auto Updates (24h)").
		Description("Product prices updated automatically in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(facturio_products_auto_updated_total{job="invoice-price-alerts"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
