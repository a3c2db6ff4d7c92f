package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
)

// MatchConfidenceDistribution returns a bar gauge panel showing the
// distribution of product match confidence scores across histogram buckets.
func MatchConfidenceDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Match Confidence Distribution").
		Description("Distribution of product match confidence scores (0-1)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(facturio_match_confidence_bucket{job="invoice-price-alerts"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
