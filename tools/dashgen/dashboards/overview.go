// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/facturio/invoice-price-alerts/tools/dashgen/panels"
)

// BuildOverview constructs the Facturio Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Facturio Overview").
		Uid("facturio-overview").
		Tags([]string{"facturio", "invoice-price-alerts"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Catalog API.
	b.WithRow(dashboard.NewRowBuilder("Catalog API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.QuotaHits()).
		WithPanel(panels.SnapshotSize()))

	// Row 4: Analysis.
	b.WithRow(dashboard.NewRowBuilder("Analysis").
		WithPanel(panels.DocumentsRate()).
		WithPanel(panels.ItemsRate()).
		WithPanel(panels.AnalysisErrors()).
		WithPanel(panels.AnalysisDuration()))

	// Row 5: Matching.
	b.WithRow(dashboard.NewRowBuilder("Matching").
		WithPanel(panels.MatchConfidenceDistribution()))

	// Row 6: Alerts.
	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsBySeverity()).
		WithPanel(panels.AutoUpdates()))

	// Row 7: Jobs.
	b.WithRow(dashboard.NewRowBuilder("Jobs").
		WithPanel(panels.JobRuns()).
		WithPanel(panels.JobDuration()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
