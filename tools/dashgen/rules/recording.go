package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "facturio-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "facturio-recording",
					Rules: []Rule{
						{
							Record: "facturio:http_requests:rate5m",
							Expr:   `sum(rate(facturio_http_requests_total[5m]))`,
						},
						{
							Record: "facturio:http_errors:rate5m",
							Expr:   `sum(rate(facturio_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "facturio:documents:rate5m",
							Expr:   `rate(facturio_documents_analyzed_total[5m])`,
						},
						{
							Record: "facturio:items:rate5m",
							Expr:   `rate(facturio_items_analyzed_total[5m])`,
						},
						{
							Record: "facturio:analysis_errors:rate5m",
							Expr:   `rate(facturio_analysis_errors_total[5m])`,
						},
						{
							Record: "facturio:catalog_api_calls:rate5m",
							Expr:   `rate(facturio_catalog_api_calls_total[5m])`,
						},
					},
				},
			},
		},
	}
}
