package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// invoice-price-alerts operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "facturio-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "facturio-alerts",
					Rules: []Rule{
						{
							Alert: "FacturioDown",
							Expr:  `absent(up{job="invoice-price-alerts"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Invoice price alerts service is down",
								"description": "The invoice-price-alerts job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "FacturioReadinessDown",
							Expr:  `facturio_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Invoice price alerts readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "FacturioHighErrorRate",
							Expr:  `facturio:http_errors:rate5m / facturio:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on invoice price alerts",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "FacturioAnalysisErrors",
							Expr:  `facturio:analysis_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Per-item analysis errors are elevated",
								"description": "Line item analysis errors are occurring at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "FacturioCatalogQuotaHigh",
							Expr:  `facturio_catalog_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog API daily usage is above 80% of the quota",
								"description": "Daily catalog API usage has exceeded 4000 calls (quota is 5000).",
							},
						},
						{
							Alert: "FacturioCatalogQuotaReached",
							Expr:  `increase(facturio_catalog_quota_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Catalog API daily quota has been reached",
								"description": "The ERP catalog API daily quota has been exhausted. Matching degrades to local products until reset.",
							},
						},
						{
							Alert: "FacturioJobFailures",
							Expr:  `increase(facturio_job_runs_total{status="error"}[15m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Scheduled job failures detected",
								"description": "One or more scheduled jobs (catalog refresh, config reload) have failed in the last 15 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
