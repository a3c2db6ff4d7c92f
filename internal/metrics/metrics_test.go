package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, DocumentsAnalyzedTotal)
	assert.NotNil(t, ItemsAnalyzedTotal)
	assert.NotNil(t, AnalysisErrorsTotal)
	assert.NotNil(t, AnalysisDuration)
	assert.NotNil(t, MatchConfidence)
	assert.NotNil(t, AlertsCreatedTotal)
	assert.NotNil(t, ProductsAutoUpdatedTotal)
	assert.NotNil(t, CatalogAPICallsTotal)
	assert.NotNil(t, CatalogErrorsTotal)
	assert.NotNil(t, CatalogDailyUsage)
	assert.NotNil(t, CatalogQuotaHits)
	assert.NotNil(t, CatalogSnapshotSize)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, JobRunsTotal)
	assert.NotNil(t, JobDuration)
}
