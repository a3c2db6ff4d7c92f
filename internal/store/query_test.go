package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

func sevPtr(s domain.Severity) *domain.Severity   { return &s }
func typPtr(t domain.AlertType) *domain.AlertType { return &t }
func strPtr(s string) *string                     { return &s }
func boolPtr(b bool) *bool                        { return &b }

func TestVariationQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     VariationQuery
		wantData  string
		wantCount string
		wantArgs  []any
	}{
		{
			name:      "no filters uses defaults",
			query:     VariationQuery{},
			wantData:  baseVariationsSelect + " ORDER BY created_at DESC LIMIT 50 OFFSET 0",
			wantCount: countVariationsSelect,
			wantArgs:  nil,
		},
		{
			name:      "severity filter",
			query:     VariationQuery{Severity: sevPtr(domain.SeverityCritical)},
			wantData:  baseVariationsSelect + " WHERE severity = $1 ORDER BY created_at DESC LIMIT 50 OFFSET 0",
			wantCount: countVariationsSelect + " WHERE severity = $1",
			wantArgs:  []any{"critical"},
		},
		{
			name: "all filters numbered in order",
			query: VariationQuery{
				Severity:  sevPtr(domain.SeverityHigh),
				AlertType: typPtr(domain.AlertDiscountAnomaly),
				ProductID: strPtr("5f2b3a1c-0000-0000-0000-000000000001"),
				Processed: boolPtr(false),
				Limit:     20,
				Offset:    40,
			},
			wantData: baseVariationsSelect +
				" WHERE severity = $1 AND alert_type = $2 AND product_id = $3 AND is_processed = $4" +
				" ORDER BY created_at DESC LIMIT 20 OFFSET 40",
			wantCount: countVariationsSelect +
				" WHERE severity = $1 AND alert_type = $2 AND product_id = $3 AND is_processed = $4",
			wantArgs: []any{"high", "discount_anomaly", "5f2b3a1c-0000-0000-0000-000000000001", false},
		},
		{
			name:      "limit clamped to max",
			query:     VariationQuery{Limit: 10000},
			wantData:  baseVariationsSelect + " ORDER BY created_at DESC LIMIT 500 OFFSET 0",
			wantCount: countVariationsSelect,
			wantArgs:  nil,
		},
		{
			name:      "negative offset clamped to zero",
			query:     VariationQuery{Offset: -5},
			wantData:  baseVariationsSelect + " ORDER BY created_at DESC LIMIT 50 OFFSET 0",
			wantCount: countVariationsSelect,
			wantArgs:  nil,
		},
		{
			name:      "processed filter alone gets first placeholder",
			query:     VariationQuery{Processed: boolPtr(true)},
			wantData:  baseVariationsSelect + " WHERE is_processed = $1 ORDER BY created_at DESC LIMIT 50 OFFSET 0",
			wantCount: countVariationsSelect + " WHERE is_processed = $1",
			wantArgs:  []any{true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL()
			assert.Equal(t, tt.wantData, dataSQL)
			assert.Equal(t, tt.wantCount, countSQL)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
