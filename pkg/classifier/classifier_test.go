package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

func f(v float64) *float64 { return &v }

func TestClassify_NoPriorPrice(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultAlertConfig()

	for name, oldPrice := range map[string]*float64{
		"nil old price":  nil,
		"zero old price": f(0),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := Classify(oldPrice, 50, nil, cfg)

			assert.Equal(t, domain.AlertNormal, r.AlertType)
			assert.Equal(t, domain.SeverityLow, r.Severity)
			assert.False(t, r.HasPrior)
			assert.False(t, r.HasVariation())
			assert.Zero(t, r.VariationPct)
			assert.Zero(t, r.VariationAmount)
		})
	}
}

func TestClassify_PriceIncrease(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultAlertConfig()

	tests := []struct {
		name     string
		newPrice float64
		wantSev  domain.Severity
		wantPct  float64
	}{
		{"below max threshold", 108, domain.SeverityMedium, 8},
		{"exactly at max threshold", 110, domain.SeverityMedium, 10},
		{"between max and critical", 120, domain.SeverityHigh, 20},
		{"exactly at critical threshold", 125, domain.SeverityHigh, 25},
		{"above critical threshold", 130, domain.SeverityCritical, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := Classify(f(100), tt.newPrice, nil, cfg)

			assert.Equal(t, domain.AlertPriceIncrease, r.AlertType)
			assert.Equal(t, tt.wantSev, r.Severity)
			assert.InDelta(t, tt.wantPct, r.VariationPct, 1e-9)
			assert.True(t, r.HasVariation())
		})
	}
}

func TestClassify_SeverityMonotonicity(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultAlertConfig()

	prevRank := 0
	for newPrice := 101.0; newPrice <= 160; newPrice++ {
		r := Classify(f(100), newPrice, nil, cfg)
		rank := r.Severity.Rank()
		assert.GreaterOrEqual(t, rank, prevRank,
			"severity regressed at newPrice=%v", newPrice)
		prevRank = rank
	}
}

func TestClassify_PriceDecrease(t *testing.T) {
	t.Parallel()

	r := Classify(f(100), 95, nil, domain.DefaultAlertConfig())

	assert.Equal(t, domain.AlertPriceDecrease, r.AlertType)
	assert.Equal(t, domain.SeverityLow, r.Severity)
	assert.InDelta(t, -5.0, r.VariationPct, 1e-9)
	assert.InDelta(t, -5.0, r.VariationAmount, 1e-9)
	assert.True(t, r.HasVariation())
}

func TestClassify_Unchanged(t *testing.T) {
	t.Parallel()

	r := Classify(f(100), 100, nil, domain.DefaultAlertConfig())

	assert.Equal(t, domain.AlertNormal, r.AlertType)
	assert.Equal(t, domain.SeverityLow, r.Severity)
	assert.False(t, r.HasVariation())
}

func TestClassify_DiscountBanding(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultAlertConfig()

	tests := []struct {
		name     string
		discount float64
		wantType domain.AlertType
		wantSev  domain.Severity
	}{
		{"within normal band", 10, domain.AlertPriceDecrease, domain.SeverityLow},
		{"exactly normal bound", 15, domain.AlertPriceDecrease, domain.SeverityLow},
		{"anomalous band", 20, domain.AlertDiscountAnomaly, domain.SeverityMedium},
		{"exactly anomalous bound", 60, domain.AlertDiscountAnomaly, domain.SeverityMedium},
		{"above anomalous bound", 61, domain.AlertDiscountAnomaly, domain.SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := Classify(f(100), 90, f(tt.discount), cfg)

			assert.Equal(t, tt.wantType, r.AlertType)
			assert.Equal(t, tt.wantSev, r.Severity)
		})
	}
}

func TestClassify_SmallDiscountDoesNotSuppressIncrease(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultAlertConfig()

	// 5% discount is unremarkable, the 30% increase still classifies critical.
	r := Classify(f(100), 130, f(5), cfg)

	assert.Equal(t, domain.AlertPriceIncrease, r.AlertType)
	assert.Equal(t, domain.SeverityCritical, r.Severity)
}

func TestClassify_DiscountAnomalyKeepsVariationFields(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultAlertConfig()

	r := Classify(f(100), 90, f(20), cfg)

	assert.Equal(t, domain.AlertDiscountAnomaly, r.AlertType)
	assert.True(t, r.HasPrior)
	assert.InDelta(t, -10.0, r.VariationPct, 1e-9)
	assert.InDelta(t, -10.0, r.VariationAmount, 1e-9)
}

func TestClassify_ZeroDiscountIgnored(t *testing.T) {
	t.Parallel()

	r := Classify(f(100), 108, f(0), domain.DefaultAlertConfig())

	assert.Equal(t, domain.AlertPriceIncrease, r.AlertType)
	assert.Equal(t, domain.SeverityMedium, r.Severity)
}
