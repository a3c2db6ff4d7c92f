package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

func testVariation() *domain.PriceVariation {
	return &domain.PriceVariation{
		ID:                  "v1",
		ProductName:         "Tornillo autorroscante 4x40",
		OldPrice:            10.0,
		NewPrice:            13.0,
		VariationPercentage: 30.0,
		VariationAmount:     3.0,
		DocumentNumber:      "FAC-2025-001",
		SupplierName:        "Suministros Norte SL",
		AlertType:           domain.AlertPriceIncrease,
		Severity:            domain.SeverityCritical,
	}
}

func TestDiscordNotifier_Notify(t *testing.T) {
	t.Parallel()

	var received discordWebhookPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))
	err := n.Notify(context.Background(), testVariation())
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	embed := received.Embeds[0]
	assert.Contains(t, embed.Title, "Tornillo autorroscante 4x40")
	assert.Equal(t, colorRed, embed.Color)

	fields := make(map[string]string, len(embed.Fields))
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	assert.Equal(t, "10.00", fields["Old Price"])
	assert.Equal(t, "13.00", fields["New Price"])
	assert.Equal(t, "+30.0%", fields["Variation"])
	assert.Equal(t, "Suministros Norte SL", fields["Supplier"])
}

func TestDiscordNotifier_DiscountAnomalyTitle(t *testing.T) {
	t.Parallel()

	v := testVariation()
	v.AlertType = domain.AlertDiscountAnomaly
	v.Severity = domain.SeverityHigh

	embed := buildEmbed(v)
	assert.Contains(t, embed.Title, "Discount Anomaly")
	assert.Equal(t, colorOrange, embed.Color)
}

func TestDiscordNotifier_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))
	err := n.Notify(context.Background(), testVariation())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestDiscordNotifier_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream error"))
	}))
	defer srv.Close()

	n := NewDiscordNotifier(srv.URL, WithHTTPClient(srv.Client()))
	err := n.Notify(context.Background(), testVariation())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSeverityColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity domain.Severity
		want     int
	}{
		{domain.SeverityCritical, colorRed},
		{domain.SeverityHigh, colorOrange},
		{domain.SeverityMedium, colorYellow},
		{domain.SeverityLow, colorGreen},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, severityColor(tt.severity), string(tt.severity))
	}
}
