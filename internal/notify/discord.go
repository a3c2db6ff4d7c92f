package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

const (
	colorRed    = 0xE74C3C // critical
	colorOrange = 0xE67E22 // high
	colorYellow = 0xF1C40F // medium
	colorGreen  = 0x2ECC71 // low
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Notify sends a price variation alert as a Discord embed.
func (d *DiscordNotifier) Notify(ctx context.Context, v *domain.PriceVariation) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(v)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(v *domain.PriceVariation) discordEmbed {
	title := fmt.Sprintf("Price Alert: %s", v.ProductName)
	if v.AlertType == domain.AlertDiscountAnomaly {
		title = fmt.Sprintf("Discount Anomaly: %s", v.ProductName)
	}

	return discordEmbed{
		Title: title,
		Color: severityColor(v.Severity),
		Fields: []discordEmbedField{
			{Name: "Old Price", Value: fmt.Sprintf("%.2f", v.OldPrice), Inline: true},
			{Name: "New Price", Value: fmt.Sprintf("%.2f", v.NewPrice), Inline: true},
			{Name: "Variation", Value: fmt.Sprintf("%+.1f%%", v.VariationPercentage), Inline: true},
			{Name: "Severity", Value: string(v.Severity), Inline: true},
			{Name: "Supplier", Value: v.SupplierName, Inline: true},
			{Name: "Document", Value: v.DocumentNumber, Inline: true},
		},
	}
}

func severityColor(s domain.Severity) int {
	switch s {
	case domain.SeverityCritical:
		return colorRed
	case domain.SeverityHigh:
		return colorOrange
	case domain.SeverityMedium:
		return colorYellow
	default:
		return colorGreen
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
