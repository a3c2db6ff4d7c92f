package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAlertsTable(alerts []domain.PriceVariation) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tPRODUCT\tOLD\tNEW\tVAR%%\tTYPE\tSEVERITY\tSUPPLIER\tPROCESSED\n")
	for i := range alerts {
		a := &alerts[i]
		tw.writef("%s\t%s\t%.2f\t%.2f\t%+.1f%%\t%s\t%s\t%s\t%v\n",
			a.ID,
			truncate(a.ProductName, 36),
			a.OldPrice,
			a.NewPrice,
			a.VariationPercentage,
			a.AlertType,
			a.Severity,
			truncate(a.SupplierName, 24),
			a.IsProcessed,
		)
	}
	return tw.finish()
}

func printAlertDetail(a *domain.PriceVariation) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Product:\t%s\n", a.ProductName)
	if a.ProductSKU != "" {
		tw.writef("SKU:\t%s\n", a.ProductSKU)
	}
	tw.writef("Old Price:\t%.2f\n", a.OldPrice)
	tw.writef("New Price:\t%.2f\n", a.NewPrice)
	tw.writef("Variation:\t%+.2f%% (%+.2f)\n", a.VariationPercentage, a.VariationAmount)
	tw.writef("Type:\t%s\n", a.AlertType)
	tw.writef("Severity:\t%s\n", a.Severity)
	tw.writef("Document:\t%s (%s)\n", a.DocumentNumber, a.DocumentDate)
	tw.writef("Supplier:\t%s\n", a.SupplierName)
	tw.writef("Processed:\t%v\n", a.IsProcessed)
	if a.Notes != "" {
		tw.writef("Notes:\t%s\n", a.Notes)
	}
	tw.writef("Created:\t%s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printProductsTable(products []domain.ProductRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tSKU\tPRICE\n")
	for i := range products {
		tw.writef("%s\t%s\t%s\t%.2f\n",
			products[i].ID,
			truncate(products[i].Name, 48),
			products[i].SKU,
			products[i].Price,
		)
	}
	return tw.finish()
}

func printHistoryTable(history []domain.PriceHistory) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("DATE\tPRICE\tQTY\tTOTAL\tDOCUMENT\tSUPPLIER\n")
	for i := range history {
		h := &history[i]
		tw.writef("%s\t%.2f\t%.1f\t%.2f\t%s\t%s\n",
			h.DocumentDate,
			h.Price,
			h.Quantity,
			h.TotalAmount,
			h.DocumentNumber,
			truncate(h.SupplierName, 24),
		)
	}
	return tw.finish()
}

func printBatchResult(result *domain.BatchResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Document:\t%s (%s)\n", result.DocumentInfo.DocumentNumber, result.DocumentInfo.DocumentDate)
	tw.writef("Supplier:\t%s\n", result.DocumentInfo.SupplierName)
	tw.writef("Items:\t%d\n", len(result.Analyses))
	tw.writef("Alerts:\t%d (critical %d, high %d, medium %d, low %d)\n",
		result.AlertCounts.Total,
		result.AlertCounts.Critical,
		result.AlertCounts.High,
		result.AlertCounts.Medium,
		result.AlertCounts.Low,
	)
	if err := tw.finish(); err != nil {
		return err
	}

	fmt.Println()

	tw = newTabWriter(os.Stdout)
	tw.writef("#\tITEM\tMATCH\tOLD\tNEW\tVAR%%\tTYPE\tSEVERITY\n")
	for i := range result.Analyses {
		a := &result.Analyses[i]

		name := a.Item.Description
		if name == "" {
			name = a.Item.SKU
		}

		matched := "-"
		if a.Match != nil && a.Match.Product != nil {
			matched = fmt.Sprintf("%s (%.0f%%)", a.Match.MatchType, a.Match.Confidence*100)
		}

		oldPrice := "-"
		if a.OldPrice != nil {
			oldPrice = fmt.Sprintf("%.2f", *a.OldPrice)
		}

		varPct := "-"
		if a.VariationPct != nil {
			varPct = fmt.Sprintf("%+.1f%%", *a.VariationPct)
		}

		if a.Error != "" {
			tw.writef("%d\t%s\terror: %s\n", a.Index, truncate(name, 36), truncate(a.Error, 48))
			continue
		}

		tw.writef("%d\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
			a.Index,
			truncate(name, 36),
			matched,
			oldPrice,
			a.NewPrice,
			varPct,
			a.AlertType,
			a.Severity,
		)
	}
	return tw.finish()
}

func printConfigDetail(cfg *domain.AlertConfig) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Max Price Increase:\t%.1f%%\n", cfg.MaxPriceIncreasePct)
	tw.writef("Critical Price Increase:\t%.1f%%\n", cfg.CriticalPriceIncreasePct)
	tw.writef("Normal Discount:\t%.1f%%\n", cfg.NormalDiscountPct)
	tw.writef("Anomalous Discount:\t%.1f%%\n", cfg.AnomalousDiscountPct)
	tw.writef("Automatic Updates:\t%v\n", cfg.EnableAutomaticUpdates)
	tw.writef("Price History:\t%v\n", cfg.EnablePriceHistory)
	if !cfg.UpdatedAt.IsZero() {
		tw.writef("Updated:\t%s\n", cfg.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		errText := truncate(r.ErrorText, 40)
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			errText,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
