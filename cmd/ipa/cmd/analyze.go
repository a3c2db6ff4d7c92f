package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

// analyzeDocument mirrors the API request body: document provenance plus the
// extracted line items.
type analyzeDocument struct {
	DocumentInfo domain.DocumentInfo `json:"document_info"`
	Items        []domain.LineItem   `json:"items"`
}

func analyzeCmd() *cobra.Command {
	var (
		docNumber string
		docDate   string
		supplier  string
	)

	cmd := &cobra.Command{
		Use:   "analyze <file.json>",
		Short: "Analyze a digitized document",
		Long: "Submit a digitized document for price variation analysis. The file is a\n" +
			"JSON document with document_info and items, as produced by the\n" +
			"digitization pipeline. Flags override the file's document_info fields.",
		Example: `  ipa analyze invoice.json
  ipa analyze albaran.json --supplier "Suministros Norte SL"
  ipa analyze invoice.json --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading document file: %w", err)
			}

			var doc analyzeDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parsing document file: %w", err)
			}

			if docNumber != "" {
				doc.DocumentInfo.DocumentNumber = docNumber
			}
			if docDate != "" {
				doc.DocumentInfo.DocumentDate = docDate
			}
			if supplier != "" {
				doc.DocumentInfo.SupplierName = supplier
			}

			if len(doc.Items) == 0 {
				return fmt.Errorf("document file has no items")
			}

			c := newClient()
			result, err := c.AnalyzeDocument(context.Background(), doc.DocumentInfo, doc.Items)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			return printBatchResult(result)
		},
	}

	cmd.Flags().StringVar(&docNumber, "number", "", "document number override")
	cmd.Flags().StringVar(&docDate, "date", "", "document date override (YYYY-MM-DD)")
	cmd.Flags().StringVar(&supplier, "supplier", "", "supplier name override")

	return cmd
}
