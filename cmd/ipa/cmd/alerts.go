package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/facturio/invoice-price-alerts/internal/api/client"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Review price variation alerts",
		Long: "List, inspect, and process price variation alerts created by document\n" +
			"analysis. Alerts stay open until marked processed.",
	}

	alertsRoot.AddCommand(
		alertsListCmd(),
		alertsGetCmd(),
		alertsProcessCmd(),
		alertsSummaryCmd(),
	)

	return alertsRoot
}

func alertsListCmd() *cobra.Command {
	var (
		severity    string
		alertType   string
		productID   string
		includeDone bool
		limit       int
		offset      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		Example: `  ipa alerts list
  ipa alerts list --severity critical
  ipa alerts list --type discount_anomaly --include-processed
  ipa alerts list --limit 10 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			filter := apiclient.AlertFilter{
				Severity:  severity,
				AlertType: alertType,
				ProductID: productID,
				Limit:     limit,
				Offset:    offset,
			}
			if !includeDone {
				processed := false
				filter.Processed = &processed
			}

			c := newClient()
			list, err := c.ListAlerts(context.Background(), filter)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(list)
			}
			if len(list.Alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			if err := printAlertsTable(list.Alerts); err != nil {
				return err
			}
			fmt.Printf("\nShowing %d of %d alerts.\n", len(list.Alerts), list.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&severity, "severity", "", "filter by severity (low, medium, high, critical)")
	cmd.Flags().StringVar(&alertType, "type", "", "filter by alert type (price_increase, price_decrease, discount_anomaly)")
	cmd.Flags().StringVar(&productID, "product", "", "filter by product ID")
	cmd.Flags().BoolVar(&includeDone, "include-processed", false, "include processed alerts")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")

	return cmd
}

func alertsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show alert details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			alert, err := c.GetAlert(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alert)
			}
			return printAlertDetail(alert)
		},
	}
}

func alertsProcessCmd() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "process <id>",
		Short: "Mark an alert as processed",
		Example: `  ipa alerts process 3f1c...
  ipa alerts process 3f1c... --notes "verified with supplier"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.ProcessAlert(context.Background(), args[0], notes); err != nil {
				return err
			}
			fmt.Println("Alert marked as processed.")
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "review notes")

	return cmd
}

func alertsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show unprocessed alert counts by severity",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			summary, err := c.AlertsSummary(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(summary)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Critical:\t%d\n", summary.Critical)
			tw.writef("High:\t%d\n", summary.High)
			tw.writef("Medium:\t%d\n", summary.Medium)
			tw.writef("Low:\t%d\n", summary.Low)
			tw.writef("Total:\t%d\n", summary.Total)
			return tw.finish()
		},
	}
}
