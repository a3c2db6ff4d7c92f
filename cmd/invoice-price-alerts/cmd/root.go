// Package cmd implements the CLI commands for the invoice-price-alerts server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "invoice-price-alerts",
	Short: "Price variation analysis for digitized supplier documents",
	Long: "A service that matches line items from digitized invoices and delivery\n" +
		"notes against the product catalogs, classifies price variations against\n" +
		"configured thresholds, and persists alerts for review.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
