package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	configRoot := &cobra.Command{
		Use:   "config",
		Short: "Manage alert thresholds",
	}

	configRoot.AddCommand(
		configShowCmd(),
		configSetCmd(),
	)

	return configRoot
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active alert thresholds",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			cfg, err := c.GetConfig(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cfg)
			}
			return printConfigDetail(cfg)
		},
	}
}

func configSetCmd() *cobra.Command {
	var (
		maxIncrease      float64
		criticalIncrease float64
		normalDiscount   float64
		anomalyDiscount  float64
		autoUpdates      bool
		priceHistory     bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update alert thresholds",
		Long: "Update the alert threshold configuration. Flags not given keep their\n" +
			"current server-side value.",
		Example: `  ipa config set --max-increase 12 --critical-increase 30
  ipa config set --auto-updates=true`,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			c := newClient()

			cfg, err := c.GetConfig(ctx)
			if err != nil {
				return err
			}

			flags := cobraCmd.Flags()
			if flags.Changed("max-increase") {
				cfg.MaxPriceIncreasePct = maxIncrease
			}
			if flags.Changed("critical-increase") {
				cfg.CriticalPriceIncreasePct = criticalIncrease
			}
			if flags.Changed("normal-discount") {
				cfg.NormalDiscountPct = normalDiscount
			}
			if flags.Changed("anomalous-discount") {
				cfg.AnomalousDiscountPct = anomalyDiscount
			}
			if flags.Changed("auto-updates") {
				cfg.EnableAutomaticUpdates = autoUpdates
			}
			if flags.Changed("price-history") {
				cfg.EnablePriceHistory = priceHistory
			}

			updated, err := c.UpdateConfig(ctx, cfg)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			return printConfigDetail(updated)
		},
	}

	cmd.Flags().Float64Var(&maxIncrease, "max-increase", 0, "price increase alert threshold (%)")
	cmd.Flags().Float64Var(&criticalIncrease, "critical-increase", 0, "critical price increase threshold (%)")
	cmd.Flags().Float64Var(&normalDiscount, "normal-discount", 0, "normal discount ceiling (%)")
	cmd.Flags().Float64Var(&anomalyDiscount, "anomalous-discount", 0, "anomalous discount threshold (%)")
	cmd.Flags().BoolVar(&autoUpdates, "auto-updates", false, "enable automatic price updates")
	cmd.Flags().BoolVar(&priceHistory, "price-history", true, "enable price history recording")

	return cmd
}
