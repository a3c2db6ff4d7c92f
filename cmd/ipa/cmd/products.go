package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Query the local product store",
	}

	productsRoot.AddCommand(
		productsSearchCmd(),
		productsGetCmd(),
		productsHistoryCmd(),
	)

	return productsRoot
}

func productsSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search products by name or SKU",
		Example: `  ipa products search tornillo
  ipa products search TRN-440 --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			products, err := c.SearchProducts(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(products)
			}
			if len(products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			return printProductsTable(products)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of results")

	return cmd
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show product details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("ID:\t%s\n", p.ID)
			tw.writef("Name:\t%s\n", p.Name)
			if p.SKU != "" {
				tw.writef("SKU:\t%s\n", p.SKU)
			}
			tw.writef("Price:\t%.2f\n", p.Price)
			if p.Cost != nil {
				tw.writef("Cost:\t%.2f\n", *p.Cost)
			}
			tw.writef("Updated:\t%s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
			return tw.finish()
		},
	}
}

func productsHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show product price history",
		Example: `  ipa products history 3f1c...
  ipa products history 3f1c... --limit 10 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			history, err := c.GetPriceHistory(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(history)
			}
			if len(history) == 0 {
				fmt.Println("No price history found.")
				return nil
			}
			return printHistoryTable(history)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of entries")

	return cmd
}
