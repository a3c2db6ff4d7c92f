// Package main is the entry point for the invoice-price-alerts server.
package main

import (
	"os"

	"github.com/facturio/invoice-price-alerts/cmd/invoice-price-alerts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
