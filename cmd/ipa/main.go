// Package main is the entry point for the ipa CLI.
package main

import (
	"github.com/facturio/invoice-price-alerts/cmd/ipa/cmd"
)

func main() {
	cmd.Execute()
}
