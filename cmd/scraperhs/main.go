// Package main is the entry point for the scraperhs CLI.
package main

import (
	"os"

	"github.com/Ivantg01/ScraperHSPrices/cmd/scraperhs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
