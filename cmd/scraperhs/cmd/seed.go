package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/internal/config"
	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
	"github.com/Ivantg01/ScraperHSPrices/storage"
)

// seedCmd loads the configured allowlists into the store
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the region, service and product allowlists",
	Long: `Seed replaces the allowlist collections (regions, services and
products per provider) with the configured defaults. Scrape reads the
allowlists from the store, so run this once before the first scrape.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := config.Get()

		store, err := storage.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return err
		}
		defer store.Close(ctx)
		defer logging.Sync()

		if err := storage.SeedAllowlist(ctx, store, cfg); err != nil {
			return err
		}
		logging.Info("allowlists seeded", zap.String("database", cfg.Mongo.Database))
		return nil
	},
}
