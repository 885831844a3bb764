package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
)

// scrapeCmd fetches the current catalogs of the selected providers
var scrapeCmd = &cobra.Command{
	Use:   "scrape [provider...]",
	Short: "Scrape provider price catalogs into the store",
	Long: `Scrape fetches the current price catalog of each selected provider
(amazon, azure, google, oracle), canonicalizes and filters the records
and upserts them by natural key. Without arguments all providers run,
in order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close(ctx)
		defer logging.Sync()

		providers, err := rt.selectProviders(args)
		if err != nil {
			return err
		}

		for _, p := range providers {
			summary, err := p.Scrape(ctx)
			if err != nil {
				logging.Error("scrape failed", zap.String("provider", p.Name()), zap.Error(err))
				continue
			}
			logging.Info("scrape summary",
				zap.String("provider", summary.Provider),
				zap.String("runId", summary.RunID),
				zap.Int64("fetched", summary.Fetched),
				zap.Int64("kept", summary.Kept),
				zap.Int64("inserted", summary.Inserted),
				zap.Int64("updated", summary.Updated),
				zap.Int64("parseDropped", summary.ParseDropped),
				zap.Duration("duration", summary.Duration))
		}
		return nil
	},
}
