package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/clouds"
	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
)

// runCmd performs a full collection pass: scrape everything, then stats
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape all providers and write today's snapshot statistics",
	Long: `Run scrapes every provider in order and then writes the snapshot
statistics for today's date code. A provider failure is logged and the
pass continues with the next one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close(ctx)
		defer logging.Sync()

		providers := rt.registry.All()

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

		dateCode := clouds.DateCode(time.Now())
		for _, p := range providers {
			summary, err := p.Stats(ctx, dateCode)
			if err != nil {
				logging.Error("stats failed", zap.String("provider", p.Name()), zap.Error(err))
				continue
			}
			logging.Info("stats summary",
				zap.String("provider", summary.Provider),
				zap.String("dateCode", summary.DateCode),
				zap.Int64("records", summary.Records),
				zap.Int64("inserted", summary.Inserted),
				zap.Int64("updated", summary.Updated),
				zap.Duration("duration", summary.Duration))
		}
		return nil
	},
}
