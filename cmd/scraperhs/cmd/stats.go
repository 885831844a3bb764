package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/clouds"
	"github.com/Ivantg01/ScraperHSPrices/internal/errors"
	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
)

var statsDate string

// statsCmd derives dated snapshot rows from the stored prices
var statsCmd = &cobra.Command{
	Use:   "stats [provider...]",
	Short: "Write dated snapshot statistics for the stored prices",
	Long: `Stats pages through each selected provider's price collection and
upserts one snapshot row per record, keyed by date code and natural
key. Re-running for the same date replaces the rows instead of
duplicating them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateCode := statsDate
		if dateCode == "" {
			dateCode = clouds.DateCode(time.Now())
		} else if _, err := time.Parse("20060102", dateCode); err != nil {
			return errors.Newf(errors.TypeConfig, "invalid date code %q, want YYYYMMDD", dateCode)
		}

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

func init() {
	statsCmd.Flags().StringVar(&statsDate, "date", "", "snapshot date code (YYYYMMDD, default today)")
}
