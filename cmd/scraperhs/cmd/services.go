package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/clouds/google"
	"github.com/Ivantg01/ScraperHSPrices/internal/errors"
	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
)

// servicesCmd lists the Google billing services to a dated JSON file
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Download the Google billing services listing",
	Long: `Services fetches the complete Google Cloud billing services listing
and saves it as a dated JSON file under the download directory. Use it
to find service ids for the google allowlist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close(ctx)
		defer logging.Sync()

		p, ok := rt.registry.Get("google")
		if !ok {
			return errors.New(errors.TypeInternal, "google provider not registered")
		}
		gp, ok := p.(*google.Provider)
		if !ok {
			return errors.New(errors.TypeInternal, "google provider has unexpected type")
		}

		count, filename, err := gp.ScrapeServiceNames(ctx)
		if err != nil {
			return err
		}
		logging.Info("services listing saved",
			zap.Int("services", count), zap.String("file", filename))
		return nil
	},
}
