package storage

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/internal/config"
	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
)

// Allowlist holds the seeded region/service/product filters the
// scrapers walk. It is loaded once at run start and treated as
// immutable for the whole run.
type Allowlist struct {
	AmazonRegions  []config.Region
	AmazonServices []config.AmazonService
	AzureRegions   []config.Region
	AzureProducts  []config.AzureProduct
	GoogleRegions  []config.Region
	GoogleServices []config.GoogleService
}

// SeedAllowlist drops and re-inserts the allowlist collections from
// the configured defaults
func SeedAllowlist(ctx context.Context, store Store, cfg *config.Config) error {
	seeds := []struct {
		collection string
		docs       []interface{}
	}{
		{AmazonRegions, toDocs(cfg.Amazon.Regions)},
		{AmazonServices, toDocs(cfg.Amazon.Services)},
		{AzureRegions, toDocs(cfg.Azure.Regions)},
		{AzureProducts, toDocs(cfg.Azure.Products)},
		{GoogleRegions, toDocs(cfg.Google.Regions)},
		{GoogleServices, toDocs(cfg.Google.Services)},
	}

	for _, s := range seeds {
		n, err := store.ReplaceAll(ctx, s.collection, s.docs)
		if err != nil {
			return err
		}
		logging.Info("allowlist seeded",
			zap.String("collection", s.collection),
			zap.Int64("documents", n))
	}
	return nil
}

// LoadAllowlist reads the allowlist collections from the store. A
// collection that was never seeded falls back to the configured
// defaults so a fresh database still scrapes something sensible.
func LoadAllowlist(ctx context.Context, store Store, cfg *config.Config) (*Allowlist, error) {
	a := &Allowlist{}

	if err := store.FindAll(ctx, AmazonRegions, &a.AmazonRegions); err != nil {
		return nil, err
	}
	if err := store.FindAll(ctx, AmazonServices, &a.AmazonServices); err != nil {
		return nil, err
	}
	if err := store.FindAll(ctx, AzureRegions, &a.AzureRegions); err != nil {
		return nil, err
	}
	if err := store.FindAll(ctx, AzureProducts, &a.AzureProducts); err != nil {
		return nil, err
	}
	if err := store.FindAll(ctx, GoogleRegions, &a.GoogleRegions); err != nil {
		return nil, err
	}
	if err := store.FindAll(ctx, GoogleServices, &a.GoogleServices); err != nil {
		return nil, err
	}

	if len(a.AmazonRegions) == 0 {
		a.AmazonRegions = cfg.Amazon.Regions
	}
	if len(a.AmazonServices) == 0 {
		a.AmazonServices = cfg.Amazon.Services
	}
	if len(a.AzureRegions) == 0 {
		a.AzureRegions = cfg.Azure.Regions
	}
	if len(a.AzureProducts) == 0 {
		a.AzureProducts = cfg.Azure.Products
	}
	if len(a.GoogleRegions) == 0 {
		a.GoogleRegions = cfg.Google.Regions
	}
	if len(a.GoogleServices) == 0 {
		a.GoogleServices = cfg.Google.Services
	}

	logging.Info("allowlist loaded",
		zap.Int("amazonRegions", len(a.AmazonRegions)),
		zap.Int("amazonServices", len(a.AmazonServices)),
		zap.Int("azureRegions", len(a.AzureRegions)),
		zap.Int("azureProducts", len(a.AzureProducts)),
		zap.Int("googleRegions", len(a.GoogleRegions)),
		zap.Int("googleServices", len(a.GoogleServices)))
	return a, nil
}

func toDocs[T any](in []T) []interface{} {
	docs := make([]interface{}, len(in))
	for i := range in {
		docs[i] = in[i]
	}
	return docs
}
