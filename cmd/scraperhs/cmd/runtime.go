package cmd

import (
	"context"
	"time"

	"github.com/Ivantg01/ScraperHSPrices/clouds"
	"github.com/Ivantg01/ScraperHSPrices/clouds/amazon"
	"github.com/Ivantg01/ScraperHSPrices/clouds/azure"
	"github.com/Ivantg01/ScraperHSPrices/clouds/google"
	"github.com/Ivantg01/ScraperHSPrices/clouds/oracle"
	"github.com/Ivantg01/ScraperHSPrices/internal/config"
	"github.com/Ivantg01/ScraperHSPrices/internal/errors"
	"github.com/Ivantg01/ScraperHSPrices/internal/fetch"
	"github.com/Ivantg01/ScraperHSPrices/storage"
)

// runtime wires the store, the retry client and the provider registry
// for one command invocation
type runtime struct {
	cfg      *config.Config
	store    storage.Store
	registry *clouds.Registry
}

// newRuntime connects the store, loads the allowlist and registers the
// providers in run order
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg := config.Get()

	store, err := storage.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return nil, err
	}

	allow, err := storage.LoadAllowlist(ctx, store, cfg)
	if err != nil {
		store.Close(ctx)
		return nil, err
	}

	client := fetch.NewClient(cfg.Fetch.MaxAttempts,
		time.Duration(cfg.Fetch.AttemptTimeoutSeconds)*time.Second)

	registry := clouds.NewRegistry()
	registry.Register(amazon.New(store, client, cfg, allow))
	registry.Register(azure.New(store, client, cfg, allow))
	registry.Register(google.New(store, client, cfg, allow))
	registry.Register(oracle.New(store, client, cfg))

	return &runtime{cfg: cfg, store: store, registry: registry}, nil
}

// close releases the store connection
func (r *runtime) close(ctx context.Context) {
	_ = r.store.Close(ctx)
}

// selectProviders resolves command arguments to providers, all of them
// when no names are given
func (r *runtime) selectProviders(names []string) ([]clouds.Provider, error) {
	if len(names) == 0 {
		return r.registry.All(), nil
	}
	providers := make([]clouds.Provider, 0, len(names))
	for _, name := range names {
		p, ok := r.registry.Get(name)
		if !ok {
			return nil, errors.Newf(errors.TypeConfig, "unknown provider %q", name)
		}
		providers = append(providers, p)
	}
	return providers, nil
}
