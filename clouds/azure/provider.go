package azure

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/clouds"
	"github.com/Ivantg01/ScraperHSPrices/internal/artifact"
	"github.com/Ivantg01/ScraperHSPrices/internal/config"
	"github.com/Ivantg01/ScraperHSPrices/internal/errors"
	"github.com/Ivantg01/ScraperHSPrices/internal/fetch"
	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
	"github.com/Ivantg01/ScraperHSPrices/storage"
)

const (
	retailBaseURL = "https://prices.azure.com"

	// nextPageHost is how the API spells itself in NextPageLink;
	// rewritten when a simulator answers instead
	nextPageHost = "https://prices.azure.com:443"
)

// Provider scrapes the Azure retail prices API
type Provider struct {
	store  storage.Store
	client *fetch.Client
	cfg    *config.Config
	allow  *storage.Allowlist
	log    *zap.Logger
}

// New creates the Azure provider
func New(store storage.Store, client *fetch.Client, cfg *config.Config, allow *storage.Allowlist) *Provider {
	return &Provider{
		store:  store,
		client: client,
		cfg:    cfg,
		allow:  allow,
		log:    logging.Logger.Named("azure"),
	}
}

// Name returns the provider key
func (p *Provider) Name() string { return "azure" }

func (p *Provider) baseURL() string {
	if p.cfg.Simulator.Enabled {
		return p.cfg.Simulator.BaseURL()
	}
	return retailBaseURL
}

func (p *Provider) regionSet() map[string]bool {
	regions := make(map[string]bool, len(p.allow.AzureRegions))
	for _, r := range p.allow.AzureRegions {
		regions[r.Name] = true
	}
	return regions
}

// Scrape fetches each active product's sku pages and upserts the kept
// records. One failing product does not stop the others.
func (p *Provider) Scrape(ctx context.Context) (*clouds.ScrapeSummary, error) {
	summary := &clouds.ScrapeSummary{Provider: p.Name(), RunID: clouds.NewRunID()}
	start := time.Now()
	regions := p.regionSet()

	for _, product := range p.allow.AzureProducts {
		if !product.Active {
			continue
		}
		p.log.Info("scraping product", zap.String("product", product.ProductName))

		skus, err := p.fetchProductSkus(ctx, product.ProductID)
		if err != nil {
			// keep whatever pages arrived before the failure
			p.log.Error("product fetch truncated",
				zap.String("product", product.ProductName),
				zap.Int("items", len(skus)),
				zap.Error(err))
		}
		summary.Fetched += int64(len(skus))

		docs := make([]storage.KeyedDoc, 0, len(skus))
		for _, sku := range skus {
			record := canonicalize(sku)
			if !keep(record, regions) {
				continue
			}
			record.SearchCode = searchCode(record)
			record.SkuID = uniqueSkuID(record)
			docs = append(docs, storage.KeyedDoc{
				Key: bson.D{{Key: "skuId", Value: record.SkuID}},
				Doc: record,
			})
		}
		summary.Kept += int64(len(docs))

		res, err := p.store.BulkUpsert(ctx, storage.AzurePrices, docs)
		if err != nil {
			return summary, err
		}
		summary.Inserted += res.Inserted
		summary.Updated += res.Updated
	}

	summary.Duration = time.Since(start)
	p.log.Info("scrape finished",
		zap.String("runId", summary.RunID),
		zap.Int64("fetched", summary.Fetched),
		zap.Int64("kept", summary.Kept),
		zap.Int64("inserted", summary.Inserted),
		zap.Int64("updated", summary.Updated),
		zap.Duration("duration", summary.Duration))
	return summary, nil
}

// fetchProductSkus follows NextPageLink until the API stops handing
// one back. A failing page stops the pagination but the items of the
// pages before it are returned alongside the error.
func (p *Provider) fetchProductSkus(ctx context.Context, productID string) ([]apiSku, error) {
	url := p.baseURL() + "/api/retail/prices?$filter=productId%20eq%20%27" + productID + "%27"
	var all []apiSku

	for page := 1; url != ""; page++ {
		data, err := p.client.GetBytes(ctx, url)
		if err != nil {
			return all, err
		}

		var resp apiPage
		if err := json.Unmarshal(data, &resp); err != nil {
			return all, errors.Parsing("decoding retail prices page", err)
		}
		p.log.Debug("page fetched", zap.String("url", url), zap.Int("items", len(resp.Items)))

		if p.cfg.StoreFetchContent {
			name := artifact.Path(p.cfg.DownloadDir+"/azure", "azure_"+productID, "json", time.Now(), page)
			artifact.Save(name, data)
		}

		all = append(all, resp.Items...)
		url = resp.NextPageLink
		if p.cfg.Simulator.Enabled {
			url = strings.Replace(url, nextPageHost, p.cfg.Simulator.BaseURL(), 1)
		}
	}
	return all, nil
}

// canonicalize flattens one API item into a price record
func canonicalize(sku apiSku) PriceRecord {
	started, _ := time.Parse(time.RFC3339, sku.EffectiveStartDate)
	return PriceRecord{
		CurrencyCode:         sku.CurrencyCode,
		TierMinimumUnits:     sku.TierMinimumUnits,
		ReservationTerm:      sku.ReservationTerm,
		Price:                sku.UnitPrice,
		ArmRegionName:        sku.ArmRegionName,
		Location:             sku.Location,
		EffectiveStartDate:   started,
		MeterID:              sku.MeterID,
		MeterName:            sku.MeterName,
		ProductID:            sku.ProductID,
		SkuID:                sku.SkuID,
		ProductName:          sku.ProductName,
		SkuName:              sku.SkuName,
		ServiceName:          sku.ServiceName,
		ServiceID:            sku.ServiceID,
		ServiceFamily:        sku.ServiceFamily,
		UnitOfMeasure:        sku.UnitOfMeasure,
		Type:                 sku.Type,
		IsPrimaryMeterRegion: sku.IsPrimaryMeterRegion,
		ArmSkuName:           sku.ArmSkuName,
	}
}

// Stats derives the dated snapshot rows, keyed by (dateCode, skuId)
func (p *Provider) Stats(ctx context.Context, dateCode string) (*clouds.StatsSummary, error) {
	start := time.Now()

	records, result, err := clouds.Snapshot(ctx, p.store, storage.AzurePrices, storage.AzurePriceStats,
		func(r PriceRecord) storage.KeyedDoc {
			return storage.KeyedDoc{
				Key: bson.D{{Key: "dateCode", Value: dateCode}, {Key: "skuId", Value: r.SkuID}},
				Doc: buildStat(dateCode, r),
			}
		})
	if err != nil {
		return nil, err
	}

	summary := &clouds.StatsSummary{
		Provider: p.Name(),
		DateCode: dateCode,
		Records:  records,
		Inserted: result.Inserted,
		Updated:  result.Updated,
		Duration: time.Since(start),
	}
	p.log.Info("stats finished",
		zap.String("dateCode", dateCode),
		zap.Int64("records", summary.Records),
		zap.Int64("inserted", summary.Inserted),
		zap.Int64("updated", summary.Updated),
		zap.Duration("duration", summary.Duration))
	return summary, nil
}

// buildStat decomposes one price record into its snapshot row. The
// sku name and reservation term come back out of the search code.
func buildStat(dateCode string, r PriceRecord) PriceStat {
	var s [5]string
	for i, part := range strings.Split(r.SearchCode, "/") {
		if i >= len(s) {
			break
		}
		s[i] = part
	}
	return PriceStat{
		DateCode:         dateCode,
		SkuID:            r.SkuID,
		ArmRegionName:    r.ArmRegionName,
		ProductID:        r.ProductID,
		ProductName:      r.ProductName,
		SkuName:          s[3],
		ReservationTerm:  s[4],
		TierMinimumUnits: r.TierMinimumUnits,
		Price:            r.Price,
	}
}
