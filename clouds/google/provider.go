package google

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
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

const billingBaseURL = "https://cloudbilling.googleapis.com"

// serviceIDPattern extracts the service id out of a sku resource name
// like services/6F81-5844-456A/skus/0013-863C-A2FF
var serviceIDPattern = regexp.MustCompile(`services/(.*)/skus`)

// Provider scrapes the Cloud Billing catalog
type Provider struct {
	store  storage.Store
	client *fetch.Client
	cfg    *config.Config
	allow  *storage.Allowlist
	log    *zap.Logger
}

// New creates the Google provider
func New(store storage.Store, client *fetch.Client, cfg *config.Config, allow *storage.Allowlist) *Provider {
	return &Provider{
		store:  store,
		client: client,
		cfg:    cfg,
		allow:  allow,
		log:    logging.Logger.Named("google"),
	}
}

// Name returns the provider key
func (p *Provider) Name() string { return "google" }

func (p *Provider) baseURL() string {
	if p.cfg.Simulator.Enabled {
		return p.cfg.Simulator.BaseURL()
	}
	return billingBaseURL
}

// Scrape fetches each active service's sku pages, flattens them per
// region and upserts the kept records. The catalog API needs an API
// key.
func (p *Provider) Scrape(ctx context.Context) (*clouds.ScrapeSummary, error) {
	if p.cfg.Google.APIKey == "" {
		return nil, errors.Config("google api key not configured")
	}

	summary := &clouds.ScrapeSummary{Provider: p.Name(), RunID: clouds.NewRunID()}
	start := time.Now()

	for _, service := range p.allow.GoogleServices {
		if !service.Active {
			continue
		}
		p.log.Info("scraping service",
			zap.String("service", service.Name),
			zap.String("serviceId", service.ServiceID))

		skus, err := p.fetchServiceSkus(ctx, service.ServiceID)
		if err != nil {
			// keep whatever pages arrived before the failure
			p.log.Error("service fetch truncated",
				zap.String("service", service.Name),
				zap.Int("skus", len(skus)),
				zap.Error(err))
		}

		var docs []storage.KeyedDoc
		for _, sku := range skus {
			for _, record := range flatten(sku) {
				summary.Fetched++
				if !keep(record) {
					continue
				}
				record.SearchCode = searchCode(record)
				docs = append(docs, storage.KeyedDoc{
					Key: bson.D{{Key: "skuId", Value: record.SkuID}},
					Doc: record,
				})
			}
		}
		summary.Kept += int64(len(docs))

		res, err := p.store.BulkUpsert(ctx, storage.GooglePrices, docs)
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

// fetchServiceSkus follows nextPageToken until the catalog runs out.
// A failing page stops the pagination but the skus of the pages before
// it are returned alongside the error.
func (p *Provider) fetchServiceSkus(ctx context.Context, serviceID string) ([]apiSku, error) {
	base := fmt.Sprintf("%s/v1/services/%s/skus?key=%s", p.baseURL(), serviceID, p.cfg.Google.APIKey)
	url := base
	var all []apiSku

	for page := 1; url != ""; page++ {
		data, err := p.client.GetBytes(ctx, url)
		if err != nil {
			return all, err
		}

		var resp apiSkuPage
		if err := json.Unmarshal(data, &resp); err != nil {
			return all, errors.Parsing("decoding catalog sku page", err)
		}
		p.log.Debug("page fetched", zap.String("serviceId", serviceID), zap.Int("skus", len(resp.Skus)))

		if p.cfg.StoreFetchContent {
			name := artifact.Path(p.cfg.DownloadDir+"/google", "google_"+serviceID, "json", time.Now(), page)
			artifact.Save(name, data)
		}

		all = append(all, resp.Skus...)
		url = ""
		if resp.NextPageToken != "" {
			url = base + "&pageToken=" + resp.NextPageToken
		}
	}
	return all, nil
}

// flatten expands one catalog sku into one record per service region.
// The sku id gets the region appended to stay unique. A catalog sku
// lists its pricing history; the last pricingInfo and its last tiered
// rate carry the current price.
func flatten(sku apiSku) []PriceRecord {
	serviceID := ""
	if m := serviceIDPattern.FindStringSubmatch(sku.Name); m != nil {
		serviceID = m[1]
	}

	base := PriceRecord{
		ServiceID:          serviceID,
		Description:        sku.Description,
		ServiceDisplayName: sku.Category.ServiceDisplayName,
		ResourceFamily:     sku.Category.ResourceFamily,
		ResourceGroup:      sku.Category.ResourceGroup,
		UsageType:          sku.Category.UsageType,
		GeoTaxonomyType:    "TYPE_UNSPECIFIED",
	}
	if sku.GeoTaxonomy != nil && sku.GeoTaxonomy.Type != "" {
		base.GeoTaxonomyType = sku.GeoTaxonomy.Type
	}

	if len(sku.PricingInfo) > 0 {
		expr := sku.PricingInfo[len(sku.PricingInfo)-1].PricingExpression
		base.UsageUnit = expr.UsageUnit
		base.DisplayQuantity = expr.DisplayQuantity
		base.UsageUnitDescription = expr.UsageUnitDescription
		base.BaseUnit = expr.BaseUnit
		base.BaseUnitDescription = expr.BaseUnitDescription
		base.BaseUnitConversionFactor = expr.BaseUnitConversionFactor
		if len(expr.TieredRates) > 0 {
			rate := expr.TieredRates[len(expr.TieredRates)-1]
			base.StartUsageAmount = rate.StartUsageAmount
			base.CurrencyCode = rate.UnitPrice.CurrencyCode
			base.Price = unitPrice(rate.UnitPrice)
		}
	}

	records := make([]PriceRecord, 0, len(sku.ServiceRegions))
	for _, region := range sku.ServiceRegions {
		record := base
		record.SkuID = sku.SkuID + "/" + region
		record.ServiceRegion = region
		records = append(records, record)
	}
	return records
}

// unitPrice combines the (units, nanos) pair into a price without
// losing the nano digits to float addition
func unitPrice(p apiUnitPrice) float64 {
	units, err := decimal.NewFromString(p.Units)
	if err != nil {
		units = decimal.Zero
	}
	price := units.Add(decimal.New(p.Nanos, -9))
	f, _ := price.Float64()
	return f
}

// Stats derives the dated snapshot rows, keyed by (dateCode, skuId)
func (p *Provider) Stats(ctx context.Context, dateCode string) (*clouds.StatsSummary, error) {
	start := time.Now()

	records, result, err := clouds.Snapshot(ctx, p.store, storage.GooglePrices, storage.GooglePriceStats,
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

// buildStat decomposes one price record into its snapshot row, the
// classification comes back out of the search code positionally
func buildStat(dateCode string, r PriceRecord) PriceStat {
	var s [7]string
	for i, part := range strings.Split(r.SearchCode, "/") {
		if i >= len(s) {
			break
		}
		s[i] = part
	}
	return PriceStat{
		DateCode:           dateCode,
		SkuID:              r.SkuID,
		Description:        r.Description,
		ServiceRegion:      r.ServiceRegion,
		ServiceDisplayName: r.ServiceDisplayName,
		ResourceFamily:     s[2],
		ResourceGroup:      s[3],
		UsageType:          s[4],
		GeoTaxonomy:        s[5],
		VirtualMachineType: s[6],
		Price:              r.Price,
	}
}
