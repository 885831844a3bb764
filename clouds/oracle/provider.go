package oracle

import (
	"context"
	"encoding/json"
	"path/filepath"
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

const priceListBaseURL = "https://apexapps.oracle.com"

// Provider scrapes the Oracle Cloud price list
type Provider struct {
	store  storage.Store
	client *fetch.Client
	cfg    *config.Config
	log    *zap.Logger
}

// New creates the Oracle provider. The price list needs no allowlist,
// it comes back whole in one answer.
func New(store storage.Store, client *fetch.Client, cfg *config.Config) *Provider {
	return &Provider{
		store:  store,
		client: client,
		cfg:    cfg,
		log:    logging.Logger.Named("oracle"),
	}
}

// Name returns the provider key
func (p *Provider) Name() string { return "oracle" }

func (p *Provider) baseURL() string {
	if p.cfg.Simulator.Enabled {
		return p.cfg.Simulator.BaseURL()
	}
	return priceListBaseURL
}

// Scrape fetches the whole price list in one call and upserts the
// canonical records by part number
func (p *Provider) Scrape(ctx context.Context) (*clouds.ScrapeSummary, error) {
	summary := &clouds.ScrapeSummary{Provider: p.Name(), RunID: clouds.NewRunID()}
	start := time.Now()

	url := p.baseURL() + "/pls/apex/cetools/api/v1/products?currencyCode=USD"
	data, err := p.client.GetBytes(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp apiPage
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Parsing("decoding price list", err)
	}
	p.log.Debug("price list fetched", zap.Int("items", len(resp.Items)))

	if p.cfg.StoreFetchContent {
		artifact.Save(filepath.Join(p.cfg.DownloadDir, "oracle", "products.json"), data)
	}

	docs := make([]storage.KeyedDoc, 0, len(resp.Items))
	for _, sku := range resp.Items {
		record, ok := canonicalize(sku)
		if !ok {
			summary.ParseDropped++
			continue
		}
		record.SearchCode = searchCode(record)
		docs = append(docs, storage.KeyedDoc{
			Key: bson.D{{Key: "partNumber", Value: record.PartNumber}},
			Doc: record,
		})
	}
	summary.Fetched = int64(len(resp.Items))
	summary.Kept = int64(len(docs))

	res, err := p.store.BulkUpsert(ctx, storage.OraclePrices, docs)
	if err != nil {
		return summary, err
	}
	summary.Inserted = res.Inserted
	summary.Updated = res.Updated

	summary.Duration = time.Since(start)
	p.log.Info("scrape finished",
		zap.String("runId", summary.RunID),
		zap.Int64("fetched", summary.Fetched),
		zap.Int64("kept", summary.Kept),
		zap.Int64("inserted", summary.Inserted),
		zap.Int64("updated", summary.Updated),
		zap.Int64("parseDropped", summary.ParseDropped),
		zap.Duration("duration", summary.Duration))
	return summary, nil
}

// canonicalize flattens one part into a price record. When a part
// lists more than one price the first is the free allowance, so the
// second carries the paid rate.
func canonicalize(sku apiSku) (PriceRecord, bool) {
	if len(sku.CurrencyCodeLocalizations) == 0 {
		return PriceRecord{}, false
	}
	localization := sku.CurrencyCodeLocalizations[0]
	if len(localization.Prices) == 0 {
		return PriceRecord{}, false
	}

	index := 0
	if len(localization.Prices) > 1 {
		index = 1
	}
	price := localization.Prices[index]

	return PriceRecord{
		PartNumber:      sku.PartNumber,
		DisplayName:     sku.DisplayName,
		MetricName:      sku.MetricName,
		ServiceCategory: sku.ServiceCategory,
		CurrencyCode:    localization.CurrencyCode,
		Model:           price.Model,
		Value:           price.Value,
		RangeMin:        price.RangeMin,
		RangeMax:        price.RangeMax,
	}, true
}

// Stats derives the dated snapshot rows, keyed by
// (dateCode, partNumber). Category and metric come back out of the
// search code positionally.
func (p *Provider) Stats(ctx context.Context, dateCode string) (*clouds.StatsSummary, error) {
	start := time.Now()

	records, result, err := clouds.Snapshot(ctx, p.store, storage.OraclePrices, storage.OraclePriceStats,
		func(r PriceRecord) storage.KeyedDoc {
			return storage.KeyedDoc{
				Key: bson.D{{Key: "dateCode", Value: dateCode}, {Key: "partNumber", Value: r.PartNumber}},
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

// buildStat decomposes one price record into its snapshot row
func buildStat(dateCode string, r PriceRecord) PriceStat {
	var s [4]string
	for i, part := range strings.Split(r.SearchCode, "/") {
		if i >= len(s) {
			break
		}
		s[i] = part
	}
	return PriceStat{
		DateCode:        dateCode,
		PartNumber:      r.PartNumber,
		DisplayName:     r.DisplayName,
		MetricName:      s[2],
		ServiceCategory: s[1],
		Value:           r.Value,
	}
}
