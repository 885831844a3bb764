package amazon

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/clouds"
	"github.com/Ivantg01/ScraperHSPrices/internal/artifact"
	"github.com/Ivantg01/ScraperHSPrices/internal/config"
	"github.com/Ivantg01/ScraperHSPrices/internal/fetch"
	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
	"github.com/Ivantg01/ScraperHSPrices/storage"
)

const pricingBaseURL = "https://pricing.us-east-1.amazonaws.com"

// Provider scrapes Amazon Cloud offer files
type Provider struct {
	store  storage.Store
	client *fetch.Client
	cfg    *config.Config
	allow  *storage.Allowlist
	log    *zap.Logger
}

// New creates the Amazon provider
func New(store storage.Store, client *fetch.Client, cfg *config.Config, allow *storage.Allowlist) *Provider {
	return &Provider{
		store:  store,
		client: client,
		cfg:    cfg,
		allow:  allow,
		log:    logging.Logger.Named("amazon"),
	}
}

// Name returns the provider key
func (p *Provider) Name() string { return "amazon" }

func (p *Provider) baseURL() string {
	if p.cfg.Simulator.Enabled {
		return p.cfg.Simulator.BaseURL()
	}
	return pricingBaseURL
}

func (p *Provider) offerURL(serviceID, region string) string {
	if region != "" {
		return fmt.Sprintf("%s/offers/v1.0/aws/%s/current/%s/index.csv", p.baseURL(), serviceID, region)
	}
	return fmt.Sprintf("%s/offers/v1.0/aws/%s/current/index.csv", p.baseURL(), serviceID)
}

func (p *Provider) offerFilename(serviceID, region string) string {
	name := serviceID + ".csv"
	if region != "" {
		name = serviceID + "_" + region + ".csv"
	}
	return filepath.Join(p.cfg.DownloadDir, "amazon", name)
}

// Scrape walks the active services, per region where the offer file is
// too big to fetch whole, and ingests each download. One failing
// service does not stop the others.
func (p *Provider) Scrape(ctx context.Context) (*clouds.ScrapeSummary, error) {
	summary := &clouds.ScrapeSummary{Provider: p.Name(), RunID: clouds.NewRunID()}
	start := time.Now()

	if err := os.MkdirAll(filepath.Join(p.cfg.DownloadDir, "amazon"), 0755); err != nil {
		return nil, err
	}

	for _, service := range p.allow.AmazonServices {
		if !service.Active {
			continue
		}
		if service.ScrapePerRegion {
			for _, region := range p.allow.AmazonRegions {
				if !region.Active {
					continue
				}
				p.scrapeOffer(ctx, summary, service.ServiceID, region.Name)
			}
		} else {
			p.scrapeOffer(ctx, summary, service.ServiceID, "")
		}
	}

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

func (p *Provider) scrapeOffer(ctx context.Context, summary *clouds.ScrapeSummary, serviceID, region string) {
	url := p.offerURL(serviceID, region)
	filename := p.offerFilename(serviceID, region)
	p.log.Info("scraping service", zap.String("service", serviceID), zap.String("region", region))

	if err := p.client.DownloadFile(ctx, url, filename); err != nil {
		p.log.Error("offer download failed", zap.String("service", serviceID), zap.Error(err))
		return
	}
	if !p.cfg.StoreFetchContent {
		defer artifact.Remove(filename)
	}

	totals, err := p.processFile(ctx, filename, IngestBatchSize)
	if err != nil {
		p.log.Error("offer ingest failed", zap.String("service", serviceID), zap.Error(err))
	}
	summary.Fetched += totals.fetched
	summary.Kept += totals.kept
	summary.Inserted += totals.result.Inserted
	summary.Updated += totals.result.Updated
	summary.ParseDropped += totals.dropped
}

// Stats derives the dated snapshot rows. The search code is split
// positionally back into the classification fields, so the stat rows
// stay consistent with whatever grammar encoded them.
func (p *Provider) Stats(ctx context.Context, dateCode string) (*clouds.StatsSummary, error) {
	start := time.Now()

	records, result, err := clouds.Snapshot(ctx, p.store, storage.AmazonPrices, storage.AmazonPriceStats,
		func(r PriceRecord) storage.KeyedDoc {
			return storage.KeyedDoc{
				Key: bson.D{{Key: "dateCode", Value: dateCode}, {Key: "rateCode", Value: r.RateCode}},
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
	var s [5]string
	for i, part := range strings.Split(r.SearchCode, "/") {
		if i >= len(s) {
			break
		}
		s[i] = part
	}

	stat := PriceStat{
		DateCode:            dateCode,
		RateCode:            r.RateCode,
		RegionCode:          r.RegionCode,
		ProductFamily:       s[1] + "/" + s[2],
		InstanceType:        r.InstanceType,
		LeaseContractLength: s[4],
		StartingRange:       r.StartingRange,
		PriceDescription:    r.PriceDescription,
		Price:               r.Price,
	}
	if s[2] == "str" {
		stat.VolumeAPIName = s[3]
	}
	if r.DeploymentOption != "" {
		// (M)ulti or (S)ingle
		stat.DeploymentOption = r.DeploymentOption[:1]
	}
	return stat
}
