package azure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Ivantg01/ScraperHSPrices/internal/config"
	"github.com/Ivantg01/ScraperHSPrices/internal/fetch"
	"github.com/Ivantg01/ScraperHSPrices/storage"
)

func simulatorConfig(t *testing.T, server *httptest.Server) *config.Config {
	t.Helper()
	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parsing server url: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("parsing server port: %v", err)
	}

	cfg := config.Default()
	cfg.Simulator.Enabled = true
	cfg.Simulator.Host = u.Hostname()
	cfg.Simulator.Port = port
	cfg.DownloadDir = t.TempDir()
	return cfg
}

func vmSku(skuID, skuName, region string, price float64) apiSku {
	return apiSku{
		CurrencyCode:  "USD",
		UnitPrice:     price,
		ArmRegionName: region,
		SkuID:         skuID,
		ProductID:     "DZH318Z0BP04",
		ProductName:   "Virtual Machines Dv3 Series",
		SkuName:       skuName,
		ServiceName:   "Virtual Machines",
		ArmSkuName:    "Standard_" + skuName,
	}
}

func TestScrapeFollowsNextPageLink(t *testing.T) {
	var pages int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		var page apiPage
		if r.URL.Query().Get("page") == "2" {
			page = apiPage{Items: []apiSku{
				vmSku("SKU-3", "D4s_v3", "westeurope", 0.192),
				vmSku("SKU-4", "D2s_v3 Spot", "westeurope", 0.01),
			}}
		} else {
			page = apiPage{
				Items: []apiSku{
					vmSku("SKU-1", "D2s_v3", "westeurope", 0.096),
					vmSku("SKU-2", "D2s_v3", "australiacentral", 0.126),
				},
				NextPageLink: "https://prices.azure.com:443" + r.URL.Path + "?page=2",
			}
		}
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	cfg := simulatorConfig(t, server)
	store := storage.NewMemory()
	allow := &storage.Allowlist{
		AzureRegions:  cfg.Azure.Regions,
		AzureProducts: []config.AzureProduct{{ProductName: "Virtual Machines Dv3 Series", ProductID: "DZH318Z0BP04", Active: true}},
	}

	p := New(store, fetch.NewClient(2, time.Second), cfg, allow)
	summary, err := p.Scrape(context.Background())
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}

	if pages != 2 {
		t.Errorf("pages fetched = %d, want 2", pages)
	}
	if summary.Fetched != 4 {
		t.Errorf("fetched = %d, want 4", summary.Fetched)
	}
	// SKU-2 is outside the region allowlist, SKU-4 is a spot sku
	if summary.Kept != 2 {
		t.Errorf("kept = %d, want 2", summary.Kept)
	}

	var records []PriceRecord
	if err := store.FindAll(context.Background(), storage.AzurePrices, &records); err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("stored %d records, want 2", len(records))
	}
	if records[0].SearchCode != "westeurope/vm/cmp/Standard_D2s_v3/od" {
		t.Errorf("SearchCode = %q", records[0].SearchCode)
	}
}

func TestScrapeKeepsPagesBeforeMalformedOne(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.Write([]byte(`{"Items": [{"skuId"`))
			return
		}
		json.NewEncoder(w).Encode(apiPage{
			Items:        []apiSku{vmSku("SKU-1", "D2s_v3", "westeurope", 0.096)},
			NextPageLink: "https://prices.azure.com:443" + r.URL.Path + "?page=2",
		})
	}))
	defer server.Close()

	cfg := simulatorConfig(t, server)
	store := storage.NewMemory()
	allow := &storage.Allowlist{
		AzureRegions:  cfg.Azure.Regions,
		AzureProducts: []config.AzureProduct{{ProductName: "Virtual Machines Dv3 Series", ProductID: "DZH318Z0BP04", Active: true}},
	}

	p := New(store, fetch.NewClient(2, time.Second), cfg, allow)
	summary, err := p.Scrape(context.Background())
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}

	if summary.Fetched != 1 || summary.Kept != 1 {
		t.Errorf("fetched = %d kept = %d, want 1 and 1", summary.Fetched, summary.Kept)
	}
	n, _ := store.Count(context.Background(), storage.AzurePrices)
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestScrapeIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(apiPage{Items: []apiSku{vmSku("SKU-1", "D2s_v3", "westeurope", 0.096)}})
	}))
	defer server.Close()

	cfg := simulatorConfig(t, server)
	store := storage.NewMemory()
	allow := &storage.Allowlist{
		AzureRegions:  cfg.Azure.Regions,
		AzureProducts: []config.AzureProduct{{ProductName: "Virtual Machines Dv3 Series", ProductID: "DZH318Z0BP04", Active: true}},
	}
	p := New(store, fetch.NewClient(2, time.Second), cfg, allow)

	for i := 0; i < 2; i++ {
		if _, err := p.Scrape(context.Background()); err != nil {
			t.Fatalf("Scrape run %d: %v", i+1, err)
		}
	}
	n, _ := store.Count(context.Background(), storage.AzurePrices)
	if n != 1 {
		t.Errorf("count after rescrape = %d, want 1", n)
	}
}

func TestStats(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	records := []PriceRecord{
		{SearchCode: "westeurope/vm/cmp/Standard_D2s_v3/od", SkuID: "SKU-1", ArmRegionName: "westeurope", Price: 0.096},
		{SearchCode: "westeurope/vm/cmp/Standard_D2s_v3/1y", SkuID: "SKU-2", ArmRegionName: "westeurope", Price: 0.062},
	}
	for _, r := range records {
		if _, err := store.BulkUpsert(ctx, storage.AzurePrices, []storage.KeyedDoc{{
			Key: bson.D{{Key: "skuId", Value: r.SkuID}},
			Doc: r,
		}}); err != nil {
			t.Fatalf("seeding prices: %v", err)
		}
	}

	p := New(store, nil, config.Default(), &storage.Allowlist{})
	summary, err := p.Stats(ctx, "20260828")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if summary.Records != 2 {
		t.Errorf("records = %d, want 2", summary.Records)
	}

	var stats []PriceStat
	if err := store.FindAll(ctx, storage.AzurePriceStats, &stats); err != nil {
		t.Fatalf("find stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stored %d stats, want 2", len(stats))
	}
	if stats[0].ReservationTerm != "od" || stats[1].ReservationTerm != "1y" {
		t.Errorf("reservation terms = %q, %q", stats[0].ReservationTerm, stats[1].ReservationTerm)
	}
}
