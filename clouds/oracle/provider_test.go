package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/Ivantg01/ScraperHSPrices/internal/config"
	"github.com/Ivantg01/ScraperHSPrices/internal/fetch"
	"github.com/Ivantg01/ScraperHSPrices/storage"
)

func TestSearchCode(t *testing.T) {
	tests := []struct {
		name   string
		record PriceRecord
		want   string
	}{
		{
			"compute ocpu",
			PriceRecord{ServiceCategory: "Compute - Virtual Machine", MetricName: "OCPU Per Hour", Model: "PAY_AS_YOU_GO"},
			"global/cmp/ocpu per hour/payg",
		},
		{
			"storage gb",
			PriceRecord{ServiceCategory: "Storage - Block Volume", MetricName: "GB Per Month", Model: "PAY_AS_YOU_GO"},
			"global/str/gb per month/payg",
		},
		{
			"metric with slash",
			PriceRecord{ServiceCategory: "Database", MetricName: "ECPU/Hour", Model: "MONTHLY_COMMIT"},
			"global/db/ecpu-hour/mc",
		},
		{
			"unmapped category",
			PriceRecord{ServiceCategory: "Apps - HCM", MetricName: "Hosted User", Model: "PAY_AS_YOU_GO"},
			"global/apps - hcm/hosted user/payg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := searchCode(tt.record)
			if got != tt.want {
				t.Errorf("searchCode = %q, want %q", got, tt.want)
			}
			if again := searchCode(tt.record); again != got {
				t.Errorf("searchCode not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name      string
		sku       apiSku
		wantOK    bool
		wantValue float64
	}{
		{
			"single price",
			apiSku{PartNumber: "B1", CurrencyCodeLocalizations: []apiCurrencyLocalization{
				{CurrencyCode: "USD", Prices: []apiPrice{{Model: "PAY_AS_YOU_GO", Value: 0.085}}},
			}},
			true, 0.085,
		},
		{
			"free tier then paid",
			apiSku{PartNumber: "B2", CurrencyCodeLocalizations: []apiCurrencyLocalization{
				{CurrencyCode: "USD", Prices: []apiPrice{
					{Model: "PAY_AS_YOU_GO", Value: 0},
					{Model: "PAY_AS_YOU_GO", Value: 0.0255},
				}},
			}},
			true, 0.0255,
		},
		{
			"no localizations",
			apiSku{PartNumber: "B3"},
			false, 0,
		},
		{
			"no prices",
			apiSku{PartNumber: "B4", CurrencyCodeLocalizations: []apiCurrencyLocalization{{CurrencyCode: "USD"}}},
			false, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, ok := canonicalize(tt.sku)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && record.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", record.Value, tt.wantValue)
			}
		})
	}
}

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

func TestScrapeAndStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := apiPage{Items: []apiSku{
			{
				PartNumber: "B88317", DisplayName: "Compute - Standard - E4", MetricName: "OCPU Per Hour",
				ServiceCategory: "Compute - Virtual Machine",
				CurrencyCodeLocalizations: []apiCurrencyLocalization{
					{CurrencyCode: "USD", Prices: []apiPrice{{Model: "PAY_AS_YOU_GO", Value: 0.025}}},
				},
			},
			{
				PartNumber: "B91628", DisplayName: "Block Volume Storage", MetricName: "GB Per Month",
				ServiceCategory: "Storage",
				CurrencyCodeLocalizations: []apiCurrencyLocalization{
					{CurrencyCode: "USD", Prices: []apiPrice{
						{Model: "PAY_AS_YOU_GO", Value: 0},
						{Model: "PAY_AS_YOU_GO", Value: 0.0255},
					}},
				},
			},
			{PartNumber: "B00000", DisplayName: "Broken part"},
		}}
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	cfg := simulatorConfig(t, server)
	store := storage.NewMemory()
	p := New(store, fetch.NewClient(2, time.Second), cfg)
	ctx := context.Background()

	summary, err := p.Scrape(ctx)
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	if summary.Fetched != 3 || summary.Kept != 2 {
		t.Errorf("fetched/kept = %d/%d, want 3/2", summary.Fetched, summary.Kept)
	}
	if summary.ParseDropped != 1 {
		t.Errorf("parseDropped = %d, want 1", summary.ParseDropped)
	}

	var records []PriceRecord
	if err := store.FindAll(ctx, storage.OraclePrices, &records); err != nil {
		t.Fatalf("find all: %v", err)
	}
	if records[1].Value != 0.0255 {
		t.Errorf("paid tier value = %v, want 0.0255", records[1].Value)
	}

	stats, err := p.Stats(ctx, "20260828")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Records != 2 {
		t.Errorf("stat records = %d, want 2", stats.Records)
	}

	var rows []PriceStat
	if err := store.FindAll(ctx, storage.OraclePriceStats, &rows); err != nil {
		t.Fatalf("find stats: %v", err)
	}
	if rows[0].ServiceCategory != "cmp" || rows[0].MetricName != "ocpu per hour" {
		t.Errorf("decomposed stat = %q/%q", rows[0].ServiceCategory, rows[0].MetricName)
	}
}
