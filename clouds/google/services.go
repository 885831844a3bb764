package google

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/internal/artifact"
	"github.com/Ivantg01/ScraperHSPrices/internal/errors"
)

// ScrapeServiceNames fetches the whole billing services listing and
// saves it as a dated JSON file. It is how new service ids are found
// for the allowlist.
func (p *Provider) ScrapeServiceNames(ctx context.Context) (int, string, error) {
	if p.cfg.Google.APIKey == "" {
		return 0, "", errors.Config("google api key not configured")
	}

	base := fmt.Sprintf("%s/v1/services/?key=%s", p.baseURL(), p.cfg.Google.APIKey)
	url := base
	var all []apiService

	for url != "" {
		data, err := p.client.GetBytes(ctx, url)
		if err != nil {
			return 0, "", err
		}

		var resp apiServicePage
		if err := json.Unmarshal(data, &resp); err != nil {
			return 0, "", errors.Parsing("decoding services page", err)
		}
		all = append(all, resp.Services...)

		url = ""
		if resp.NextPageToken != "" {
			url = base + "&pageToken=" + resp.NextPageToken
		}
	}

	out, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return 0, "", errors.Parsing("encoding services listing", err)
	}
	filename := filepath.Join(p.cfg.DownloadDir, "google",
		"services_"+time.Now().Format("20060102150405")+".json")
	artifact.Save(filename, out)

	p.log.Info("service names scraped", zap.Int("services", len(all)), zap.String("file", filename))
	return len(all), filename, nil
}
