// Package artifact persists fetched payloads for replay and debugging.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
)

// Path builds a dated artifact path under dir, e.g.
// download/azure_prices_20260828_3.json for page 3.
func Path(dir, prefix, ext string, at time.Time, page int) string {
	name := fmt.Sprintf("%s_%s", prefix, at.Format("20060102"))
	if page > 0 {
		name = fmt.Sprintf("%s_%d", name, page)
	}
	return filepath.Join(dir, name+"."+ext)
}

// Save writes a fetched payload verbatim. Artifact persistence is best
// effort and never fails the scrape, so errors are logged and
// swallowed.
func Save(filename string, data []byte) {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		logging.Warn("saving artifact", zap.String("file", filename), zap.Error(err))
		return
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		logging.Warn("saving artifact", zap.String("file", filename), zap.Error(err))
		return
	}
	logging.Debug("artifact saved", zap.String("file", filename))
}

// Remove deletes a staged file, typically a downloaded CSV once its
// content has been ingested. Missing files are fine.
func Remove(filename string) {
	if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
		logging.Warn("removing artifact", zap.String("file", filename), zap.Error(err))
	}
}
