// Package clouds defines the provider pipeline contract and the
// helpers shared by the per-cloud scrapers.
package clouds

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Provider is one cloud's price pipeline. Scrape fetches the current
// catalog and upserts canonical price records; Stats derives the dated
// snapshot rows from whatever the price collection holds.
type Provider interface {
	// Name returns the provider key (amazon, azure, google, oracle)
	Name() string

	// Scrape runs the fetch→canonicalize→filter→encode→upsert pipeline
	Scrape(ctx context.Context) (*ScrapeSummary, error)

	// Stats writes the snapshot stat rows for the given date code
	Stats(ctx context.Context, dateCode string) (*StatsSummary, error)
}

// ScrapeSummary reports one provider scrape
type ScrapeSummary struct {
	Provider string
	RunID    string
	Fetched  int64 // canonical records considered
	Kept     int64 // records surviving the allowlist filters
	Inserted int64
	Updated  int64

	// ParseDropped counts source lines lost to malformed batches
	ParseDropped int64

	Duration time.Duration
}

// StatsSummary reports one provider snapshot pass
type StatsSummary struct {
	Provider string
	DateCode string
	Records  int64 // price records read
	Inserted int64
	Updated  int64
	Duration time.Duration
}

// NewRunID returns a fresh run identifier for log correlation
func NewRunID() string {
	return uuid.NewString()
}

// DateCode renders a time as the YYYYMMDD snapshot key
func DateCode(t time.Time) string {
	return t.Format("20060102")
}

// SearchToken sanitizes a description-derived search code segment.
// Slashes are the code separator, so embedded ones become dashes.
func SearchToken(s string) string {
	return strings.ReplaceAll(s, "/", "-")
}
