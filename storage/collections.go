package storage

// Collection names. Price and stat collections are per provider; the
// remaining ones hold the seeded allowlists.
const (
	AmazonPrices     = "amazon_prices"
	AmazonPriceStats = "amazon_price_stats"
	AmazonRegions    = "amazon_regions"
	AmazonServices   = "amazon_services"

	AzurePrices     = "azure_prices"
	AzurePriceStats = "azure_price_stats"
	AzureRegions    = "azure_regions"
	AzureProducts   = "azure_products"

	GooglePrices     = "google_prices"
	GooglePriceStats = "google_price_stats"
	GoogleRegions    = "google_regions"
	GoogleServices   = "google_services"

	OraclePrices     = "oracle_prices"
	OraclePriceStats = "oracle_price_stats"
)
