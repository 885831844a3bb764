// Package google scrapes the Cloud Billing catalog API into canonical
// price records and dated snapshot stats.
package google

// Service ids in the Cloud Billing catalog
const (
	computeEngineID = "6F81-5844-456A"
	cloudStorageID  = "95FF-2EF5-5EA1"
	cloudSQLID      = "9662-B51E-5089"
	gkeID           = "CCD8-9BF1-090E"
)

type apiUnitPrice struct {
	CurrencyCode string `json:"currencyCode"`
	Units        string `json:"units"`
	Nanos        int64  `json:"nanos"`
}

type apiTieredRate struct {
	StartUsageAmount float64      `json:"startUsageAmount"`
	UnitPrice        apiUnitPrice `json:"unitPrice"`
}

type apiPricingExpression struct {
	UsageUnit                string          `json:"usageUnit"`
	UsageUnitDescription     string          `json:"usageUnitDescription"`
	BaseUnit                 string          `json:"baseUnit"`
	BaseUnitDescription      string          `json:"baseUnitDescription"`
	BaseUnitConversionFactor float64         `json:"baseUnitConversionFactor"`
	DisplayQuantity          float64         `json:"displayQuantity"`
	TieredRates              []apiTieredRate `json:"tieredRates"`
}

type apiPricingInfo struct {
	PricingExpression apiPricingExpression `json:"pricingExpression"`
}

type apiCategory struct {
	ServiceDisplayName string `json:"serviceDisplayName"`
	ResourceFamily     string `json:"resourceFamily"`
	ResourceGroup      string `json:"resourceGroup"`
	UsageType          string `json:"usageType"`
}

type apiGeoTaxonomy struct {
	Type string `json:"type"`
}

// apiSku is one catalog sku; it covers several regions at once
type apiSku struct {
	Name           string           `json:"name"`
	SkuID          string           `json:"skuId"`
	Description    string           `json:"description"`
	Category       apiCategory      `json:"category"`
	ServiceRegions []string         `json:"serviceRegions"`
	PricingInfo    []apiPricingInfo `json:"pricingInfo"`
	GeoTaxonomy    *apiGeoTaxonomy  `json:"geoTaxonomy"`
}

type apiSkuPage struct {
	Skus          []apiSku `json:"skus"`
	NextPageToken string   `json:"nextPageToken"`
}

// apiService is one entry of the billing services listing
type apiService struct {
	Name              string `json:"name"`
	ServiceID         string `json:"serviceId"`
	DisplayName       string `json:"displayName"`
	BusinessEntityName string `json:"businessEntityName"`
}

type apiServicePage struct {
	Services      []apiService `json:"services"`
	NextPageToken string       `json:"nextPageToken"`
}

// PriceRecord is a canonical Google price, one catalog sku flattened
// per region. SkuID carries the region suffix to stay unique.
type PriceRecord struct {
	SearchCode               string  `bson:"searchCode"`
	ServiceID                string  `bson:"serviceId"`
	SkuID                    string  `bson:"skuId"`
	Description              string  `bson:"description"`
	ServiceDisplayName       string  `bson:"serviceDisplayName"`
	ResourceFamily           string  `bson:"resourceFamily"`
	ResourceGroup            string  `bson:"resourceGroup"`
	UsageType                string  `bson:"usageType"`
	ServiceRegion            string  `bson:"serviceRegion"`
	UsageUnit                string  `bson:"usageUnit"`
	DisplayQuantity          float64 `bson:"displayQuantity"`
	StartUsageAmount         float64 `bson:"startUsageAmount"`
	CurrencyCode             string  `bson:"currencyCode"`
	Price                    float64 `bson:"price"`
	UsageUnitDescription     string  `bson:"usageUnitDescription"`
	BaseUnit                 string  `bson:"baseUnit"`
	BaseUnitDescription      string  `bson:"baseUnitDescription"`
	BaseUnitConversionFactor float64 `bson:"baseUnitConversionFactor"`
	GeoTaxonomyType          string  `bson:"geoTaxonomyType"`
}

// PriceStat is one dated snapshot row, keyed by (dateCode, skuId)
type PriceStat struct {
	DateCode           string  `bson:"dateCode"`
	SkuID              string  `bson:"skuId"`
	Description        string  `bson:"description"`
	ServiceRegion      string  `bson:"serviceRegion"`
	ServiceDisplayName string  `bson:"serviceDisplayName"`
	ResourceFamily     string  `bson:"resourceFamily"`
	ResourceGroup      string  `bson:"resourceGroup,omitempty"`
	UsageType          string  `bson:"usageType,omitempty"`
	GeoTaxonomy        string  `bson:"geoTaxonomy,omitempty"`
	VirtualMachineType string  `bson:"virtualMachineType,omitempty"`
	Price              float64 `bson:"price"`
}
