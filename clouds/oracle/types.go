// Package oracle scrapes the Oracle Cloud price list API into
// canonical price records and dated snapshot stats.
package oracle

// apiPrice is one pricing model entry of a part
type apiPrice struct {
	Model    string  `json:"model"`
	Value    float64 `json:"value"`
	RangeMin float64 `json:"rangeMin"`
	RangeMax float64 `json:"rangeMax"`
}

type apiCurrencyLocalization struct {
	CurrencyCode string     `json:"currencyCode"`
	Prices       []apiPrice `json:"prices"`
}

// apiSku is one item of the price list, a part with localized prices
type apiSku struct {
	PartNumber                string                    `json:"partNumber"`
	DisplayName               string                    `json:"displayName"`
	MetricName                string                    `json:"metricName"`
	ServiceCategory           string                    `json:"serviceCategory"`
	CurrencyCodeLocalizations []apiCurrencyLocalization `json:"currencyCodeLocalizations"`
}

type apiPage struct {
	Items []apiSku `json:"items"`
}

// PriceRecord is a canonical Oracle price. PartNumber is the natural
// key; the price list is global, not per region.
type PriceRecord struct {
	SearchCode      string  `bson:"searchCode"`
	PartNumber      string  `bson:"partNumber"`
	DisplayName     string  `bson:"displayName"`
	MetricName      string  `bson:"metricName"`
	ServiceCategory string  `bson:"serviceCategory"`
	CurrencyCode    string  `bson:"currencyCode"`
	Model           string  `bson:"model"`
	Value           float64 `bson:"value"`
	RangeMin        float64 `bson:"rangeMin,omitempty"`
	RangeMax        float64 `bson:"rangeMax,omitempty"`
}

// PriceStat is one dated snapshot row, keyed by (dateCode, partNumber)
type PriceStat struct {
	DateCode        string  `bson:"dateCode"`
	PartNumber      string  `bson:"partNumber"`
	DisplayName     string  `bson:"displayName"`
	MetricName      string  `bson:"metricName"`
	ServiceCategory string  `bson:"serviceCategory"`
	Value           float64 `bson:"value"`
}
