// Package azure scrapes the Azure retail prices API into canonical
// price records and dated snapshot stats.
package azure

import "time"

// apiSku is one item of the retail prices API answer
type apiSku struct {
	CurrencyCode         string  `json:"currencyCode"`
	TierMinimumUnits     float64 `json:"tierMinimumUnits"`
	ReservationTerm      string  `json:"reservationTerm"`
	UnitPrice            float64 `json:"unitPrice"`
	ArmRegionName        string  `json:"armRegionName"`
	Location             string  `json:"location"`
	EffectiveStartDate   string  `json:"effectiveStartDate"`
	MeterID              string  `json:"meterId"`
	MeterName            string  `json:"meterName"`
	ProductID            string  `json:"productId"`
	SkuID                string  `json:"skuId"`
	ProductName          string  `json:"productName"`
	SkuName              string  `json:"skuName"`
	ServiceName          string  `json:"serviceName"`
	ServiceID            string  `json:"serviceId"`
	ServiceFamily        string  `json:"serviceFamily"`
	UnitOfMeasure        string  `json:"unitOfMeasure"`
	Type                 string  `json:"type"`
	IsPrimaryMeterRegion bool    `json:"isPrimaryMeterRegion"`
	ArmSkuName           string  `json:"armSkuName"`
}

// apiPage is one page of the retail prices API, chained through
// NextPageLink
type apiPage struct {
	Items        []apiSku `json:"Items"`
	NextPageLink string   `json:"NextPageLink"`
}

// PriceRecord is a canonical Azure price. SkuID is the natural key
// after disambiguation, the raw API value repeats across tiers.
type PriceRecord struct {
	SearchCode           string    `bson:"searchCode"`
	CurrencyCode         string    `bson:"currencyCode"`
	TierMinimumUnits     float64   `bson:"tierMinimumUnits"`
	ReservationTerm      string    `bson:"reservationTerm"`
	Price                float64   `bson:"price"`
	ArmRegionName        string    `bson:"armRegionName"`
	Location             string    `bson:"location"`
	EffectiveStartDate   time.Time `bson:"effectiveStartDate"`
	MeterID              string    `bson:"meterId"`
	MeterName            string    `bson:"meterName"`
	ProductID            string    `bson:"productId"`
	SkuID                string    `bson:"skuId"`
	ProductName          string    `bson:"productName"`
	SkuName              string    `bson:"skuName"`
	ServiceName          string    `bson:"serviceName"`
	ServiceID            string    `bson:"serviceId"`
	ServiceFamily        string    `bson:"serviceFamily"`
	UnitOfMeasure        string    `bson:"unitOfMeasure"`
	Type                 string    `bson:"type"`
	IsPrimaryMeterRegion bool      `bson:"isPrimaryMeterRegion"`
	ArmSkuName           string    `bson:"armSkuName"`
}

// PriceStat is one dated snapshot row, keyed by (dateCode, skuId)
type PriceStat struct {
	DateCode         string  `bson:"dateCode"`
	SkuID            string  `bson:"skuId"`
	ArmRegionName    string  `bson:"armRegionName"`
	ProductID        string  `bson:"productId"`
	ProductName      string  `bson:"productName"`
	SkuName          string  `bson:"skuName"`
	ReservationTerm  string  `bson:"reservationTerm,omitempty"`
	TierMinimumUnits float64 `bson:"tierMinimumUnits"`
	Price            float64 `bson:"price"`
}
