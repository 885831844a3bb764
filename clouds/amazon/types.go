// Package amazon scrapes the Amazon Cloud offer files into canonical
// price records and dated snapshot stats.
package amazon

// PriceRecord is a canonical Amazon Cloud price, one CSV offer line
// flattened. RateCode is the natural key.
type PriceRecord struct {
	SearchCode          string  `bson:"searchCode"`
	RateCode            string  `bson:"rateCode"`
	ServiceCode         string  `bson:"serviceCode"`
	RegionCode          string  `bson:"regionCode"`
	TermType            string  `bson:"termType"`
	LeaseContractLength string  `bson:"leaseContractLength,omitempty"`
	PurchaseOption      string  `bson:"purchaseOption,omitempty"`
	OfferingClass       string  `bson:"offeringClass,omitempty"`
	PriceDescription    string  `bson:"priceDescription"`
	StartingRange       string  `bson:"startingRange,omitempty"`
	EndingRange         string  `bson:"endingRange,omitempty"`
	Unit                string  `bson:"unit"`
	Price               float64 `bson:"price"`
	Currency            string  `bson:"currency"`
	ProductFamily       string  `bson:"productFamily"`
	UsageType           string  `bson:"usageType"`
	StorageMedia        string  `bson:"storageMedia,omitempty"`
	VolumeType          string  `bson:"volumeType,omitempty"`
	VolumeAPIName       string  `bson:"volumeApiName,omitempty"`
	FromLocationType    string  `bson:"fromLocationType,omitempty"`
	Operation           string  `bson:"operation,omitempty"`
	InstanceType        string  `bson:"instanceType,omitempty"`
	Tenancy             string  `bson:"tenancy,omitempty"`
	DatabaseEngine      string  `bson:"databaseEngine,omitempty"`
	DatabaseEdition     string  `bson:"databaseEdition,omitempty"`
	DeploymentOption    string  `bson:"deploymentOption,omitempty"`
	LicenseModel        string  `bson:"licenseModel,omitempty"`
}

// PriceStat is one dated snapshot row, keyed by (dateCode, rateCode).
// The classification fields are decomposed back out of the search code.
type PriceStat struct {
	DateCode            string  `bson:"dateCode"`
	RateCode            string  `bson:"rateCode"`
	RegionCode          string  `bson:"regionCode"`
	ProductFamily       string  `bson:"productFamily"`
	InstanceType        string  `bson:"instanceType,omitempty"`
	VolumeAPIName       string  `bson:"volumeApiName,omitempty"`
	LeaseContractLength string  `bson:"leaseContractLength,omitempty"`
	DeploymentOption    string  `bson:"deploymentOption,omitempty"`
	StartingRange       string  `bson:"startingRange,omitempty"`
	PriceDescription    string  `bson:"priceDescription"`
	Price               float64 `bson:"price"`
}
