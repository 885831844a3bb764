package oracle

import (
	"strings"

	"github.com/Ivantg01/ScraperHSPrices/clouds"
)

// Search code layout:
//
//	global/{category}/{metric}/{model}
//
// The price list is global, so the region slot is the literal
// "global". Categories shorten through an ordered prefix table,
// metrics are carried sanitized, pricing models get short codes.

// categoryTable maps service-category prefixes to short codes, in
// match order
var categoryTable = []struct {
	prefix string
	code   string
}{
	{"Compute", "cmp"},
	{"Storage", "str"},
	{"Database", "db"},
	{"Networking", "net"},
	{"Container", "k8"},
	{"Analytics", "ana"},
	{"Security", "sec"},
	{"Observability", "obs"},
	{"Integration", "int"},
}

func categoryCode(category string) string {
	for _, e := range categoryTable {
		if strings.HasPrefix(category, e.prefix) {
			return e.code
		}
	}
	return clouds.SearchToken(strings.ToLower(category))
}

// modelCode shortens a pricing model name
func modelCode(model string) string {
	switch model {
	case "PAY_AS_YOU_GO":
		return "payg"
	case "MONTHLY_COMMIT":
		return "mc"
	case "ANNUAL_COMMIT":
		return "ac"
	}
	return clouds.SearchToken(strings.ToLower(model))
}

// searchCode derives the deterministic search code for a record
func searchCode(r PriceRecord) string {
	return "global/" + categoryCode(r.ServiceCategory) + "/" +
		clouds.SearchToken(strings.ToLower(r.MetricName)) + "/" + modelCode(r.Model)
}
