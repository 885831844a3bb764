package google

import (
	"strings"

	"github.com/Ivantg01/ScraperHSPrices/clouds"
)

// Search code layout:
//
//	{region}/{service}/{family}/{group}/{usageType}/{geo}/{vmType}
//
// Compute Engine  region/ce/cmp/[cpu|ram]/[1y|3y|od]//[M1-M2|N1|C2|...]
//                 region/ce/net/egress/od/city
//                 region/ce/str/[pd-ssd|...]/[1y|3y|od]
// Cloud Storage   region/cs/str/[standard|nearline|archive]
// Cloud SQL       region/sql/app/[ssd|cpu|...]//[regional|zonal]
// Kubernetes      region/gke/k8///[regional|zonal]

// usageCode maps a usage type to its short code
func usageCode(usageType string) string {
	switch {
	case strings.HasSuffix(usageType, "Commit1Yr"):
		return "1y"
	case strings.HasSuffix(usageType, "Commit3Yr"):
		return "3y"
	case strings.HasSuffix(usageType, "OnDemand"):
		return "od"
	}
	return ""
}

// vmTypeCode normalizes a series word from a sku description
func vmTypeCode(word string) string {
	switch word {
	case "Compute":
		return "C2"
	case "Cpu", "Ram", "Custom":
		return "N1"
	case "Memory-optimized":
		return "M1-M2"
	}
	return word
}

// searchCode derives the deterministic search code for a kept record
func searchCode(r PriceRecord) string {
	switch r.ServiceID {
	case computeEngineID:
		return r.ServiceRegion + "/ce/" + computeEngineCode(r)
	case cloudStorageID:
		return r.ServiceRegion + "/cs/" + cloudStorageCode(r)
	case cloudSQLID:
		return r.ServiceRegion + "/sql/" + cloudSQLCode(r)
	case gkeID:
		code := "zonal"
		if strings.HasPrefix(r.Description, "Regional") {
			code = "regional"
		}
		return r.ServiceRegion + "/gke/k8///" + code
	}
	return ""
}

func computeEngineCode(r PriceRecord) string {
	switch r.ResourceFamily {
	case "Compute":
		return computeMeterCode(r)
	case "Network":
		if r.ResourceGroup == "PremiumInternetEgress" {
			_, city, _ := strings.Cut(r.Description, " to ")
			return "net/egress/" + usageCode(r.UsageType) + "/" + clouds.SearchToken(city)
		}
	case "Storage":
		return "str/" + storageCode(r) + "/" + usageCode(r.UsageType)
	}
	return ""
}

// computeMeterCode handles the two compute description shapes: the
// committed-use meters ("Commitment v1: ... Cpu in ...") and the
// on-demand ones ("N2 Instance Core running in ...")
func computeMeterCode(r PriceRecord) string {
	if strings.Contains(r.Description, "Commitment") {
		cpu := strings.Contains(r.Description, "Cpu in")
		ram := strings.Contains(r.Description, "Ram in")
		if !cpu && !ram {
			return ""
		}
		words := strings.Fields(r.Description)
		if len(words) < 3 {
			return ""
		}
		word := words[1]
		if word == "v1:" {
			word = words[2]
		}
		resource := "ram/"
		if cpu {
			resource = "cpu/"
		}
		return "cmp/" + resource + usageCode(r.UsageType) + "//" + vmTypeCode(word)
	}

	if strings.Contains(r.Description, "Instance Ram running in") ||
		strings.Contains(r.Description, "Instance Core running in") {
		words := strings.Fields(r.Description)
		code := vmTypeCode(words[0])
		if strings.Contains(r.Description, "Custom Extended") {
			code += "-CustomExtended"
		} else if strings.Contains(r.Description, "Custom") {
			code += "-Custom"
		}
		resource := "ram/"
		if strings.Contains(r.Description, "Instance Core running") {
			resource = "cpu/"
		}
		return "cmp/" + resource + usageCode(r.UsageType) + "//" + code
	}
	return ""
}

// storageTable maps description substrings to disk codes, regional
// variants before their plain counterparts
var storageTable = []struct {
	substr string
	code   string
}{
	{"Regional Balanced PD Capacity", "pd-balanced-regional"},
	{"Balanced PD Capacity", "pd-balanced"},
	{"Regional SSD backed PD Capacity", "pd-ssd-regional"},
	{"SSD backed PD Capacity", "pd-ssd"},
	{"Regional Storage PD Capacity", "pd-standard-regional"},
	{"Storage PD Capacity", "pd-standard"},
	{"Extreme PD Capacity", "pd-extreme"},
	{"Extreme PD IOPS", "pd-extreme-iops"},
	{"SSD backed Local Storage", "ssd-backed-local"},
	{"Storage Machine Image", "image"},
}

func storageCode(r PriceRecord) string {
	if strings.Contains(r.Description, "Commitment v1: Local SSD") {
		return "local-ssd/" + usageCode(r.UsageType)
	}
	for _, e := range storageTable {
		if strings.Contains(r.Description, e.substr) {
			return e.code
		}
	}
	return ""
}

func cloudStorageCode(r PriceRecord) string {
	var code string
	switch r.ResourceGroup {
	case "RegionalStorage":
		code = "standard"
	case "NearlineStorage":
		code = "nearline"
	case "ArchiveStorage":
		code = "archive"
	}
	return "str/" + code
}

func cloudSQLCode(r PriceRecord) string {
	regionType := "zonal"
	if strings.Contains(r.Description, "Regional") {
		regionType = "regional"
	}
	var code string
	switch r.ResourceGroup {
	case "SSD":
		code = "ssd"
	case "PDStandard":
		code = "standard"
	case "PDSnapshot":
		code = "backup"
	case "SQLGen2InstancesCPU":
		code = "cpu"
	case "SQLGen2InstancesRAM":
		code = "ram"
	}
	return "app/" + code + "//" + regionType
}
