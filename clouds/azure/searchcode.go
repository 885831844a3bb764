package azure

import (
	"regexp"
	"strconv"
	"strings"
)

// Search code layout:
//
//	{region}/{service}/{product}/{armSkuName}/{reservationTerm}/{tierMin}
//
// Virtual Machines    region/vm/cmp/[M128ds_v2|...]/[1y|3y|od]
// Kubernetes Service  region/aks/k8/[sla|lts]
// Storage             region/str/[ssd|...]/[Hot ZRS|...]/[1y|3y|od]
// Bandwidth           region/net/egress/std//[0|10|...]
// PostgreSQL          region/sql/cpu/[D4ds_v4|...]/[1y|3y|od]
//                     region/sql/str/[storage|backup|standard]

// termCode maps a reservation term to its short code, od when absent
func termCode(term string) string {
	switch {
	case strings.HasSuffix(term, "1 Year"):
		return "1y"
	case strings.HasSuffix(term, "3 Years"):
		return "3y"
	}
	return "od"
}

// storagePrefixes maps product-name prefixes to storage codes, in
// match order
var storagePrefixes = []struct {
	prefix string
	code   string
}{
	{"Files", "files"},
	{"General Block Blob", "blob"},
	{"Standard SSD", "ssd"},
	{"Standard HDD", "hdd"},
	{"Premium SSD", "pssd"},
}

func storageCode(productName string) string {
	for _, e := range storagePrefixes {
		if strings.HasPrefix(productName, e.prefix) {
			return e.code
		}
	}
	return ""
}

var coresPattern = regexp.MustCompile(`^(\d+)`)

// databaseCode derives the PostgreSQL flexible-server code. Compute
// meters carry a series name like
// AzureDB_PostgreSQL_Flexible_Server_General_Purpose_Ddsv4Series_Compute
// with the core count in the sku name ("4 vCores"), combined into the
// VM-style series D4ds_v4.
func databaseCode(r PriceRecord) string {
	if strings.HasSuffix(r.ArmSkuName, "Series_Compute") {
		trimmed := strings.TrimSuffix(r.ArmSkuName, "Series_Compute")
		parts := strings.Split(trimmed, "_")
		series := parts[len(parts)-1]
		if len(series) > 2 && series[len(series)-2] == 'v' {
			cores := "1"
			if m := coresPattern.FindString(r.SkuName); m != "" {
				cores = m
			}
			name := string(series[0]) + cores + series[1:len(series)-2] + "_" + series[len(series)-2:]
			return "cpu/" + name + "/" + termCode(r.ReservationTerm)
		}
		return ""
	}
	switch r.SkuName {
	case "Storage":
		return "str/storage"
	case "Backup Storage LRS":
		return "str/backup"
	case "Standard":
		return "str/standard"
	}
	return ""
}

// searchCode derives the deterministic search code for a kept record
func searchCode(r PriceRecord) string {
	switch r.ServiceName {
	case "Virtual Machines":
		return r.ArmRegionName + "/vm/cmp/" + r.ArmSkuName + "/" + termCode(r.ReservationTerm)
	case "Azure Kubernetes Service":
		code := "lts"
		if strings.Contains(r.MeterName, "SLA") {
			code = "sla"
		}
		return r.ArmRegionName + "/aks/k8/" + code
	case "Storage":
		return r.ArmRegionName + "/str/" + storageCode(r.ProductName) + "/" + r.SkuName + "/" + termCode(r.ReservationTerm)
	case "Bandwidth":
		return r.ArmRegionName + "/net/egress/std//" + formatTier(r.TierMinimumUnits)
	case "Azure Database for PostgreSQL":
		return r.ArmRegionName + "/sql/" + databaseCode(r)
	}
	return ""
}

// uniqueSkuID disambiguates the API sku id where it repeats: bandwidth
// tiers share one id, and AKS reuses one id for the SLA and LTS meters
func uniqueSkuID(r PriceRecord) string {
	switch r.ServiceName {
	case "Bandwidth":
		return r.SkuID + "/" + formatTier(r.TierMinimumUnits)
	case "Azure Kubernetes Service":
		if strings.Contains(r.MeterName, "SLA") {
			return r.SkuID + "/sla"
		}
		return r.SkuID + "/lts"
	}
	return r.SkuID
}

func formatTier(tier float64) string {
	return strconv.FormatFloat(tier, 'f', -1, 64)
}
