package azure

import "strings"

// keep decides whether a canonical record is worth storing. Every rule
// starts with region allowlist membership; the API cannot filter on
// region and product at once.
func keep(r PriceRecord, regions map[string]bool) bool {
	switch r.ServiceName {
	case "Virtual Machines":
		return regions[r.ArmRegionName] &&
			!strings.Contains(r.SkuName, "Low Priority") &&
			!strings.Contains(r.SkuName, "Spot")
	case "Azure Kubernetes Service":
		return regions[r.ArmRegionName]
	case "Storage":
		return regions[r.ArmRegionName] && keepStorage(r)
	case "Bandwidth":
		return regions[r.ArmRegionName] && strings.HasSuffix(r.MeterName, "Out")
	case "Azure Database for PostgreSQL":
		return regions[r.ArmRegionName] &&
			(r.MeterName == "vCore" || r.SkuName == "Storage" ||
				r.SkuName == "Backup Storage LRS" || r.SkuName == "Standard")
	}
	return true
}

// keepStorage keeps managed disks plus the file/blob meters the
// estimators use
func keepStorage(r PriceRecord) bool {
	if strings.HasSuffix(r.ProductName, "Disks") && strings.HasSuffix(r.MeterName, "Disk") {
		return true
	}
	if r.ProductName == "Files v2" && r.MeterName == "Cool GRS Data Stored" {
		return true
	}
	return r.ProductName == "General Block Blob v2" &&
		strings.HasSuffix(r.MeterName, " ZRS Data Stored") &&
		r.TierMinimumUnits == 0
}
