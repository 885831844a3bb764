package google

import "strings"

// keep decides whether a canonical record is worth storing. Each
// service keeps the sku shapes the estimators downstream ask for.
func keep(r PriceRecord) bool {
	switch r.ServiceID {
	case computeEngineID:
		return keepComputeEngine(r)
	case cloudStorageID:
		return keepCloudStorage(r)
	case cloudSQLID:
		return keepCloudSQL(r)
	case gkeID:
		return r.Description == "Regional Kubernetes Clusters" ||
			r.Description == "Zonal Kubernetes Clusters"
	}
	return true
}

// keepComputeEngine keeps standard cpu/ram meters, premium internet
// egress and the plain persistent-disk groups
func keepComputeEngine(r PriceRecord) bool {
	switch r.ResourceFamily {
	case "Compute":
		meters := strings.Contains(r.Description, "Cpu in") ||
			strings.Contains(r.Description, "Ram in") ||
			strings.Contains(r.Description, "Instance Ram running in") ||
			strings.Contains(r.Description, "Instance Core running in")
		excluded := strings.Contains(r.Description, "Sole Tenancy") ||
			strings.HasPrefix(r.Description, "Spot") ||
			strings.HasPrefix(r.Description, "Memory Optimized") ||
			strings.HasPrefix(r.Description, "Committed Use") ||
			strings.HasPrefix(r.Description, "Reserved")
		return meters && !excluded
	case "Network":
		return r.ResourceGroup == "PremiumInternetEgress"
	case "Storage":
		switch r.ResourceGroup {
		case "LocalSSD":
			return !strings.Contains(r.Description, "Preemptible")
		case "SSD":
			return !strings.Contains(r.Description, "Hyperdisk") &&
				!strings.Contains(r.Description, "Asynchronous")
		case "MachineImage", "PDStandard":
			return true
		}
		return false
	case "License":
		return false
	}
	return true
}

// keepCloudStorage keeps standard, nearline and archive GiB-month
// meters, skipping the multi-region ones
func keepCloudStorage(r PriceRecord) bool {
	switch r.ResourceGroup {
	case "RegionalStorage", "NearlineStorage", "ArchiveStorage":
	default:
		return false
	}
	return r.UsageUnit == "GiBy.mo" && !strings.HasSuffix(r.Description, "-region")
}

var cloudSQLPrefixes = []string{
	"Cloud SQL for PostgreSQL: Zonal - Low cost ",
	"Cloud SQL for PostgreSQL: Zonal - Standard ",
	"Cloud SQL for PostgreSQL: Zonal - vCPU",
	"Cloud SQL for PostgreSQL: Zonal - RAM",
	"Cloud SQL for PostgreSQL: Regional - Low cost",
	"Cloud SQL for PostgreSQL: Regional - Standard",
	"Cloud SQL for PostgreSQL: Regional - vCPU",
	"Cloud SQL for PostgreSQL: Regional - RAM",
	"Cloud SQL: Backups",
}

// keepCloudSQL keeps the PostgreSQL meters
func keepCloudSQL(r PriceRecord) bool {
	switch r.ResourceGroup {
	case "SSD", "PDStandard", "PDSnapshot", "SQLGen2InstancesCPU", "SQLGen2InstancesRAM":
	default:
		return false
	}
	for _, prefix := range cloudSQLPrefixes {
		if strings.HasPrefix(r.Description, prefix) {
			return true
		}
	}
	return false
}
