package google

import "testing"

func TestKeep(t *testing.T) {
	tests := []struct {
		name   string
		record PriceRecord
		want   bool
	}{
		{"n1 cpu on demand", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Compute",
			Description: "N1 Predefined Instance Core running in EMEA",
		}, true},
		{"custom ram", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Compute",
			Description: "Custom Instance Ram running in Belgium",
		}, true},
		{"commitment cpu", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Compute",
			Description: "Commitment v1: Cpu in Belgium for 1 Year",
		}, true},
		{"spot excluded", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Compute",
			Description: "Spot Preemptible Instance Core running in EMEA",
		}, false},
		{"sole tenancy excluded", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Compute",
			Description: "Sole Tenancy Instance Ram running in Belgium",
		}, false},
		{"memory optimized excluded", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Compute",
			Description: "Memory Optimized Instance Core running in EMEA",
		}, false},
		{"non-meter description", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Compute",
			Description: "Licensing Fee for RHEL",
		}, false},
		{"premium egress", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Network",
			ResourceGroup: "PremiumInternetEgress",
			Description:   "Network Internet Egress from EMEA to Americas",
		}, true},
		{"standard egress excluded", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Network",
			ResourceGroup: "StandardInternetEgress",
		}, false},
		{"pd standard", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Storage",
			ResourceGroup: "PDStandard", Description: "Storage PD Capacity",
		}, true},
		{"hyperdisk excluded", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Storage",
			ResourceGroup: "SSD", Description: "Hyperdisk Balanced Capacity",
		}, false},
		{"preemptible local ssd excluded", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "Storage",
			ResourceGroup: "LocalSSD", Description: "SSD backed Local Storage attached to Preemptible VMs",
		}, false},
		{"license excluded", PriceRecord{
			ServiceID: computeEngineID, ResourceFamily: "License",
			Description: "Licensing Fee for SQL Server",
		}, false},
		{"regional storage gib month", PriceRecord{
			ServiceID: cloudStorageID, ResourceGroup: "RegionalStorage",
			UsageUnit: "GiBy.mo", Description: "Standard Storage Belgium",
		}, true},
		{"multi-region storage excluded", PriceRecord{
			ServiceID: cloudStorageID, ResourceGroup: "RegionalStorage",
			UsageUnit: "GiBy.mo", Description: "Standard Storage US Multi-region",
		}, false},
		{"storage operations excluded", PriceRecord{
			ServiceID: cloudStorageID, ResourceGroup: "RegionalStorage",
			UsageUnit: "count", Description: "Class A Operations",
		}, false},
		{"cloud sql vcpu", PriceRecord{
			ServiceID: cloudSQLID, ResourceGroup: "SQLGen2InstancesCPU",
			Description: "Cloud SQL for PostgreSQL: Zonal - vCPU in Belgium",
		}, true},
		{"cloud sql mysql excluded", PriceRecord{
			ServiceID: cloudSQLID, ResourceGroup: "SQLGen2InstancesCPU",
			Description: "Cloud SQL for MySQL: Zonal - vCPU in Belgium",
		}, false},
		{"cloud sql backups", PriceRecord{
			ServiceID: cloudSQLID, ResourceGroup: "PDSnapshot",
			Description: "Cloud SQL: Backups in Belgium",
		}, true},
		{"gke regional cluster", PriceRecord{
			ServiceID: gkeID, Description: "Regional Kubernetes Clusters",
		}, true},
		{"gke autopilot excluded", PriceRecord{
			ServiceID: gkeID, Description: "Autopilot Pod mCPU Requests",
		}, false},
		{"unknown service passes", PriceRecord{
			ServiceID: "0000-0000-0000", Description: "Anything",
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keep(tt.record); got != tt.want {
				t.Errorf("keep() = %v, want %v", got, tt.want)
			}
		})
	}
}
