package azure

import "testing"

func TestSearchCode(t *testing.T) {
	tests := []struct {
		name   string
		record PriceRecord
		want   string
	}{
		{
			"vm on demand",
			PriceRecord{ServiceName: "Virtual Machines", ArmRegionName: "westeurope", ArmSkuName: "Standard_D2s_v3"},
			"westeurope/vm/cmp/Standard_D2s_v3/od",
		},
		{
			"vm one year reservation",
			PriceRecord{ServiceName: "Virtual Machines", ArmRegionName: "westeurope", ArmSkuName: "Standard_D2s_v3", ReservationTerm: "1 Year"},
			"westeurope/vm/cmp/Standard_D2s_v3/1y",
		},
		{
			"vm three years reservation",
			PriceRecord{ServiceName: "Virtual Machines", ArmRegionName: "eastus", ArmSkuName: "Standard_M128ds_v2", ReservationTerm: "3 Years"},
			"eastus/vm/cmp/Standard_M128ds_v2/3y",
		},
		{
			"aks sla meter",
			PriceRecord{ServiceName: "Azure Kubernetes Service", ArmRegionName: "westeurope", MeterName: "Standard Uptime SLA"},
			"westeurope/aks/k8/sla",
		},
		{
			"aks lts meter",
			PriceRecord{ServiceName: "Azure Kubernetes Service", ArmRegionName: "westeurope", MeterName: "Standard Long Term Support"},
			"westeurope/aks/k8/lts",
		},
		{
			"standard ssd disk",
			PriceRecord{ServiceName: "Storage", ArmRegionName: "westeurope", ProductName: "Standard SSD Managed Disks", SkuName: "E10 LRS"},
			"westeurope/str/ssd/E10 LRS/od",
		},
		{
			"premium ssd disk",
			PriceRecord{ServiceName: "Storage", ArmRegionName: "westeurope", ProductName: "Premium SSD Managed Disks", SkuName: "P30 LRS"},
			"westeurope/str/pssd/P30 LRS/od",
		},
		{
			"block blob",
			PriceRecord{ServiceName: "Storage", ArmRegionName: "westeurope", ProductName: "General Block Blob v2", SkuName: "Hot ZRS"},
			"westeurope/str/blob/Hot ZRS/od",
		},
		{
			"bandwidth tier",
			PriceRecord{ServiceName: "Bandwidth", ArmRegionName: "westeurope", TierMinimumUnits: 10},
			"westeurope/net/egress/std//10",
		},
		{
			"bandwidth first tier",
			PriceRecord{ServiceName: "Bandwidth", ArmRegionName: "westeurope", TierMinimumUnits: 0},
			"westeurope/net/egress/std//0",
		},
		{
			"postgresql compute series",
			PriceRecord{
				ServiceName:   "Azure Database for PostgreSQL",
				ArmRegionName: "westeurope",
				ArmSkuName:    "AzureDB_PostgreSQL_Flexible_Server_General_Purpose_Ddsv4Series_Compute",
				SkuName:       "4 vCores",
			},
			"westeurope/sql/cpu/D4ds_v4/od",
		},
		{
			"postgresql compute without core count",
			PriceRecord{
				ServiceName:   "Azure Database for PostgreSQL",
				ArmRegionName: "westeurope",
				ArmSkuName:    "AzureDB_PostgreSQL_Flexible_Server_General_Purpose_Edsv5Series_Compute",
				SkuName:       "vCore",
			},
			"westeurope/sql/cpu/E1ds_v5/od",
		},
		{
			"postgresql storage",
			PriceRecord{ServiceName: "Azure Database for PostgreSQL", ArmRegionName: "westeurope", SkuName: "Storage"},
			"westeurope/sql/str/storage",
		},
		{
			"postgresql backup storage",
			PriceRecord{ServiceName: "Azure Database for PostgreSQL", ArmRegionName: "westeurope", SkuName: "Backup Storage LRS"},
			"westeurope/sql/str/backup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := searchCode(tt.record)
			if got != tt.want {
				t.Errorf("searchCode = %q, want %q", got, tt.want)
			}
			if again := searchCode(tt.record); again != got {
				t.Errorf("searchCode not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestUniqueSkuID(t *testing.T) {
	tests := []struct {
		name   string
		record PriceRecord
		want   string
	}{
		{
			"bandwidth tier suffix",
			PriceRecord{ServiceName: "Bandwidth", SkuID: "DZH-1", TierMinimumUnits: 10},
			"DZH-1/10",
		},
		{
			"aks sla suffix",
			PriceRecord{ServiceName: "Azure Kubernetes Service", SkuID: "DZH-2", MeterName: "Standard Uptime SLA"},
			"DZH-2/sla",
		},
		{
			"aks lts suffix",
			PriceRecord{ServiceName: "Azure Kubernetes Service", SkuID: "DZH-2", MeterName: "LTS Support"},
			"DZH-2/lts",
		},
		{
			"other services untouched",
			PriceRecord{ServiceName: "Virtual Machines", SkuID: "DZH-3"},
			"DZH-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uniqueSkuID(tt.record); got != tt.want {
				t.Errorf("uniqueSkuID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildStat(t *testing.T) {
	record := PriceRecord{
		SearchCode:       "westeurope/str/ssd/E10 LRS/1y",
		SkuID:            "DZH-9",
		ArmRegionName:    "westeurope",
		ProductID:        "DZH318Z0BP8L",
		ProductName:      "Standard SSD Managed Disks",
		TierMinimumUnits: 0,
		Price:            9.29,
	}

	stat := buildStat("20260828", record)
	if stat.SkuName != "E10 LRS" {
		t.Errorf("SkuName = %q, want E10 LRS", stat.SkuName)
	}
	if stat.ReservationTerm != "1y" {
		t.Errorf("ReservationTerm = %q, want 1y", stat.ReservationTerm)
	}
	if stat.DateCode != "20260828" || stat.SkuID != "DZH-9" {
		t.Errorf("stat key = (%s, %s)", stat.DateCode, stat.SkuID)
	}
}
