package amazon

import "testing"

func TestKeep(t *testing.T) {
	ec2Compute := PriceRecord{
		ServiceCode:   "AmazonEC2",
		ProductFamily: "Compute Instance",
		Operation:     "RunInstances",
		Tenancy:       "Shared",
		TermType:      "OnDemand",
		Price:         0.1,
	}

	tests := []struct {
		name   string
		record PriceRecord
		want   bool
	}{
		{"ec2 shared on demand", ec2Compute, true},
		{"ec2 dedicated tenancy", with(ec2Compute, func(r *PriceRecord) { r.Tenancy = "Dedicated" }), false},
		{"ec2 zero price", with(ec2Compute, func(r *PriceRecord) { r.Price = 0 }), false},
		{"ec2 standard offering class", with(ec2Compute, func(r *PriceRecord) { r.OfferingClass = "standard" }), false},
		{"ec2 unused reservation", with(ec2Compute, func(r *PriceRecord) { r.PriceDescription = "Unused Reservation m5" }), false},
		{"ec2 reserved no upfront", with(ec2Compute, func(r *PriceRecord) { r.TermType = "Reserved"; r.PurchaseOption = "No Upfront" }), true},
		{"ec2 reserved all upfront", with(ec2Compute, func(r *PriceRecord) { r.TermType = "Reserved"; r.PurchaseOption = "All Upfront" }), false},
		{"ec2 storage", PriceRecord{ServiceCode: "AmazonEC2", ProductFamily: "Storage", VolumeType: "General Purpose"}, true},
		{"ec2 provisioned iops storage", PriceRecord{ServiceCode: "AmazonEC2", ProductFamily: "Storage", VolumeType: "Provisioned IOPS"}, false},
		{
			"rds postgresql instance",
			PriceRecord{ServiceCode: "AmazonRDS", DatabaseEngine: "PostgreSQL", TermType: "OnDemand", ProductFamily: "Database Instance", Price: 0.05},
			true,
		},
		{
			"rds mysql instance",
			PriceRecord{ServiceCode: "AmazonRDS", DatabaseEngine: "MySQL", TermType: "OnDemand", ProductFamily: "Database Instance", Price: 0.05},
			false,
		},
		{
			"rds readable standby",
			PriceRecord{ServiceCode: "AmazonRDS", DatabaseEngine: "PostgreSQL", TermType: "OnDemand", ProductFamily: "Database Instance", DeploymentOption: "Multi-AZ (readable standbys)", Price: 0.05},
			false,
		},
		{"s3 standard first tier", PriceRecord{ServiceCode: "AmazonS3", VolumeType: "Standard", StartingRange: "0"}, true},
		{"s3 later tier", PriceRecord{ServiceCode: "AmazonS3", VolumeType: "Standard", StartingRange: "51200"}, false},
		{"eks cluster hours", PriceRecord{ServiceCode: "AmazonEKS", UsageType: "EU-AmazonEKS-Hours:perCluster"}, true},
		{"eks other usage", PriceRecord{ServiceCode: "AmazonEKS", UsageType: "EU-SomethingElse"}, false},
		{
			"data transfer out",
			PriceRecord{ServiceCode: "AWSDataTransfer", FromLocationType: "AWS Region", PriceDescription: "per GB - first 10 TB / month data transfer out"},
			true,
		},
		{
			"data transfer in",
			PriceRecord{ServiceCode: "AWSDataTransfer", FromLocationType: "AWS Region", PriceDescription: "per GB data transfer in"},
			false,
		},
		{"unknown service passes", PriceRecord{ServiceCode: "AmazonRoute53"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keep(tt.record); got != tt.want {
				t.Errorf("keep = %v, want %v", got, tt.want)
			}
		})
	}
}

func with(r PriceRecord, mutate func(*PriceRecord)) PriceRecord {
	mutate(&r)
	return r
}
