package amazon

import "strings"

// keep decides whether a canonical record is worth storing. Each
// service keeps only the line shapes the estimators downstream ask
// for; services without a rule pass through.
func keep(r PriceRecord) bool {
	switch r.ServiceCode {
	case "AmazonEC2":
		return keepEC2(r)
	case "AmazonRDS":
		return keepRDS(r)
	case "AmazonS3":
		return keepS3(r)
	case "AmazonEKS":
		return keepEKS(r)
	case "AWSDataTransfer":
		return keepDataTransfer(r)
	}
	return true
}

// keepEC2 keeps shared-tenancy on-demand or no-upfront compute, plus
// non-provisioned-IOPS storage
func keepEC2(r PriceRecord) bool {
	if r.ProductFamily == "Compute Instance" &&
		r.Operation == "RunInstances" &&
		r.Tenancy == "Shared" &&
		(r.TermType == "OnDemand" || r.PurchaseOption == "No Upfront") &&
		r.OfferingClass != "standard" &&
		r.Price > 0 &&
		!strings.Contains(r.PriceDescription, "Unused Reservation") {
		return true
	}
	return r.VolumeType != "Provisioned IOPS" && r.ProductFamily == "Storage"
}

// keepRDS keeps PostgreSQL instances, storage and snapshots
func keepRDS(r PriceRecord) bool {
	return r.DatabaseEngine == "PostgreSQL" &&
		(r.TermType == "OnDemand" || r.PurchaseOption == "No Upfront") &&
		(r.ProductFamily == "Database Instance" ||
			r.ProductFamily == "Database Storage" ||
			r.ProductFamily == "Storage Snapshot") &&
		!strings.Contains(r.VolumeType, "Provisioned IOPS") &&
		r.DeploymentOption != "Multi-AZ (readable standbys)" &&
		r.Price > 0
}

// keepS3 keeps the first standard-storage pricing tier
func keepS3(r PriceRecord) bool {
	return r.VolumeType == "Standard" && r.StartingRange == "0"
}

// keepEKS keeps cluster-hour and Fargate resource-hour lines
func keepEKS(r PriceRecord) bool {
	return strings.HasSuffix(r.UsageType, "-AmazonEKS-Hours:perCluster") ||
		strings.HasSuffix(r.UsageType, "-Fargate-GB-Hours") ||
		strings.HasSuffix(r.UsageType, "-Fargate-vCPU-Hours:perCPU") ||
		strings.HasSuffix(r.UsageType, "-Fargate-EphemeralStorage-GB-Hours")
}

// keepDataTransfer keeps regional outbound transfer tiers
func keepDataTransfer(r PriceRecord) bool {
	return r.FromLocationType == "AWS Region" &&
		strings.Contains(r.PriceDescription, "month data transfer out")
}
