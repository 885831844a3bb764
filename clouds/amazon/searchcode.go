package amazon

import "strings"

// Search code layout:
//
//	{region}/{service}/{family}/{type}/{leaseContract}/{deployment}/{endingRange}
//
// AmazonEC2        region/ec2/cmp/[a1.large|...]/[1y|3y|od]
//                  region/ec2/str/[gp2|...]
// AmazonRDS        region/rds/cmp/[db.t3.micro|...]/[1y|3y|od]/[Single-AZ|Multi-AZ]
//                  region/rds/str/[gp|gp3|hdd]//[Single-AZ|Multi-AZ]
//                  region/rds/snp
// AmazonS3         region/s3/str/std
// AmazonEKS        region/eks/[ctr|ram|cpu|str]
// AWSDataTransfer  region/net/dt/out///[0|...]

// codeTable maps short codes to the description suffix that selects
// them. Order matters where one suffix is a prefix-free variant of
// another.
var codeTable = []struct {
	code   string
	suffix string
}{
	{"1y", "1yr"},
	{"3y", "3yr"},
	{"gp", "General Purpose"},
	{"gp3", "General Purpose-GP3"},
	{"hdd", "Magnetic"},
	{"ctr", "-AmazonEKS-Hours:perCluster"},
	{"ram", "-Fargate-GB-Hours"},
	{"cpu", "-Fargate-vCPU-Hours:perCPU"},
	{"str", "-Fargate-EphemeralStorage-GB-Hours"},
}

// codeByDesc returns the first short code whose suffix matches desc
func codeByDesc(desc string) string {
	for _, e := range codeTable {
		if strings.HasSuffix(desc, e.suffix) {
			return e.code
		}
	}
	return ""
}

// searchCode derives the deterministic search code for a kept record.
// Same record, same code, always.
func searchCode(r PriceRecord) string {
	switch r.ServiceCode {
	case "AmazonEC2":
		return r.RegionCode + "/ec2/" + searchCodeEC2(r)
	case "AmazonRDS":
		return r.RegionCode + "/rds/" + searchCodeRDS(r)
	case "AmazonS3":
		return r.RegionCode + "/s3/str/std"
	case "AmazonEKS":
		if code := codeByDesc(r.UsageType); code != "" {
			return r.RegionCode + "/eks/" + code
		}
		return ""
	case "AWSDataTransfer":
		return r.RegionCode + "/net/dt/out///" + r.EndingRange
	}
	return ""
}

func searchCodeEC2(r PriceRecord) string {
	switch r.ProductFamily {
	case "Compute Instance":
		code := codeByDesc(r.LeaseContractLength)
		if code == "" {
			code = "od"
		}
		return "cmp/" + r.InstanceType + "/" + code
	case "Storage":
		return "str/" + r.VolumeAPIName
	}
	return ""
}

func searchCodeRDS(r PriceRecord) string {
	switch r.ProductFamily {
	case "Database Instance":
		code := codeByDesc(r.LeaseContractLength)
		if code == "" {
			code = "od"
		}
		return "cmp/" + r.InstanceType + "/" + code + "/" + r.DeploymentOption
	case "Database Storage":
		return "str/" + codeByDesc(r.VolumeType) + "//" + r.DeploymentOption
	case "Storage Snapshot":
		return "snp"
	}
	return ""
}
