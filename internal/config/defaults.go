package config

// Seed content for the allowlist collections. The scrapers only walk
// entries with Active set; the rest stay in the store as documentation
// of what has been tried and parked.

// DefaultAmazonRegions returns the Amazon Cloud region allowlist
func DefaultAmazonRegions() []Region {
	return []Region{
		{Name: "us-east-1", DisplayName: "N. Virginia", RegionalDisplayName: "US East (N. Virginia)", RegionalName: "US East", Active: true},
		{Name: "us-east-2", DisplayName: "Ohio", RegionalDisplayName: "US East (Ohio)", RegionalName: "US East", Active: false},
		{Name: "us-west-2", DisplayName: "Oregon", RegionalDisplayName: "US West (Oregon)", RegionalName: "US West", Active: true},
		{Name: "eu-west-1", DisplayName: "Ireland", RegionalDisplayName: "EU (Ireland)", RegionalName: "Europe", Active: true},
		{Name: "eu-west-3", DisplayName: "Paris", RegionalDisplayName: "EU (Paris)", RegionalName: "Europe", Active: true},
		{Name: "eu-central-1", DisplayName: "Frankfurt", RegionalDisplayName: "EU (Frankfurt)", RegionalName: "Europe", Active: true},
		{Name: "eu-south-2", DisplayName: "Spain", RegionalDisplayName: "EU (Spain)", RegionalName: "Europe", Active: true},
		{Name: "ap-southeast-1", DisplayName: "Singapore", RegionalDisplayName: "Asia Pacific (Singapore)", RegionalName: "Asia Pacific", Active: false},
	}
}

// DefaultAmazonServices returns the Amazon Cloud service allowlist.
// EC2 and RDS are fetched per region; their all-region offer files are
// too large to stage locally.
func DefaultAmazonServices() []AmazonService {
	return []AmazonService{
		{Name: "AmazonEC2", ServiceID: "AmazonEC2", DisplayName: "Elastic Compute Cloud", Active: true, ScrapePerRegion: true},
		{Name: "AmazonRDS", ServiceID: "AmazonRDS", DisplayName: "Relational Database Service", Active: true, ScrapePerRegion: true},
		{Name: "AmazonS3", ServiceID: "AmazonS3", DisplayName: "Simple Storage Service", Active: true, ScrapePerRegion: false},
		{Name: "AmazonEKS", ServiceID: "AmazonEKS", DisplayName: "Elastic Kubernetes Service", Active: true, ScrapePerRegion: false},
		{Name: "AWSDataTransfer", ServiceID: "AWSDataTransfer", DisplayName: "Data Transfer", Active: true, ScrapePerRegion: false},
	}
}

// DefaultAzureRegions returns the Azure Cloud region allowlist
func DefaultAzureRegions() []Region {
	return []Region{
		{Name: "eastus", DisplayName: "East US", RegionalDisplayName: "(US) East US", RegionalName: "US", Active: true},
		{Name: "eastus2", DisplayName: "East US 2", RegionalDisplayName: "(US) East US 2", RegionalName: "US", Active: false},
		{Name: "westus2", DisplayName: "West US 2", RegionalDisplayName: "(US) West US 2", RegionalName: "US", Active: true},
		{Name: "northeurope", DisplayName: "North Europe", RegionalDisplayName: "(Europe) North Europe", RegionalName: "Europe", Active: true},
		{Name: "westeurope", DisplayName: "West Europe", RegionalDisplayName: "(Europe) West Europe", RegionalName: "Europe", Active: true},
		{Name: "francecentral", DisplayName: "France Central", RegionalDisplayName: "(Europe) France Central", RegionalName: "Europe", Active: true},
		{Name: "spaincentral", DisplayName: "Spain Central", RegionalDisplayName: "(Europe) Spain Central", RegionalName: "Europe", Active: true},
		{Name: "southeastasia", DisplayName: "Southeast Asia", RegionalDisplayName: "(Asia Pacific) Southeast Asia", RegionalName: "Asia Pacific", Active: false},
	}
}

// DefaultAzureProducts returns the Azure Cloud product allowlist
func DefaultAzureProducts() []AzureProduct {
	return []AzureProduct{
		{ProductName: "Virtual Machines Dv3 Series", ProductID: "DZH318Z0BP04", ServiceName: "Virtual Machines", ServiceID: "DZH313Z7MMC8", Active: true},
		{ProductName: "Virtual Machines Dsv5 Series", ProductID: "DZH318Z0D23N", ServiceName: "Virtual Machines", ServiceID: "DZH313Z7MMC8", Active: true},
		{ProductName: "Virtual Machines Esv5 Series", ProductID: "DZH318Z0D235", ServiceName: "Virtual Machines", ServiceID: "DZH313Z7MMC8", Active: true},
		{ProductName: "Azure Kubernetes Service", ProductID: "DZH318Z0CSTJ", ServiceName: "Azure Kubernetes Service", ServiceID: "DZH315MZNNSL", Active: true},
		{ProductName: "Premium SSD Managed Disks", ProductID: "DZH318Z0BNZ6", ServiceName: "Storage", ServiceID: "DZH317F1HKN0", Active: true},
		{ProductName: "Standard SSD Managed Disks", ProductID: "DZH318Z0BP8L", ServiceName: "Storage", ServiceID: "DZH317F1HKN0", Active: true},
		{ProductName: "Standard HDD Managed Disks", ProductID: "DZH318Z0BNZD", ServiceName: "Storage", ServiceID: "DZH317F1HKN0", Active: true},
		{ProductName: "General Block Blob v2 Hierarchical Namespace", ProductID: "DZH318Z0BPH2", ServiceName: "Storage", ServiceID: "DZH317F1HKN0", Active: true},
		{ProductName: "Files v2", ProductID: "DZH318Z0BP7Z", ServiceName: "Storage", ServiceID: "DZH317F1HKN0", Active: true},
		{ProductName: "Bandwidth", ProductID: "DZH318Z0BNWF", ServiceName: "Bandwidth", ServiceID: "DZH315NZQ0F3", Active: true},
	}
}

// DefaultGoogleRegions returns the Google Cloud region allowlist
func DefaultGoogleRegions() []Region {
	return []Region{
		{Name: "us-central1", DisplayName: "Iowa", RegionalDisplayName: "us-central1 (Iowa)", RegionalName: "North America", Active: true},
		{Name: "us-east1", DisplayName: "South Carolina", RegionalDisplayName: "us-east1 (South Carolina)", RegionalName: "North America", Active: true},
		{Name: "europe-west1", DisplayName: "Belgium", RegionalDisplayName: "europe-west1 (Belgium)", RegionalName: "Europe", Active: true},
		{Name: "europe-west3", DisplayName: "Frankfurt", RegionalDisplayName: "europe-west3 (Frankfurt)", RegionalName: "Europe", Active: true},
		{Name: "europe-southwest1", DisplayName: "Madrid", RegionalDisplayName: "europe-southwest1 (Madrid)", RegionalName: "Europe", Active: true},
		{Name: "asia-east1", DisplayName: "Taiwan", RegionalDisplayName: "asia-east1 (Taiwan)", RegionalName: "Asia Pacific", Active: false},
	}
}

// DefaultGoogleServices returns the Google Cloud service allowlist
func DefaultGoogleServices() []GoogleService {
	return []GoogleService{
		{Name: "services/6F81-5844-456A", ServiceID: "6F81-5844-456A", DisplayName: "Compute Engine", Active: true},
		{Name: "services/95FF-2EF5-5EA1", ServiceID: "95FF-2EF5-5EA1", DisplayName: "Cloud Storage", Active: true},
		{Name: "services/9662-B51E-5089", ServiceID: "9662-B51E-5089", DisplayName: "Cloud SQL", Active: true},
		{Name: "services/CCD8-9BF1-090E", ServiceID: "CCD8-9BF1-090E", DisplayName: "Kubernetes Engine", Active: true},
	}
}
