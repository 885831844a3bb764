// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Mongo contains the document store connection settings
	Mongo MongoConfig `json:"mongo"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Simulator points fetchers at a local fixture-replay server
	Simulator SimulatorConfig `json:"simulator"`

	// Fetch contains HTTP retry client settings
	Fetch FetchConfig `json:"fetch"`

	// StoreFetchContent persists every fetched payload for replay/debugging
	StoreFetchContent bool `json:"store_fetch_content"`

	// DownloadDir is where fetched payloads and CSV files are stored
	DownloadDir string `json:"download_dir"`

	// Amazon contains the Amazon Cloud allowlist
	Amazon AmazonConfig `json:"amazon"`

	// Azure contains the Azure Cloud allowlist
	Azure AzureConfig `json:"azure"`

	// Google contains the Google Cloud allowlist
	Google GoogleConfig `json:"google"`
}

// MongoConfig contains document store settings
type MongoConfig struct {
	// URI is the MongoDB connection string
	URI string `json:"uri"`

	// Database is the database name
	Database string `json:"database"`
}

// SimulatorConfig points provider fetchers at a local test double
type SimulatorConfig struct {
	// Enabled replaces provider base URLs with the simulator URL
	Enabled bool `json:"enabled"`

	// Host is the simulator host
	Host string `json:"host"`

	// Port is the simulator port
	Port int `json:"port"`
}

// BaseURL returns the simulator base URL
func (s SimulatorConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", s.Host, s.Port)
}

// FetchConfig contains HTTP retry client settings
type FetchConfig struct {
	// MaxAttempts is the retry budget per HTTP call
	MaxAttempts int `json:"max_attempts"`

	// AttemptTimeoutSeconds is the base timeout, scaled by MaxAttempts
	AttemptTimeoutSeconds int `json:"attempt_timeout_seconds"`
}

// AmazonConfig contains the Amazon Cloud allowlist
type AmazonConfig struct {
	Regions  []Region        `json:"regions"`
	Services []AmazonService `json:"services"`
}

// AzureConfig contains the Azure Cloud allowlist
type AzureConfig struct {
	Regions  []Region       `json:"regions"`
	Products []AzureProduct `json:"products"`
}

// GoogleConfig contains the Google Cloud allowlist
type GoogleConfig struct {
	// APIKey authenticates Cloud Billing catalog requests
	APIKey string `json:"api_key,omitempty"`

	Regions  []Region        `json:"regions"`
	Services []GoogleService `json:"services"`
}

// Region is a cloud region allowlist entry
type Region struct {
	Name                string `json:"name" bson:"name"`
	DisplayName         string `json:"displayName" bson:"displayName"`
	RegionalDisplayName string `json:"regionalDisplayName" bson:"regionalDisplayName"`
	RegionalName        string `json:"regionalName" bson:"regionalName"`
	Active              bool   `json:"active" bson:"active"`
}

// AmazonService is an Amazon Cloud service allowlist entry
type AmazonService struct {
	Name        string `json:"name" bson:"name"`
	ServiceID   string `json:"serviceId" bson:"serviceId"`
	DisplayName string `json:"displayName" bson:"displayName"`
	Active      bool   `json:"active" bson:"active"`

	// ScrapePerRegion fans the fetch out per region; the all-region
	// offer files for the big services exceed 4GB
	ScrapePerRegion bool `json:"scrapePerRegion" bson:"scrapePerRegion"`
}

// AzureProduct is an Azure Cloud product allowlist entry
type AzureProduct struct {
	ProductName string `json:"productName" bson:"productName"`
	ProductID   string `json:"productId" bson:"productId"`
	ServiceName string `json:"serviceName" bson:"serviceName"`
	ServiceID   string `json:"serviceId" bson:"serviceId"`
	Active      bool   `json:"active" bson:"active"`
}

// GoogleService is a Google Cloud service allowlist entry
type GoogleService struct {
	Name        string `json:"name" bson:"name"`
	ServiceID   string `json:"serviceId" bson:"serviceId"`
	DisplayName string `json:"displayName" bson:"displayName"`
	Active      bool   `json:"active" bson:"active"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	downloadDir := filepath.Join(homeDir, ".scraperhs", "download")

	return &Config{
		Version: "1.0",
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "scraperhs",
		},
		Logging: logging.DefaultConfig(),
		Simulator: SimulatorConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    3000,
		},
		Fetch: FetchConfig{
			MaxAttempts:           4,
			AttemptTimeoutSeconds: 10,
		},
		StoreFetchContent: false,
		DownloadDir:       downloadDir,
		Amazon: AmazonConfig{
			Regions:  DefaultAmazonRegions(),
			Services: DefaultAmazonServices(),
		},
		Azure: AzureConfig{
			Regions:  DefaultAzureRegions(),
			Products: DefaultAzureProducts(),
		},
		Google: GoogleConfig{
			Regions:  DefaultGoogleRegions(),
			Services: DefaultGoogleServices(),
		},
	}
}

// Load loads configuration from a file, falling back to defaults,
// and applies environment overrides on top
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	config.ApplyEnv()
	return config, nil
}

// ApplyEnv applies environment variable overrides
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB"); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv("GCP_API_KEY"); v != "" {
		c.Google.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if os.Getenv("WEBSIMULATOR_ENABLE") == "True" {
		c.Simulator.Enabled = true
	}
	if v := os.Getenv("WEBSIMULATOR_HOST"); v != "" {
		c.Simulator.Host = v
	}
	if v := os.Getenv("WEBSIMULATOR_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Simulator.Port = port
		}
	}
	if os.Getenv("STORE_FETCH_CONTENT") == "True" {
		c.StoreFetchContent = true
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
