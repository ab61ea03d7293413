// =============================================================================
// Sales Analytics System - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file and
// applies defaults for anything left unset. A missing configuration file is
// not an error: the tool runs with defaults so that a bare checkout works
// against the conventional data/ and output/ directories.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// FILE SETTINGS
	// =========================================================================

	// InputFile is the pipe-delimited sales feed to ingest.
	InputFile string `yaml:"input_file"`

	// OutputDir is where the report and enriched data files are written.
	OutputDir string `yaml:"output_dir"`

	// ReportFile is the report file name. Supports the {uuid}, {timestamp}
	// and {date} placeholders.
	ReportFile string `yaml:"report_file"`

	// EnrichedFile is the enriched data file name. Same placeholders.
	EnrichedFile string `yaml:"enriched_file"`

	// ExcelFile is the XLSX report file name, written only when the Excel
	// export is requested. Same placeholders.
	ExcelFile string `yaml:"excel_file"`

	// =========================================================================
	// CATALOG SETTINGS
	// =========================================================================

	// CatalogURL is the product catalog endpoint. The response is expected
	// to be {"products": [{id, title, category, brand, price, rating}]}.
	CatalogURL string `yaml:"catalog_url"`

	// CatalogTimeoutSeconds bounds the single catalog request. There is no
	// retry; on timeout or failure the run continues unenriched.
	CatalogTimeoutSeconds int `yaml:"catalog_timeout_seconds"`

	// =========================================================================
	// ANALYSIS SETTINGS
	// =========================================================================

	// TopProducts is the N used for the top-selling products view.
	TopProducts int `yaml:"top_products"`

	// LowQuantityThreshold marks products as low-performing when their total
	// quantity sold is strictly below it.
	LowQuantityThreshold int `yaml:"low_quantity_threshold"`

	// CurrencySymbol prefixes every monetary value in the report.
	CurrencySymbol string `yaml:"currency_symbol"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls verbosity: "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		InputFile:             "data/sales_data.txt",
		OutputDir:             "output",
		ReportFile:            "sales_report.txt",
		EnrichedFile:          "enriched_sales_data.txt",
		ExcelFile:             "sales_report.xlsx",
		CatalogURL:            "https://dummyjson.com/products?limit=100",
		CatalogTimeoutSeconds: 10,
		TopProducts:           5,
		LowQuantityThreshold:  10,
		CurrencySymbol:        "₹",
		LogLevel:              "info",
	}
}

// Load reads the configuration from path. A missing file yields Default();
// an unreadable or malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills any unset option with its default value.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.InputFile == "" {
		cfg.InputFile = def.InputFile
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.ReportFile == "" {
		cfg.ReportFile = def.ReportFile
	}
	if cfg.EnrichedFile == "" {
		cfg.EnrichedFile = def.EnrichedFile
	}
	if cfg.ExcelFile == "" {
		cfg.ExcelFile = def.ExcelFile
	}
	if cfg.CatalogURL == "" {
		cfg.CatalogURL = def.CatalogURL
	}
	if cfg.CatalogTimeoutSeconds <= 0 {
		cfg.CatalogTimeoutSeconds = def.CatalogTimeoutSeconds
	}
	if cfg.TopProducts <= 0 {
		cfg.TopProducts = def.TopProducts
	}
	if cfg.LowQuantityThreshold <= 0 {
		cfg.LowQuantityThreshold = def.LowQuantityThreshold
	}
	if cfg.CurrencySymbol == "" {
		cfg.CurrencySymbol = def.CurrencySymbol
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// CatalogTimeout returns the catalog request timeout as a duration.
func (c *Config) CatalogTimeout() time.Duration {
	return time.Duration(c.CatalogTimeoutSeconds) * time.Second
}

// EnsureDirs creates the output directory if it does not exist.
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.OutputDir, err)
	}
	return nil
}
