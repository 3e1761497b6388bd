package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gradetally/internal/core"
	"gradetally/internal/log"
	"gradetally/internal/report"
)

type Config struct {
	// Report
	ReportLabel string
	ExportFile  string

	// Cost table; empty means the built-in table
	CostTableFile string

	// Display
	Currency string

	// Logging
	LogLevel string
	LogFile  string
}

func Load() *Config {
	return &Config{
		ReportLabel: getEnv("REPORT_LABEL", "My Card Report"),
		ExportFile:  getEnv("EXPORT_FILE", report.DefaultExportFile),

		CostTableFile: getEnv("COST_TABLE_FILE", ""),

		Currency: strings.ToUpper(getEnv("CURRENCY", "USD")),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.ExportFile) == "" {
		errors = append(errors, "export file path cannot be empty")
	} else {
		dir := filepath.Dir(c.ExportFile)
		if info, err := os.Stat(dir); err != nil {
			errors = append(errors, fmt.Sprintf("export directory '%s' is not accessible: %v", dir, err))
		} else if !info.IsDir() {
			errors = append(errors, fmt.Sprintf("export directory '%s' is not a directory", dir))
		}
	}

	if c.CostTableFile != "" {
		if _, err := os.Stat(c.CostTableFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("cost table file does not exist: %s", c.CostTableFile))
		}
	}

	if !core.IsKnownCurrency(c.Currency) {
		errors = append(errors, fmt.Sprintf("invalid currency '%s': must be an ISO 4217 code", c.Currency))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
