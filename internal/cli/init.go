// Package cli provides common CLI initialization utilities and the
// gradetally subcommands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"gradetally/internal/config"
	"gradetally/internal/costs"
	"gradetally/internal/log"
	"gradetally/internal/report"
	"gradetally/internal/services"
)

// LoadEnvFile loads the .env file for local use.
// A missing file is not an error.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment, applies a
// non-empty export path override, and validates it.
func LoadAndValidateConfig(exportFile string) (*config.Config, error) {
	cfg := config.Load()
	if exportFile != "" {
		cfg.ExportFile = exportFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the application logger from cfg and sets it as the
// default logger. When LOG_FILE is empty the logger writes to fallback.
// The returned close function releases the log file, if any.
func SetupLogger(cfg *config.Config, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	out := fallback
	closeFn := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.New(log.Config{Level: level, Component: log.ComponentApp, Output: out})
	log.SetDefault(logger)
	return logger, closeFn, nil
}

// LoadCostTable returns the configured cost table, or the built-in one.
func LoadCostTable(cfg *config.Config) (costs.Table, error) {
	if cfg.CostTableFile == "" {
		return costs.Default(), nil
	}
	return costs.Load(cfg.CostTableFile)
}

// NewService wires a fresh report and its service from cfg.
func NewService(cfg *config.Config, logger *log.Logger) (*services.ReportService, error) {
	table, err := LoadCostTable(cfg)
	if err != nil {
		return nil, err
	}
	r := report.New(cfg.ReportLabel, cfg.ExportFile, table)
	logger.Info("Report ready",
		log.FieldOperation, log.OpStartup,
		log.FieldReport, cfg.ReportLabel,
		log.FieldPath, r.Path(),
		"cost_entries", len(table))
	return services.NewReportService(r, logger, cfg.Currency), nil
}
