package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gradetally/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ReportLabel: "CLI Test",
		ExportFile:  filepath.Join(t.TempDir(), "out.csv"),
		Currency:    "USD",
		LogLevel:    "info",
	}
}

func TestSetupLoggerFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := SetupLogger(testConfig(t), &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "component=app")
}

func TestSetupLoggerFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogFile = filepath.Join(t.TempDir(), "gradetally.log")

	var buf bytes.Buffer
	logger, closeFn, err := SetupLogger(cfg, &buf)
	require.NoError(t, err)
	logger.Warn("to file")
	require.NoError(t, closeFn())

	require.Empty(t, buf.String())
	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")
}

func TestSetupLoggerBadLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "loud"
	_, _, err := SetupLogger(cfg, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewServiceUsesCostTableFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.CostTableFile = filepath.Join(t.TempDir(), "costs.yaml")
	require.NoError(t, os.WriteFile(cfg.CostTableFile, []byte("Card A: 40\n"), 0o644))

	var buf bytes.Buffer
	logger, closeFn, err := SetupLogger(cfg, &buf)
	require.NoError(t, err)
	defer closeFn()

	svc, err := NewService(cfg, logger)
	require.NoError(t, err)
	require.Equal(t, cfg.ExportFile, svc.Report().Path())
	require.True(t, svc.Report().Cost("Card A").Equal(decimal.NewFromInt(40)))
	require.True(t, svc.Report().Cost("Card B").IsZero())
	require.Contains(t, buf.String(), "cost_entries=1")

	_, err = svc.AddCard(context.Background(), "Card A", "10", "40")
	require.NoError(t, err)
}

func TestLoadCostTableDefault(t *testing.T) {
	table, err := LoadCostTable(testConfig(t))
	require.NoError(t, err)
	require.Len(t, table, 3)
}

func TestLoadAndValidateConfig(t *testing.T) {
	t.Setenv("EXPORT_FILE", filepath.Join(t.TempDir(), "out.csv"))
	t.Setenv("CURRENCY", "eur")
	cfg, err := LoadAndValidateConfig("")
	require.NoError(t, err)
	require.Equal(t, "EUR", cfg.Currency)

	override := filepath.Join(t.TempDir(), "other.csv")
	cfg, err = LoadAndValidateConfig(override)
	require.NoError(t, err)
	require.Equal(t, override, cfg.ExportFile)

	t.Setenv("LOG_LEVEL", "loud")
	_, err = LoadAndValidateConfig("")
	require.Error(t, err)
}
