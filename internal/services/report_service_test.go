package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gradetally/internal/core"
	"gradetally/internal/log"
	"gradetally/internal/report"
)

func newTestService(t *testing.T, path string) (*ReportService, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(log.Config{Output: &buf})
	return NewReportService(report.New("Test Report", path, nil), logger, "USD"), &buf
}

func TestReportService_AddAndRevenue(t *testing.T) {
	ctx := context.Background()
	svc, logs := newTestService(t, "")

	c, err := svc.AddCard(ctx, "Card A", "10", "10.0")
	require.NoError(t, err)
	require.Equal(t, 10, c.Grade())
	_, err = svc.AddCard(ctx, "Card A", " 9 ", "10")
	require.NoError(t, err)
	require.NoError(t, svc.UpdateRevenue(ctx, "Card A", "100"))

	require.Equal(t, report.Totals{Graded: 2, Tens: 1, Nines: 1}, svc.Totals())
	require.True(t, svc.Report().Profit("Card A").Equal(decimal.NewFromInt(90)))
	require.Equal(t, "$90.00", svc.Format(svc.Report().Profit("Card A")))
	require.Contains(t, logs.String(), "operation=add_card")
	require.Contains(t, logs.String(), `report="Test Report"`)
	require.Contains(t, logs.String(), "profit=90")
}

func TestReportService_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, logs := newTestService(t, "")

	_, err := svc.AddCard(ctx, "Card A", "9.0", "10")
	require.ErrorIs(t, err, core.ErrInvalidGrade)
	require.Equal(t, "Card grade must be an integer.", Describe(err, "Card A"))

	_, err = svc.AddCard(ctx, "Card A", "9", "ten")
	require.ErrorIs(t, err, core.ErrInvalidCost)

	_, err = svc.RemoveCard(ctx, "Card A", "9", "10")
	require.ErrorIs(t, err, report.ErrLineItemNotFound)
	require.Equal(t, "No matching card recorded.", Describe(err, "Card A"))

	err = svc.UpdateRevenue(ctx, "Unknown", "5")
	require.ErrorIs(t, err, report.ErrNameNotFound)
	require.Equal(t, "Card Unknown not found.", Describe(err, "Unknown"))
	require.True(t, svc.Report().Profit("Unknown").IsZero())

	err = svc.UpdateRevenue(ctx, "Unknown", "a lot")
	require.ErrorIs(t, err, core.ErrInvalidAmount)

	require.Equal(t, report.Totals{}, svc.Totals())
	require.Contains(t, logs.String(), "error_type=validation_error")
	require.Contains(t, logs.String(), "error_type=not_found_error")
}

func TestReportService_RemoveCard(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "")

	_, err := svc.AddCard(ctx, "Card B", "7", "5")
	require.NoError(t, err)
	// Cost is not part of line-item matching.
	_, err = svc.RemoveCard(ctx, "Card B", "7", "99")
	require.NoError(t, err)
	require.Equal(t, report.Totals{}, svc.Totals())
	require.Empty(t, svc.Summary())
}

func TestReportService_Export(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cards.csv")
	svc, logs := newTestService(t, path)

	_, err := svc.AddCard(ctx, "Card C", "10", "2")
	require.NoError(t, err)
	got, err := svc.Export(ctx)
	require.NoError(t, err)
	require.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Card C,10,1,1,0,0,2.00,0.00,-2.00")
	require.Contains(t, logs.String(), "rows=1")

	bad, _ := newTestService(t, filepath.Join(t.TempDir(), "no", "such", "dir.csv"))
	_, err = bad.Export(ctx)
	require.ErrorIs(t, err, report.ErrExport)
	require.Contains(t, Describe(err, ""), "Could not write report")
}
