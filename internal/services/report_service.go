package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"gradetally/internal/core"
	"gradetally/internal/log"
	"gradetally/internal/report"
)

// ReportService turns raw user input into report operations and logs them.
type ReportService struct {
	report   *report.Report
	logger   *log.Logger
	currency string
}

func NewReportService(r *report.Report, logger *log.Logger, currency string) *ReportService {
	if logger == nil {
		logger = log.Discard()
	}
	return &ReportService{
		report:   r,
		logger:   logger.WithComponent(log.ComponentReport).With(log.FieldReport, r.Label()),
		currency: currency,
	}
}

// Report exposes the underlying aggregator for read-only views.
func (s *ReportService) Report() *report.Report { return s.report }

// AddCard parses the raw fields and records the card.
func (s *ReportService) AddCard(ctx context.Context, name, grade, cost string) (core.Card, error) {
	c, err := core.ParseCard(name, grade, cost)
	if err != nil {
		s.fail(ctx, log.OpAdd, name, err)
		return core.Card{}, err
	}
	s.report.AddCard(c)

	counts, _ := s.report.Counts(c.Name())
	s.logger.WithFields(log.NewFields().WithOperation(log.OpAdd).WithCard(c.Name(), c.Grade(), true)).
		InfoContext(ctx, "Card added",
			log.FieldBucket, c.Bucket().String(),
			log.FieldQuantity, counts.Total,
			log.FieldGraded, s.report.Totals().Graded)
	return c, nil
}

// RemoveCard parses the raw fields and removes one matching card.
func (s *ReportService) RemoveCard(ctx context.Context, name, grade, cost string) (core.Card, error) {
	c, err := core.ParseCard(name, grade, cost)
	if err != nil {
		s.fail(ctx, log.OpRemove, name, err)
		return core.Card{}, err
	}
	if err := s.report.RemoveCard(c); err != nil {
		err = fmt.Errorf("remove %s: %w", c, err)
		s.fail(ctx, log.OpRemove, name, err)
		return core.Card{}, err
	}

	_, still := s.report.Counts(c.Name())
	s.logger.WithFields(log.NewFields().WithOperation(log.OpRemove).WithCard(c.Name(), c.Grade(), true)).
		InfoContext(ctx, "Card removed",
			"purged", !still,
			log.FieldGraded, s.report.Totals().Graded)
	return c, nil
}

// UpdateRevenue parses the amount and overwrites the revenue for name.
func (s *ReportService) UpdateRevenue(ctx context.Context, name, revenue string) error {
	amount, err := core.ParseAmount(revenue)
	if err != nil {
		s.fail(ctx, log.OpRevenue, name, err)
		return err
	}
	if err := s.report.UpdateRevenue(name, amount); err != nil {
		err = fmt.Errorf("card %s: %w", name, err)
		s.fail(ctx, log.OpRevenue, name, err)
		return err
	}

	s.logger.WithFields(log.NewFields().WithOperation(log.OpRevenue).WithCard(name, 0, false).
		WithAmounts(s.report.Cost(name).String(), amount.String(), s.report.Profit(name).String())).
		InfoContext(ctx, "Revenue updated")
	return nil
}

// Export writes the report file and returns its path.
func (s *ReportService) Export(ctx context.Context) (string, error) {
	path := s.report.Path()
	if err := s.report.WriteToFile(); err != nil {
		s.logger.Failure(ctx, "Export failed", log.ErrorTypeIO, err,
			log.FieldOperation, log.OpExport, log.FieldPath, path)
		return path, err
	}
	s.logger.InfoContext(ctx, "Report exported",
		log.FieldOperation, log.OpExport,
		log.FieldPath, path,
		log.FieldRows, len(s.report.Rows()))
	return path, nil
}

func (s *ReportService) Summary() []report.Row { return s.report.Rows() }
func (s *ReportService) Totals() report.Totals { return s.report.Totals() }
func (s *ReportService) Currency() string      { return s.currency }

// Format renders an amount in the configured currency.
func (s *ReportService) Format(amount decimal.Decimal) string {
	return core.FormatMoney(amount, s.currency)
}

func (s *ReportService) fail(ctx context.Context, op, name string, err error) {
	s.logger.Failure(ctx, "Operation rejected", errorType(err),
		err, log.FieldOperation, op, log.FieldCardName, name)
}

func errorType(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidGrade), errors.Is(err, core.ErrInvalidCost), errors.Is(err, core.ErrInvalidAmount):
		return log.ErrorTypeValidation
	case errors.Is(err, report.ErrNameNotFound), errors.Is(err, report.ErrLineItemNotFound):
		return log.ErrorTypeNotFound
	case errors.Is(err, report.ErrExport):
		return log.ErrorTypeIO
	default:
		return log.ErrorTypeInternal
	}
}

// Describe turns a service error into the short message shown to the user.
func Describe(err error, name string) string {
	switch {
	case errors.Is(err, report.ErrNameNotFound):
		return fmt.Sprintf("Card %s not found.", name)
	case errors.Is(err, core.ErrInvalidGrade):
		return "Card grade must be an integer."
	case errors.Is(err, core.ErrInvalidCost):
		return "Card cost must be a number."
	case errors.Is(err, core.ErrInvalidAmount):
		return "Revenue must be a number."
	case errors.Is(err, report.ErrLineItemNotFound):
		return "No matching card recorded."
	case errors.Is(err, report.ErrExport):
		return fmt.Sprintf("Could not write report: %v", err)
	default:
		return err.Error()
	}
}
