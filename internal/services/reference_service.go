package services

import (
	"context"
	"fmt"

	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/reference"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"go.uber.org/zap"
)

// ReferenceService serves the reference tables returns are calculated against
type ReferenceService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewReferenceService creates a new reference service
func NewReferenceService(queries db.Querier) *ReferenceService {
	return &ReferenceService{
		queries: queries,
		logger:  logger.Named("reference_service"),
	}
}

var _ interfaces.ReferenceService = (*ReferenceService)(nil)

// ListDeductions lists every deduction a return may claim
func (s *ReferenceService) ListDeductions(ctx context.Context) ([]taxcalc.Deduction, error) {
	rows, err := s.queries.ListDeductions(ctx)
	if err != nil {
		s.logger.Error("Failed to list deductions", zap.Error(err))
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	deductions := make([]taxcalc.Deduction, 0, len(rows))
	for _, row := range rows {
		deductions = append(deductions, deductionFromDB(row))
	}
	return deductions, nil
}

// LoadReferenceData builds the calculator tables from the embedded defaults
// and the bracket rows stored in the database.
func (s *ReferenceService) LoadReferenceData(ctx context.Context) (*taxcalc.ReferenceData, error) {
	ref, err := reference.Load(ctx, s.queries)
	if err != nil {
		s.logger.Error("Failed to load reference data", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Reference data ready", zap.Ints("years", ref.Brackets.Years()))
	return ref, nil
}
