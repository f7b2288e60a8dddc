package services

import (
	"context"
	"fmt"

	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"github.com/taxdesk/tax-service/internal/types/params"
	"go.uber.org/zap"
)

// OtherIncomeService handles non-wage income. Amounts may be negative, a
// capital loss for example.
type OtherIncomeService struct {
	queries db.Querier
	tx      interfaces.TxRunner
	calc    *returnCalculator
	logger  *zap.Logger
}

// NewOtherIncomeService creates a new other income service
func NewOtherIncomeService(queries db.Querier, tx interfaces.TxRunner, calculator *taxcalc.Calculator) *OtherIncomeService {
	return &OtherIncomeService{
		queries: queries,
		tx:      tx,
		calc:    &returnCalculator{calculator: calculator, logger: logger.Named("other_income_service")},
		logger:  logger.Named("other_income_service"),
	}
}

var _ interfaces.OtherIncomeService = (*OtherIncomeService)(nil)

// GetOtherIncome returns the other income of a return
func (s *OtherIncomeService) GetOtherIncome(ctx context.Context, userID, taxReturnID int64) (*taxcalc.OtherIncome, error) {
	if _, err := ownedReturn(ctx, s.queries, userID, taxReturnID, false); err != nil {
		return nil, err
	}
	row, err := s.queries.GetOtherIncomeByTaxReturn(ctx, taxReturnID)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound(constants.OtherIncomeNotFound)
		}
		return nil, fmt.Errorf("failed to get other income: %w", err)
	}
	income := otherIncomeFromDB(row)
	return &income, nil
}

// CreateOtherIncome stores the other income of a return
func (s *OtherIncomeService) CreateOtherIncome(ctx context.Context, in params.OtherIncomeParams) (*taxcalc.OtherIncome, error) {
	var income taxcalc.OtherIncome
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		ret, err := ownedReturn(ctx, q, in.UserID, in.TaxReturnID, true)
		if err != nil {
			return err
		}
		o := in.Income
		row, err := q.CreateOtherIncome(ctx, db.CreateOtherIncomeParams{
			TaxReturnID:           in.TaxReturnID,
			LongTermCapitalGains:  o.LongTermCapitalGains,
			ShortTermCapitalGains: o.ShortTermCapitalGains,
			OtherInvestmentIncome: o.OtherInvestmentIncome,
			NetBusinessIncome:     o.NetBusinessIncome,
			AdditionalIncome:      o.AdditionalIncome,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return duplicate(constants.DuplicateOtherIncome)
			}
			return fmt.Errorf("failed to create other income: %w", err)
		}
		income = otherIncomeFromDB(row)
		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Other income created", zap.Int64("tax_return_id", in.TaxReturnID))
	return &income, nil
}

// UpdateOtherIncome replaces the other income of a return
func (s *OtherIncomeService) UpdateOtherIncome(ctx context.Context, in params.OtherIncomeParams) (*taxcalc.OtherIncome, error) {
	var income taxcalc.OtherIncome
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		ret, err := ownedReturn(ctx, q, in.UserID, in.TaxReturnID, true)
		if err != nil {
			return err
		}
		o := in.Income
		row, err := q.UpdateOtherIncome(ctx, db.UpdateOtherIncomeParams{
			TaxReturnID:           in.TaxReturnID,
			LongTermCapitalGains:  o.LongTermCapitalGains,
			ShortTermCapitalGains: o.ShortTermCapitalGains,
			OtherInvestmentIncome: o.OtherInvestmentIncome,
			NetBusinessIncome:     o.NetBusinessIncome,
			AdditionalIncome:      o.AdditionalIncome,
		})
		if err != nil {
			if isNoRows(err) {
				return notFound(constants.OtherIncomeNotFound)
			}
			return fmt.Errorf("failed to update other income: %w", err)
		}
		income = otherIncomeFromDB(row)
		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &income, nil
}

// DeleteOtherIncome removes the other income of a return
func (s *OtherIncomeService) DeleteOtherIncome(ctx context.Context, userID, taxReturnID int64) error {
	return s.tx.InTx(ctx, func(q db.Querier) error {
		ret, err := ownedReturn(ctx, q, userID, taxReturnID, true)
		if err != nil {
			return err
		}
		deleted, err := q.DeleteOtherIncomeByTaxReturn(ctx, taxReturnID)
		if err != nil {
			return fmt.Errorf("failed to delete other income: %w", err)
		}
		if deleted == 0 {
			return notFound(constants.OtherIncomeNotFound)
		}
		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
}
