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

// DeductionService handles deductions claimed on tax returns
type DeductionService struct {
	queries db.Querier
	tx      interfaces.TxRunner
	calc    *returnCalculator
	logger  *zap.Logger
}

// NewDeductionService creates a new deduction service
func NewDeductionService(queries db.Querier, tx interfaces.TxRunner, calculator *taxcalc.Calculator) *DeductionService {
	return &DeductionService{
		queries: queries,
		tx:      tx,
		calc:    &returnCalculator{calculator: calculator, logger: logger.Named("deduction_service")},
		logger:  logger.Named("deduction_service"),
	}
}

var _ interfaces.DeductionService = (*DeductionService)(nil)

// ClaimDeduction attaches a reference deduction to a return. Each deduction
// can be claimed once per return.
func (s *DeductionService) ClaimDeduction(ctx context.Context, in params.ClaimDeductionParams) (*taxcalc.ClaimedDeduction, error) {
	if in.AmountSpent.IsNegative() {
		return nil, invalid(constants.InvalidAmount)
	}

	var claimed taxcalc.ClaimedDeduction
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		row, err := ownedReturn(ctx, q, in.UserID, in.TaxReturnID, true)
		if err != nil {
			return err
		}

		deduction, err := q.GetDeduction(ctx, in.DeductionID)
		if err != nil {
			if isNoRows(err) {
				return notFound(constants.DeductionNotFound)
			}
			return fmt.Errorf("failed to get deduction: %w", err)
		}

		created, err := q.CreateTaxReturnDeduction(ctx, db.CreateTaxReturnDeductionParams{
			TaxReturnID: in.TaxReturnID,
			DeductionID: in.DeductionID,
			AmountSpent: in.AmountSpent,
		})
		if err != nil {
			switch {
			case isUniqueViolation(err):
				return duplicate(constants.DuplicateDeduction)
			case isForeignKeyViolation(err):
				return notFound(constants.DeductionNotFound)
			}
			return fmt.Errorf("failed to claim deduction: %w", err)
		}

		claimed = taxcalc.ClaimedDeduction{
			ID:          created.ID,
			TaxReturnID: created.TaxReturnID,
			DeductionID: deduction.ID,
			Name:        deduction.Name,
			Itemized:    deduction.Itemized,
			AmountSpent: created.AmountSpent,
			AGILimit:    deduction.AgiLimit,
		}
		_, err = s.calc.recalculate(ctx, q, row)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deduction claimed",
		zap.Int64("tax_return_id", in.TaxReturnID),
		zap.Int64("deduction_id", in.DeductionID),
		zap.String("amount_spent", in.AmountSpent.StringFixed(2)))
	return &claimed, nil
}

// ListClaimedDeductions lists the deductions claimed on a return
func (s *DeductionService) ListClaimedDeductions(ctx context.Context, userID, taxReturnID int64) ([]taxcalc.ClaimedDeduction, error) {
	if _, err := ownedReturn(ctx, s.queries, userID, taxReturnID, false); err != nil {
		return nil, err
	}
	rows, err := s.queries.ListTaxReturnDeductions(ctx, taxReturnID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	return claimedDeductionsFromDB(rows), nil
}

// claimedOnOwnedReturn loads a claimed deduction and locks the return it belongs to.
func claimedOnOwnedReturn(ctx context.Context, q db.Querier, userID, claimedID int64) (db.TaxReturnDeductionDetail, db.TaxReturn, error) {
	detail, err := q.GetTaxReturnDeduction(ctx, claimedID)
	if err != nil {
		if isNoRows(err) {
			return db.TaxReturnDeductionDetail{}, db.TaxReturn{}, notFound(constants.ClaimedDeductionNotFound)
		}
		return db.TaxReturnDeductionDetail{}, db.TaxReturn{}, fmt.Errorf("failed to get claimed deduction: %w", err)
	}
	row, err := ownedReturn(ctx, q, userID, detail.TaxReturnID, true)
	if err != nil {
		return db.TaxReturnDeductionDetail{}, db.TaxReturn{}, err
	}
	return detail, row, nil
}

// UpdateClaimedDeduction changes the amount spent on a claimed deduction
func (s *DeductionService) UpdateClaimedDeduction(ctx context.Context, in params.UpdateClaimedDeductionParams) (*taxcalc.ClaimedDeduction, error) {
	if in.AmountSpent.IsNegative() {
		return nil, invalid(constants.InvalidAmount)
	}

	var claimed taxcalc.ClaimedDeduction
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		detail, row, err := claimedOnOwnedReturn(ctx, q, in.UserID, in.ID)
		if err != nil {
			return err
		}
		updated, err := q.UpdateTaxReturnDeduction(ctx, db.UpdateTaxReturnDeductionParams{
			ID:          in.ID,
			AmountSpent: in.AmountSpent,
		})
		if err != nil {
			return fmt.Errorf("failed to update claimed deduction: %w", err)
		}

		detail.AmountSpent = updated.AmountSpent
		claimed = claimedDeductionFromDB(detail)
		_, err = s.calc.recalculate(ctx, q, row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &claimed, nil
}

// DeleteClaimedDeduction removes a claimed deduction from its return
func (s *DeductionService) DeleteClaimedDeduction(ctx context.Context, userID, claimedDeductionID int64) error {
	return s.tx.InTx(ctx, func(q db.Querier) error {
		_, row, err := claimedOnOwnedReturn(ctx, q, userID, claimedDeductionID)
		if err != nil {
			return err
		}
		if err := q.DeleteTaxReturnDeduction(ctx, claimedDeductionID); err != nil {
			return fmt.Errorf("failed to delete claimed deduction: %w", err)
		}
		_, err = s.calc.recalculate(ctx, q, row)
		return err
	})
}
