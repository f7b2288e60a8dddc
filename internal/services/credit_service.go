package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"github.com/taxdesk/tax-service/internal/types/params"
	"go.uber.org/zap"
)

// CreditService handles the credit inputs of a return. A return has at most
// one credit record.
type CreditService struct {
	queries db.Querier
	tx      interfaces.TxRunner
	calc    *returnCalculator
	logger  *zap.Logger
}

// NewCreditService creates a new credit service
func NewCreditService(queries db.Querier, tx interfaces.TxRunner, calculator *taxcalc.Calculator) *CreditService {
	return &CreditService{
		queries: queries,
		tx:      tx,
		calc:    &returnCalculator{calculator: calculator, logger: logger.Named("credit_service")},
		logger:  logger.Named("credit_service"),
	}
}

var _ interfaces.CreditService = (*CreditService)(nil)

func validateCreditRecord(r taxcalc.CreditRecord) error {
	if r.NumDependents < 0 || r.NumDependentsAOTC < 0 || r.NumChildren < 0 {
		return invalid(constants.InvalidAmount)
	}
	for _, amount := range []decimal.Decimal{
		r.ChildCareExpenses, r.EducationExpenses, r.LLCEducationExpenses, r.IRAContributions,
	} {
		if amount.IsNegative() {
			return invalid(constants.InvalidAmount)
		}
	}
	return nil
}

// GetCredit returns the credit record of a return
func (s *CreditService) GetCredit(ctx context.Context, userID, taxReturnID int64) (*taxcalc.CreditRecord, error) {
	if _, err := ownedReturn(ctx, s.queries, userID, taxReturnID, false); err != nil {
		return nil, err
	}
	row, err := s.queries.GetTaxReturnCreditByTaxReturn(ctx, taxReturnID)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound(constants.CreditNotFound)
		}
		return nil, fmt.Errorf("failed to get credits: %w", err)
	}
	record := creditFromDB(row)
	return &record, nil
}

// CreateCredit stores the credit record of a return
func (s *CreditService) CreateCredit(ctx context.Context, in params.CreditParams) (*taxcalc.CreditRecord, error) {
	if err := validateCreditRecord(in.Record); err != nil {
		return nil, err
	}

	var record taxcalc.CreditRecord
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		ret, err := ownedReturn(ctx, q, in.UserID, in.TaxReturnID, true)
		if err != nil {
			return err
		}
		r := in.Record
		row, err := q.CreateTaxReturnCredit(ctx, db.CreateTaxReturnCreditParams{
			TaxReturnID:          in.TaxReturnID,
			NumDependents:        int32(r.NumDependents),
			NumDependentsAotc:    int32(r.NumDependentsAOTC),
			NumChildren:          int32(r.NumChildren),
			ChildCareExpenses:    r.ChildCareExpenses,
			EducationExpenses:    r.EducationExpenses,
			LlcEducationExpenses: r.LLCEducationExpenses,
			IraContributions:     r.IRAContributions,
			ClaimedAsDependent:   r.ClaimedAsDependent,
			ClaimLlcCredit:       r.ClaimLLCCredit,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return duplicate(constants.DuplicateCredit)
			}
			return fmt.Errorf("failed to create credits: %w", err)
		}
		record = creditFromDB(row)
		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Credits created", zap.Int64("tax_return_id", in.TaxReturnID))
	return &record, nil
}

// UpdateCredit replaces the credit record of a return
func (s *CreditService) UpdateCredit(ctx context.Context, in params.CreditParams) (*taxcalc.CreditRecord, error) {
	if err := validateCreditRecord(in.Record); err != nil {
		return nil, err
	}

	var record taxcalc.CreditRecord
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		ret, err := ownedReturn(ctx, q, in.UserID, in.TaxReturnID, true)
		if err != nil {
			return err
		}
		r := in.Record
		row, err := q.UpdateTaxReturnCredit(ctx, db.UpdateTaxReturnCreditParams{
			TaxReturnID:          in.TaxReturnID,
			NumDependents:        int32(r.NumDependents),
			NumDependentsAotc:    int32(r.NumDependentsAOTC),
			NumChildren:          int32(r.NumChildren),
			ChildCareExpenses:    r.ChildCareExpenses,
			EducationExpenses:    r.EducationExpenses,
			LlcEducationExpenses: r.LLCEducationExpenses,
			IraContributions:     r.IRAContributions,
			ClaimedAsDependent:   r.ClaimedAsDependent,
			ClaimLlcCredit:       r.ClaimLLCCredit,
		})
		if err != nil {
			if isNoRows(err) {
				return notFound(constants.CreditNotFound)
			}
			return fmt.Errorf("failed to update credits: %w", err)
		}
		record = creditFromDB(row)
		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteCredit removes the credit record of a return
func (s *CreditService) DeleteCredit(ctx context.Context, userID, taxReturnID int64) error {
	return s.tx.InTx(ctx, func(q db.Querier) error {
		ret, err := ownedReturn(ctx, q, userID, taxReturnID, true)
		if err != nil {
			return err
		}
		deleted, err := q.DeleteTaxReturnCreditByTaxReturn(ctx, taxReturnID)
		if err != nil {
			return fmt.Errorf("failed to delete credits: %w", err)
		}
		if deleted == 0 {
			return notFound(constants.CreditNotFound)
		}
		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
}
