package services

import (
	"context"
	"fmt"

	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"go.uber.org/zap"
)

// returnCalculator assembles aggregates from storage and keeps the stored
// totals of a return in step with its components.
type returnCalculator struct {
	calculator *taxcalc.Calculator
	logger     *zap.Logger
}

// ownedReturn loads a return and checks that it belongs to userID. Inside a
// transaction, lock takes a row lock so concurrent edits of the same return
// are applied one after another.
func ownedReturn(ctx context.Context, q db.Querier, userID, taxReturnID int64, lock bool) (db.TaxReturn, error) {
	var (
		row db.TaxReturn
		err error
	)
	if lock {
		row, err = q.GetTaxReturnForUpdate(ctx, taxReturnID)
	} else {
		row, err = q.GetTaxReturn(ctx, taxReturnID)
	}
	if err != nil {
		if isNoRows(err) {
			return db.TaxReturn{}, notFound(constants.TaxReturnNotFound)
		}
		return db.TaxReturn{}, fmt.Errorf("failed to get tax return: %w", err)
	}
	if row.UserID != userID {
		return db.TaxReturn{}, forbidden(constants.AccessDenied)
	}
	return row, nil
}

// loadAggregate reads every component of a return.
func loadAggregate(ctx context.Context, q db.Querier, row db.TaxReturn) (taxcalc.ReturnAggregate, error) {
	ret, err := taxReturnFromDB(row)
	if err != nil {
		return taxcalc.ReturnAggregate{}, err
	}
	agg := taxcalc.ReturnAggregate{Return: ret}

	w2s, err := q.ListW2sByTaxReturn(ctx, row.ID)
	if err != nil {
		return taxcalc.ReturnAggregate{}, fmt.Errorf("failed to list W2s: %w", err)
	}
	agg.W2s = w2sFromDB(w2s)

	deductions, err := q.ListTaxReturnDeductions(ctx, row.ID)
	if err != nil {
		return taxcalc.ReturnAggregate{}, fmt.Errorf("failed to list deductions: %w", err)
	}
	agg.Deductions = claimedDeductionsFromDB(deductions)

	credit, err := q.GetTaxReturnCreditByTaxReturn(ctx, row.ID)
	switch {
	case err == nil:
		record := creditFromDB(credit)
		agg.Credit = &record
	case !isNoRows(err):
		return taxcalc.ReturnAggregate{}, fmt.Errorf("failed to get credits: %w", err)
	}

	other, err := q.GetOtherIncomeByTaxReturn(ctx, row.ID)
	switch {
	case err == nil:
		income := otherIncomeFromDB(other)
		agg.OtherIncome = &income
	case !isNoRows(err):
		return taxcalc.ReturnAggregate{}, fmt.Errorf("failed to get other income: %w", err)
	}

	return agg, nil
}

// calculate runs the calculator over agg. Missing tax tables keep their
// taxcalc error so callers can tell them apart from bad input.
func (r *returnCalculator) calculate(agg taxcalc.ReturnAggregate) (taxcalc.ReturnAggregate, error) {
	result, err := r.calculator.CalculateAll(agg)
	if err != nil {
		r.logger.Error("Tax calculation failed",
			zap.Int64("tax_return_id", agg.Return.ID),
			zap.Int("year", agg.Return.Year),
			zap.String("filing_status", agg.Return.FilingStatus.String()),
			zap.Error(err))
		return agg, fmt.Errorf("failed to calculate tax return %d: %w", agg.Return.ID, err)
	}

	t := result.Return.Totals
	r.logger.Debug("Tax return calculated",
		zap.Int64("tax_return_id", result.Return.ID),
		zap.String("total_income", t.TotalIncome.StringFixed(2)),
		zap.String("agi", t.AdjustedGrossIncome.StringFixed(2)),
		zap.String("taxable_income", t.TaxableIncome.StringFixed(2)),
		zap.String("federal_tax", t.FederalTax.StringFixed(2)),
		zap.String("state_tax", t.StateTax.StringFixed(2)),
		zap.String("total_credits", t.TotalCredits.StringFixed(2)),
		zap.String("federal_refund", t.FederalRefund.StringFixed(2)),
		zap.String("state_refund", t.StateRefund.StringFixed(2)),
	)
	return result, nil
}

// recalculate reloads the return's components, recomputes its totals and
// stores them. Call it inside the transaction that changed the components.
func (r *returnCalculator) recalculate(ctx context.Context, q db.Querier, row db.TaxReturn) (taxcalc.ReturnAggregate, error) {
	agg, err := loadAggregate(ctx, q, row)
	if err != nil {
		return taxcalc.ReturnAggregate{}, err
	}
	result, err := r.calculate(agg)
	if err != nil {
		return taxcalc.ReturnAggregate{}, err
	}
	if _, err := q.UpdateTaxReturnTotals(ctx, totalsParams(row.ID, result.Return.Totals)); err != nil {
		return taxcalc.ReturnAggregate{}, fmt.Errorf("failed to store tax return totals: %w", err)
	}
	return result, nil
}
