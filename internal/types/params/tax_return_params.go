package params

import (
	"github.com/shopspring/decimal"
	"github.com/taxdesk/tax-service/internal/taxcalc"
)

// CreateTaxReturnParams contains the header of a new return.
type CreateTaxReturnParams struct {
	UserID       int64
	Year         int
	FilingStatus taxcalc.FilingStatus
	PersonalInfo taxcalc.PersonalInfo
}

// UpdateTaxReturnParams replaces the header of an existing return.
// Components of the return are left untouched.
type UpdateTaxReturnParams struct {
	ID           int64
	UserID       int64
	Year         int
	FilingStatus taxcalc.FilingStatus
	PersonalInfo taxcalc.PersonalInfo
}

// ListTaxReturnsParams filters a user's returns. A nil Year lists every year.
type ListTaxReturnsParams struct {
	UserID int64
	Year   *int
}

// ClaimDeductionParams attaches a reference deduction to a return.
type ClaimDeductionParams struct {
	UserID      int64
	TaxReturnID int64
	DeductionID int64
	AmountSpent decimal.Decimal
}

// UpdateClaimedDeductionParams changes the amount spent on a claimed deduction.
type UpdateClaimedDeductionParams struct {
	UserID      int64
	ID          int64
	AmountSpent decimal.Decimal
}

// CreditParams carries the credit inputs of a return.
type CreditParams struct {
	UserID      int64
	TaxReturnID int64
	Record      taxcalc.CreditRecord
}

// OtherIncomeParams carries the non-wage income of a return.
type OtherIncomeParams struct {
	UserID      int64
	TaxReturnID int64
	Income      taxcalc.OtherIncome
}
