package interfaces

import (
	"context"

	"github.com/taxdesk/tax-service/internal/taxcalc"
	"github.com/taxdesk/tax-service/internal/types/params"
)

// TaxReturnService handles tax return headers and their calculation
type TaxReturnService interface {
	CreateTaxReturn(ctx context.Context, in params.CreateTaxReturnParams) (*taxcalc.ReturnAggregate, error)
	GetTaxReturn(ctx context.Context, userID, taxReturnID int64) (*taxcalc.ReturnAggregate, error)
	ListTaxReturns(ctx context.Context, in params.ListTaxReturnsParams) ([]taxcalc.TaxReturn, error)
	UpdateTaxReturn(ctx context.Context, in params.UpdateTaxReturnParams) (*taxcalc.ReturnAggregate, error)
	DeleteTaxReturn(ctx context.Context, userID, taxReturnID int64) error
	GetRefund(ctx context.Context, userID, taxReturnID int64) (*taxcalc.Totals, error)
	Recalculate(ctx context.Context, userID, taxReturnID int64) (*taxcalc.ReturnAggregate, error)
	FilingStatuses() []taxcalc.FilingStatus
}

// ReferenceService exposes the reference tables returns are calculated against
type ReferenceService interface {
	ListDeductions(ctx context.Context) ([]taxcalc.Deduction, error)
	LoadReferenceData(ctx context.Context) (*taxcalc.ReferenceData, error)
}

// DeductionService handles deductions claimed on returns
type DeductionService interface {
	ClaimDeduction(ctx context.Context, in params.ClaimDeductionParams) (*taxcalc.ClaimedDeduction, error)
	ListClaimedDeductions(ctx context.Context, userID, taxReturnID int64) ([]taxcalc.ClaimedDeduction, error)
	UpdateClaimedDeduction(ctx context.Context, in params.UpdateClaimedDeductionParams) (*taxcalc.ClaimedDeduction, error)
	DeleteClaimedDeduction(ctx context.Context, userID, claimedDeductionID int64) error
}

// W2Service handles wage statements and their scanned images
type W2Service interface {
	CreateW2(ctx context.Context, in params.W2Params) (*taxcalc.W2, error)
	GetW2(ctx context.Context, userID, w2ID int64) (*taxcalc.W2, error)
	ListW2s(ctx context.Context, in params.ListW2sParams) ([]taxcalc.W2, error)
	ListW2sByTaxReturn(ctx context.Context, userID, taxReturnID int64) ([]taxcalc.W2, error)
	ReplaceW2s(ctx context.Context, in params.ReplaceW2sParams) ([]taxcalc.W2, error)
	UpdateW2(ctx context.Context, in params.W2Params) (*taxcalc.W2, error)
	DeleteW2(ctx context.Context, userID, w2ID int64) error
	UploadImage(ctx context.Context, in params.UploadW2ImageParams) (*taxcalc.W2, error)
	GetImage(ctx context.Context, userID, w2ID int64) (*params.W2Image, error)
}

// CreditService handles the credit inputs of a return
type CreditService interface {
	GetCredit(ctx context.Context, userID, taxReturnID int64) (*taxcalc.CreditRecord, error)
	CreateCredit(ctx context.Context, in params.CreditParams) (*taxcalc.CreditRecord, error)
	UpdateCredit(ctx context.Context, in params.CreditParams) (*taxcalc.CreditRecord, error)
	DeleteCredit(ctx context.Context, userID, taxReturnID int64) error
}

// OtherIncomeService handles the non-wage income of a return
type OtherIncomeService interface {
	GetOtherIncome(ctx context.Context, userID, taxReturnID int64) (*taxcalc.OtherIncome, error)
	CreateOtherIncome(ctx context.Context, in params.OtherIncomeParams) (*taxcalc.OtherIncome, error)
	UpdateOtherIncome(ctx context.Context, in params.OtherIncomeParams) (*taxcalc.OtherIncome, error)
	DeleteOtherIncome(ctx context.Context, userID, taxReturnID int64) error
}

// AccountCleanupService removes everything stored for a deleted user
type AccountCleanupService interface {
	DeleteUserData(ctx context.Context, userID int64) (*params.CleanupResult, error)
}
