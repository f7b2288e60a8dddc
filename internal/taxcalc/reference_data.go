package taxcalc

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrStandardDeductionNotFound = errors.New("standard deduction not found")
	ErrCreditParametersNotFound  = errors.New("credit parameters not found")
)

// ReferenceData is the read-only rule set the Calculator works from. It is
// built once at startup and shared by every calculation.
type ReferenceData struct {
	Brackets           *BracketTable
	StandardDeductions map[int]map[FilingStatus]decimal.Decimal
	CreditParameters   map[int]CreditParameters
}

// StandardDeduction returns the standard deduction for a year and status.
func (r *ReferenceData) StandardDeduction(year int, status FilingStatus) (decimal.Decimal, error) {
	if amount, ok := r.StandardDeductions[year][status]; ok {
		return amount, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %s %d", ErrStandardDeductionNotFound, status, year)
}

// CreditsFor returns the credits configured for a year and status.
func (r *ReferenceData) CreditsFor(year int, status FilingStatus) ([]Credit, error) {
	params, ok := r.CreditParameters[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrCreditParametersNotFound, year)
	}
	return CreditsFor(status, params), nil
}

// IsConfigurationError reports whether err comes from missing or invalid
// reference data rather than from the return itself.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrBracketsNotFound) ||
		errors.Is(err, ErrInvalidBracketTable) ||
		errors.Is(err, ErrStandardDeductionNotFound) ||
		errors.Is(err, ErrCreditParametersNotFound)
}
