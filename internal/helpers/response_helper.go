package helpers

import (
	"github.com/shopspring/decimal"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"github.com/taxdesk/tax-service/internal/types/responses"
)

// Money formats an amount with exactly two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func nullableRate(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

// ToTotalsResponse converts computed totals to API response
func ToTotalsResponse(t taxcalc.Totals) responses.TotalsResponse {
	credits := make([]responses.CreditLineResponse, len(t.Credits))
	for i, line := range t.Credits {
		credits[i] = responses.CreditLineResponse{Name: line.Name, Amount: Money(line.Amount)}
	}
	return responses.TotalsResponse{
		TotalIncome:               Money(t.TotalIncome),
		AdjustedGrossIncome:       Money(t.AdjustedGrossIncome),
		TaxableIncome:             Money(t.TaxableIncome),
		FedTaxWithheld:            Money(t.FederalTaxWithheld),
		StateTaxWithheld:          Money(t.StateTaxWithheld),
		SocialSecurityTaxWithheld: Money(t.SocialSecurityWithheld),
		MedicareTaxWithheld:       Money(t.MedicareWithheld),
		FederalTax:                Money(t.FederalTax),
		StateTax:                  Money(t.StateTax),
		TotalCredits:              Money(t.TotalCredits),
		Credits:                   credits,
		FederalRefund:             Money(t.FederalRefund),
		StateRefund:               Money(t.StateRefund),
	}
}

// ToTaxReturnResponse converts a return header to API response
func ToTaxReturnResponse(r taxcalc.TaxReturn) responses.TaxReturnResponse {
	return responses.TaxReturnResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Year:         r.Year,
		FilingStatus: r.FilingStatus.String(),
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,
		DateOfBirth:  r.DateOfBirth,
		SSN:          r.SSN,
		Totals:       ToTotalsResponse(r.Totals),
	}
}

// ToTaxReturnDetailResponse converts a return and its components to API response
func ToTaxReturnDetailResponse(agg taxcalc.ReturnAggregate) responses.TaxReturnDetailResponse {
	w2s := make([]responses.W2Response, len(agg.W2s))
	for i, w2 := range agg.W2s {
		w2s[i] = ToW2Response(w2)
	}
	deductions := make([]responses.ClaimedDeductionResponse, len(agg.Deductions))
	for i, claim := range agg.Deductions {
		deductions[i] = ToClaimedDeductionResponse(claim)
	}

	detail := responses.TaxReturnDetailResponse{
		TaxReturnResponse: ToTaxReturnResponse(agg.Return),
		W2s:               w2s,
		Deductions:        deductions,
	}
	if agg.Credit != nil {
		credit := ToCreditResponse(*agg.Credit)
		detail.Credit = &credit
	}
	if agg.OtherIncome != nil {
		other := ToOtherIncomeResponse(*agg.OtherIncome)
		detail.OtherIncome = &other
	}
	return detail
}

// ToRefundResponse converts the refund part of the totals to API response
func ToRefundResponse(taxReturnID int64, t taxcalc.Totals) responses.RefundResponse {
	return responses.RefundResponse{
		TaxReturnID:   taxReturnID,
		FederalRefund: Money(t.FederalRefund),
		StateRefund:   Money(t.StateRefund),
	}
}

// ToW2Response converts a W-2 to API response. The image key stays internal.
func ToW2Response(w taxcalc.W2) responses.W2Response {
	return responses.W2Response{
		ID:                        w.ID,
		TaxReturnID:               w.TaxReturnID,
		UserID:                    w.UserID,
		Year:                      w.Year,
		EmployerName:              w.EmployerName,
		EmployerStreetAddress:     w.EmployerStreetAddress,
		EmployerCity:              w.EmployerCity,
		EmployerState:             w.EmployerState,
		EmployerZip:               w.EmployerZip,
		Ein:                       w.Ein,
		WagesAndTips:              Money(w.WagesAndTips),
		FederalIncomeTaxWithheld:  Money(w.FederalTaxWithheld),
		StateIncomeTaxWithheld:    Money(w.StateTaxWithheld),
		SocialSecurityTaxWithheld: Money(w.SocialSecurityWithheld),
		MedicareTaxWithheld:       Money(w.MedicareWithheld),
		HasImage:                  w.ImageKey != "",
	}
}

func ToDeductionResponse(d taxcalc.Deduction) responses.DeductionResponse {
	return responses.DeductionResponse{
		ID:       d.ID,
		Name:     d.Name,
		Itemized: d.Itemized,
		AGILimit: nullableRate(d.AGILimit),
	}
}

func ToClaimedDeductionResponse(d taxcalc.ClaimedDeduction) responses.ClaimedDeductionResponse {
	return responses.ClaimedDeductionResponse{
		ID:            d.ID,
		TaxReturnID:   d.TaxReturnID,
		DeductionID:   d.DeductionID,
		DeductionName: d.Name,
		Itemized:      d.Itemized,
		AmountSpent:   Money(d.AmountSpent),
		AGILimit:      nullableRate(d.AGILimit),
	}
}

func ToCreditResponse(c taxcalc.CreditRecord) responses.CreditResponse {
	return responses.CreditResponse{
		ID:                   c.ID,
		TaxReturnID:          c.TaxReturnID,
		NumDependents:        c.NumDependents,
		NumDependentsAOTC:    c.NumDependentsAOTC,
		NumChildren:          c.NumChildren,
		ChildCareExpenses:    Money(c.ChildCareExpenses),
		EducationExpenses:    Money(c.EducationExpenses),
		LLCEducationExpenses: Money(c.LLCEducationExpenses),
		IRAContributions:     Money(c.IRAContributions),
		ClaimedAsDependent:   c.ClaimedAsDependent,
		ClaimLLCCredit:       c.ClaimLLCCredit,
	}
}

func ToOtherIncomeResponse(o taxcalc.OtherIncome) responses.OtherIncomeResponse {
	return responses.OtherIncomeResponse{
		ID:                    o.ID,
		TaxReturnID:           o.TaxReturnID,
		LongTermCapitalGains:  Money(o.LongTermCapitalGains),
		ShortTermCapitalGains: Money(o.ShortTermCapitalGains),
		OtherInvestmentIncome: Money(o.OtherInvestmentIncome),
		NetBusinessIncome:     Money(o.NetBusinessIncome),
		AdditionalIncome:      Money(o.AdditionalIncome),
	}
}

// ToFilingStatusResponses lists filing statuses with their stored IDs
func ToFilingStatusResponses(statuses []taxcalc.FilingStatus) []responses.FilingStatusResponse {
	out := make([]responses.FilingStatusResponse, len(statuses))
	for i, s := range statuses {
		out[i] = responses.FilingStatusResponse{ID: int(s), Name: s.String()}
	}
	return out
}
