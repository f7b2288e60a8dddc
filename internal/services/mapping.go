package services

import (
	"fmt"

	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/taxcalc"
)

func taxReturnFromDB(row db.TaxReturn) (taxcalc.TaxReturn, error) {
	status, err := taxcalc.FilingStatusFromID(row.FilingStatus)
	if err != nil {
		return taxcalc.TaxReturn{}, fmt.Errorf("tax return %d: %w", row.ID, err)
	}
	return taxcalc.TaxReturn{
		ID:           row.ID,
		UserID:       row.UserID,
		Year:         int(row.Year),
		FilingStatus: status,
		PersonalInfo: taxcalc.PersonalInfo{
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Email:       row.Email,
			PhoneNumber: row.PhoneNumber,
			Address:     row.Address,
			City:        row.City,
			State:       row.State,
			Zip:         row.Zip,
			DateOfBirth: helpers.NullableDateToString(row.DateOfBirth),
			SSN:         row.Ssn,
		},
		Totals: taxcalc.Totals{
			TotalIncome:            row.TotalIncome,
			AdjustedGrossIncome:    row.AdjustedGrossIncome,
			TaxableIncome:          row.TaxableIncome,
			FederalTaxWithheld:     row.FedTaxWithheld,
			StateTaxWithheld:       row.StateTaxWithheld,
			SocialSecurityWithheld: row.SocialSecurityTaxWithheld,
			MedicareWithheld:       row.MedicareTaxWithheld,
			FederalTax:             row.FederalTax,
			StateTax:               row.StateTax,
			TotalCredits:           row.TotalCredits,
			FederalRefund:          row.FederalRefund,
			StateRefund:            row.StateRefund,
		},
	}, nil
}

func totalsParams(id int64, t taxcalc.Totals) db.UpdateTaxReturnTotalsParams {
	return db.UpdateTaxReturnTotalsParams{
		ID:                        id,
		TotalIncome:               t.TotalIncome,
		AdjustedGrossIncome:       t.AdjustedGrossIncome,
		TaxableIncome:             t.TaxableIncome,
		FedTaxWithheld:            t.FederalTaxWithheld,
		StateTaxWithheld:          t.StateTaxWithheld,
		SocialSecurityTaxWithheld: t.SocialSecurityWithheld,
		MedicareTaxWithheld:       t.MedicareWithheld,
		FederalTax:                t.FederalTax,
		StateTax:                  t.StateTax,
		TotalCredits:              t.TotalCredits,
		FederalRefund:             t.FederalRefund,
		StateRefund:               t.StateRefund,
	}
}

func w2FromDB(row db.W2) taxcalc.W2 {
	return taxcalc.W2{
		ID:                     row.ID,
		TaxReturnID:            row.TaxReturnID,
		UserID:                 row.UserID,
		Year:                   int(row.Year),
		EmployerName:           row.EmployerName,
		EmployerStreetAddress:  row.EmployerStreetAddress,
		EmployerCity:           row.EmployerCity,
		EmployerState:          row.EmployerState,
		EmployerZip:            row.EmployerZip,
		Ein:                    row.Ein,
		WagesAndTips:           row.WagesAndTips,
		FederalTaxWithheld:     row.FederalIncomeTaxWithheld,
		StateTaxWithheld:       row.StateIncomeTaxWithheld,
		SocialSecurityWithheld: row.SocialSecurityTaxWithheld,
		MedicareWithheld:       row.MedicareTaxWithheld,
		ImageKey:               helpers.NullableTextToString(row.ImageKey),
	}
}

func w2sFromDB(rows []db.W2) []taxcalc.W2 {
	out := make([]taxcalc.W2, 0, len(rows))
	for _, row := range rows {
		out = append(out, w2FromDB(row))
	}
	return out
}

func deductionFromDB(row db.Deduction) taxcalc.Deduction {
	return taxcalc.Deduction{
		ID:       row.ID,
		Name:     row.Name,
		Itemized: row.Itemized,
		AGILimit: row.AgiLimit,
	}
}

func claimedDeductionFromDB(row db.TaxReturnDeductionDetail) taxcalc.ClaimedDeduction {
	return taxcalc.ClaimedDeduction{
		ID:          row.ID,
		TaxReturnID: row.TaxReturnID,
		DeductionID: row.DeductionID,
		Name:        row.Name,
		Itemized:    row.Itemized,
		AmountSpent: row.AmountSpent,
		AGILimit:    row.AgiLimit,
	}
}

func claimedDeductionsFromDB(rows []db.TaxReturnDeductionDetail) []taxcalc.ClaimedDeduction {
	out := make([]taxcalc.ClaimedDeduction, 0, len(rows))
	for _, row := range rows {
		out = append(out, claimedDeductionFromDB(row))
	}
	return out
}

func creditFromDB(row db.TaxReturnCredit) taxcalc.CreditRecord {
	return taxcalc.CreditRecord{
		ID:                   row.ID,
		TaxReturnID:          row.TaxReturnID,
		NumDependents:        int(row.NumDependents),
		NumDependentsAOTC:    int(row.NumDependentsAotc),
		NumChildren:          int(row.NumChildren),
		ChildCareExpenses:    row.ChildCareExpenses,
		EducationExpenses:    row.EducationExpenses,
		LLCEducationExpenses: row.LlcEducationExpenses,
		IRAContributions:     row.IraContributions,
		ClaimedAsDependent:   row.ClaimedAsDependent,
		ClaimLLCCredit:       row.ClaimLlcCredit,
	}
}

func otherIncomeFromDB(row db.OtherIncome) taxcalc.OtherIncome {
	return taxcalc.OtherIncome{
		ID:                    row.ID,
		TaxReturnID:           row.TaxReturnID,
		LongTermCapitalGains:  row.LongTermCapitalGains,
		ShortTermCapitalGains: row.ShortTermCapitalGains,
		OtherInvestmentIncome: row.OtherInvestmentIncome,
		NetBusinessIncome:     row.NetBusinessIncome,
		AdditionalIncome:      row.AdditionalIncome,
	}
}
