package taxcalc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/taxdesk/tax-service/internal/taxcalc"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func upTo(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(d(s))
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), msgAndArgs...)
}

func entries(year int, status taxcalc.FilingStatus, jurisdiction taxcalc.Jurisdiction, brackets ...taxcalc.Bracket) []taxcalc.BracketEntry {
	out := make([]taxcalc.BracketEntry, 0, len(brackets))
	for _, b := range brackets {
		out = append(out, taxcalc.BracketEntry{Year: year, FilingStatus: status, Jurisdiction: jurisdiction, Bracket: b})
	}
	return out
}

// twoBracketFederal is 10% up to 11,000 and 12% above.
func twoBracketFederal() []taxcalc.Bracket {
	return []taxcalc.Bracket{
		{Lower: d("0"), Upper: upTo("11000"), Rate: d("0.10")},
		{Lower: d("11000"), Rate: d("0.12")},
	}
}

func flatState() []taxcalc.Bracket {
	return []taxcalc.Bracket{{Lower: d("0"), Rate: d("0.05")}}
}

func single2023Federal() []taxcalc.Bracket {
	return []taxcalc.Bracket{
		{Lower: d("0"), Upper: upTo("11000"), Rate: d("0.10")},
		{Lower: d("11000"), Upper: upTo("44725"), Rate: d("0.12")},
		{Lower: d("44725"), Upper: upTo("95375"), Rate: d("0.22")},
		{Lower: d("95375"), Upper: upTo("182100"), Rate: d("0.24")},
		{Lower: d("182100"), Upper: upTo("231250"), Rate: d("0.32")},
		{Lower: d("231250"), Upper: upTo("578125"), Rate: d("0.35")},
		{Lower: d("578125"), Rate: d("0.37")},
	}
}

func creditParameters() taxcalc.CreditParameters {
	singleSavers := []taxcalc.AGITier{
		{UpTo: upTo("21750"), Rate: d("0.50")},
		{UpTo: upTo("23750"), Rate: d("0.20")},
		{UpTo: upTo("36500"), Rate: d("0.10")},
		{Rate: d("0")},
	}
	return taxcalc.CreditParameters{
		ChildTax: taxcalc.ChildTaxParameters{
			PerChild:          d("2000"),
			PerOtherDependent: d("500"),
			PhaseOutStart: map[taxcalc.FilingStatus]decimal.Decimal{
				taxcalc.Single:               d("200000"),
				taxcalc.MarriedFilingJointly: d("400000"),
			},
			PhaseOutIncrement: d("1000"),
			PhaseOutReduction: d("50"),
		},
		DependentCare: taxcalc.DependentCareParameters{
			PerChildExpenseCap: d("3000"),
			MaxExpenses:        d("6000"),
			MaxRate:            d("0.35"),
			MinRate:            d("0.20"),
			ReductionStart:     d("15000"),
			ReductionStep:      d("2000"),
			ReductionPerStep:   d("0.01"),
		},
		Education: taxcalc.EducationParameters{
			AOTCFullExpenses:    d("2000"),
			AOTCPartialExpenses: d("2000"),
			AOTCPartialRate:     d("0.25"),
			LLCRate:             d("0.20"),
			LLCMaxExpenses:      d("10000"),
			PhaseOut: map[taxcalc.FilingStatus]taxcalc.PhaseOut{
				taxcalc.Single:               {Start: d("80000"), End: d("90000")},
				taxcalc.MarriedFilingJointly: {Start: d("160000"), End: d("180000")},
			},
		},
		Savers: taxcalc.SaversParameters{
			ContributionCap: map[taxcalc.FilingStatus]decimal.Decimal{
				taxcalc.Single:               d("2000"),
				taxcalc.MarriedFilingJointly: d("4000"),
			},
			Tiers: map[taxcalc.FilingStatus][]taxcalc.AGITier{
				taxcalc.Single: singleSavers,
			},
		},
	}
}

func testReference(t *testing.T) *taxcalc.ReferenceData {
	t.Helper()
	var rows []taxcalc.BracketEntry
	rows = append(rows, entries(2023, taxcalc.Single, taxcalc.Federal, twoBracketFederal()...)...)
	rows = append(rows, entries(2023, taxcalc.Single, taxcalc.State, flatState()...)...)
	rows = append(rows, entries(2023, taxcalc.MarriedFilingJointly, taxcalc.Federal, twoBracketFederal()...)...)
	rows = append(rows, entries(2023, taxcalc.MarriedFilingJointly, taxcalc.State, flatState()...)...)

	table, err := taxcalc.NewBracketTable(rows)
	if err != nil {
		t.Fatalf("failed to build bracket table: %v", err)
	}

	return &taxcalc.ReferenceData{
		Brackets: table,
		StandardDeductions: map[int]map[taxcalc.FilingStatus]decimal.Decimal{
			2023: {
				taxcalc.Single:               d("13850"),
				taxcalc.MarriedFilingJointly: d("27700"),
			},
			// 2022 has a standard deduction but no bracket table.
			2022: {
				taxcalc.Single: d("12950"),
			},
		},
		CreditParameters: map[int]taxcalc.CreditParameters{
			2023: creditParameters(),
			2022: creditParameters(),
		},
	}
}

func singleFiler(wages, fedWithheld, stateWithheld string) taxcalc.ReturnAggregate {
	return taxcalc.ReturnAggregate{
		Return: taxcalc.TaxReturn{
			ID:           1,
			UserID:       42,
			Year:         2023,
			FilingStatus: taxcalc.Single,
		},
		W2s: []taxcalc.W2{{
			ID:                     10,
			TaxReturnID:            1,
			EmployerName:           "Acme",
			WagesAndTips:           d(wages),
			FederalTaxWithheld:     d(fedWithheld),
			StateTaxWithheld:       d(stateWithheld),
			SocialSecurityWithheld: d("3100"),
			MedicareWithheld:       d("725"),
		}},
	}
}

func snapshot(t taxcalc.Totals) map[string]string {
	out := map[string]string{
		"totalIncome":   t.TotalIncome.StringFixed(2),
		"agi":           t.AdjustedGrossIncome.StringFixed(2),
		"taxable":       t.TaxableIncome.StringFixed(2),
		"fedWithheld":   t.FederalTaxWithheld.StringFixed(2),
		"stateWithheld": t.StateTaxWithheld.StringFixed(2),
		"ssWithheld":    t.SocialSecurityWithheld.StringFixed(2),
		"medicare":      t.MedicareWithheld.StringFixed(2),
		"federalTax":    t.FederalTax.StringFixed(2),
		"stateTax":      t.StateTax.StringFixed(2),
		"credits":       t.TotalCredits.StringFixed(2),
		"federalRefund": t.FederalRefund.StringFixed(2),
		"stateRefund":   t.StateRefund.StringFixed(2),
	}
	for _, line := range t.Credits {
		out["credit:"+line.Name] = line.Amount.StringFixed(2)
	}
	return out
}
