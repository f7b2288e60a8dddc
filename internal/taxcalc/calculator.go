package taxcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Calculator derives the totals of a return aggregate. It holds no mutable
// state and may be shared across goroutines.
type Calculator struct {
	ref *ReferenceData
}

// NewCalculator creates a Calculator over the given reference data.
func NewCalculator(ref *ReferenceData) *Calculator {
	return &Calculator{ref: ref}
}

// CalculateAll returns a copy of agg with every derived field of the return
// recomputed. The input is not modified. Calling it again on the result
// yields the same totals.
func (c *Calculator) CalculateAll(agg ReturnAggregate) (ReturnAggregate, error) {
	out := agg.Clone()
	ret := out.Return

	totalIncome := out.OtherIncome.Total()
	var fedWithheld, stateWithheld, ssWithheld, medicareWithheld decimal.Decimal
	for _, w2 := range out.W2s {
		totalIncome = totalIncome.Add(w2.WagesAndTips)
		fedWithheld = fedWithheld.Add(w2.FederalTaxWithheld)
		stateWithheld = stateWithheld.Add(w2.StateTaxWithheld)
		ssWithheld = ssWithheld.Add(w2.SocialSecurityWithheld)
		medicareWithheld = medicareWithheld.Add(w2.MedicareWithheld)
	}

	agi := totalIncome.Sub(AboveTheLine(out.Deductions, totalIncome))

	standard, err := c.ref.StandardDeduction(ret.Year, ret.FilingStatus)
	if err != nil {
		return agg, err
	}
	deduction := decimal.Max(standard, ItemizedTotal(out.Deductions, totalIncome))
	taxable := nonNegative(agi.Sub(deduction))

	federalTax, err := c.liability(ret, Federal, taxable)
	if err != nil {
		return agg, err
	}
	stateTax, err := c.liability(ret, State, taxable)
	if err != nil {
		return agg, err
	}

	totalCredits, lines, err := c.credits(ret, out.Credit, agi)
	if err != nil {
		return agg, err
	}

	federalRefund := fedWithheld.Sub(federalTax.Sub(totalCredits))
	stateRefund := stateWithheld.Sub(stateTax)

	out.Return.Totals = Totals{
		TotalIncome:            Round(totalIncome),
		AdjustedGrossIncome:    Round(agi),
		TaxableIncome:          Round(taxable),
		FederalTaxWithheld:     Round(fedWithheld),
		StateTaxWithheld:       Round(stateWithheld),
		SocialSecurityWithheld: Round(ssWithheld),
		MedicareWithheld:       Round(medicareWithheld),
		FederalTax:             Round(federalTax),
		StateTax:               Round(stateTax),
		TotalCredits:           Round(totalCredits),
		Credits:                lines,
		FederalRefund:          Round(federalRefund),
		StateRefund:            Round(stateRefund),
	}
	return out, nil
}

func (c *Calculator) liability(ret TaxReturn, jurisdiction Jurisdiction, taxable decimal.Decimal) (decimal.Decimal, error) {
	if !taxable.IsPositive() {
		return decimal.Zero, nil
	}
	brackets, err := c.ref.Brackets.BracketsFor(ret.FilingStatus, jurisdiction, ret.Year)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute %s liability for return %d: %w", jurisdiction, ret.ID, err)
	}
	return Liability(brackets, taxable), nil
}

// credits sums every credit the record qualifies for. Dependent based credits
// are zeroed for a taxpayer claimed as someone else's dependent. Each line is
// rounded on its own and the total is the sum of the rounded lines, so the
// breakdown always adds up. Credits are summed independently with no
// combined cap.
func (c *Calculator) credits(ret TaxReturn, rec *CreditRecord, agi decimal.Decimal) (decimal.Decimal, []CreditLine, error) {
	total := decimal.Zero
	if rec == nil {
		return total, nil, nil
	}
	available, err := c.ref.CreditsFor(ret.Year, ret.FilingStatus)
	if err != nil {
		return total, nil, err
	}

	lines := make([]CreditLine, 0, len(available))
	for _, credit := range available {
		amount := decimal.Zero
		if !(rec.ClaimedAsDependent && credit.DependentBased()) {
			amount = nonNegative(credit.Amount(*rec, agi))
		}
		line := CreditLine{Name: credit.Name(), Amount: Round(amount)}
		total = total.Add(line.Amount)
		lines = append(lines, line)
	}
	return total, lines, nil
}
