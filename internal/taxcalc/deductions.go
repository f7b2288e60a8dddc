package taxcalc

import "github.com/shopspring/decimal"

// Deduction is reference metadata for a deduction a return may claim.
type Deduction struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Itemized bool   `json:"itemized"`
	// AGILimit caps the usable amount at this fraction of total income.
	// Invalid means uncapped.
	AGILimit decimal.NullDecimal `json:"agiLimit"`
}

// ClaimedDeduction is a deduction claimed on one return together with the
// amount the taxpayer spent.
type ClaimedDeduction struct {
	ID          int64               `json:"id"`
	TaxReturnID int64               `json:"taxReturnId"`
	DeductionID int64               `json:"deductionId"`
	Name        string              `json:"deductionName"`
	Itemized    bool                `json:"itemized"`
	AmountSpent decimal.Decimal     `json:"amountSpent"`
	AGILimit    decimal.NullDecimal `json:"agiLimit"`
}

// UsableAmount is the part of a claimed deduction that counts against
// income: min(amountSpent, agiLimit × totalIncome), never negative.
func UsableAmount(claim ClaimedDeduction, totalIncome decimal.Decimal) decimal.Decimal {
	usable := nonNegative(claim.AmountSpent)
	if claim.AGILimit.Valid {
		limit := nonNegative(claim.AGILimit.Decimal.Mul(totalIncome))
		usable = decimal.Min(usable, limit)
	}
	return usable
}

// AboveTheLine sums the usable amounts of non-itemized deductions.
func AboveTheLine(claims []ClaimedDeduction, totalIncome decimal.Decimal) decimal.Decimal {
	return sumUsable(claims, totalIncome, false)
}

// ItemizedTotal sums the usable amounts of itemized deductions.
func ItemizedTotal(claims []ClaimedDeduction, totalIncome decimal.Decimal) decimal.Decimal {
	return sumUsable(claims, totalIncome, true)
}

func sumUsable(claims []ClaimedDeduction, totalIncome decimal.Decimal, itemized bool) decimal.Decimal {
	total := decimal.Zero
	for _, claim := range claims {
		if claim.Itemized == itemized {
			total = total.Add(UsableAmount(claim, totalIncome))
		}
	}
	return total
}
