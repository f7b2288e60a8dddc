package taxcalc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/taxdesk/tax-service/internal/taxcalc"
)

func TestUsableAmount(t *testing.T) {
	tests := []struct {
		name        string
		claim       taxcalc.ClaimedDeduction
		totalIncome string
		want        string
	}{
		{
			name:        "capped at agi limit",
			claim:       taxcalc.ClaimedDeduction{Itemized: true, AmountSpent: d("10000"), AGILimit: upTo("0.075")},
			totalIncome: "50000",
			want:        "3750.00",
		},
		{
			name:        "below agi limit",
			claim:       taxcalc.ClaimedDeduction{Itemized: true, AmountSpent: d("2000"), AGILimit: upTo("0.075")},
			totalIncome: "50000",
			want:        "2000.00",
		},
		{
			name:        "no limit",
			claim:       taxcalc.ClaimedDeduction{AmountSpent: d("2500")},
			totalIncome: "50000",
			want:        "2500.00",
		},
		{
			name:        "zero income with limit",
			claim:       taxcalc.ClaimedDeduction{AmountSpent: d("2500"), AGILimit: upTo("0.60")},
			totalIncome: "0",
			want:        "0.00",
		},
		{
			name:        "negative spend",
			claim:       taxcalc.ClaimedDeduction{AmountSpent: d("-10")},
			totalIncome: "50000",
			want:        "0.00",
		},
		{
			name:        "negative income with limit",
			claim:       taxcalc.ClaimedDeduction{AmountSpent: d("100"), AGILimit: upTo("0.5")},
			totalIncome: "-1000",
			want:        "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, tt.want, taxcalc.UsableAmount(tt.claim, d(tt.totalIncome)))
		})
	}
}

func TestDeductionTotalsByKind(t *testing.T) {
	claims := []taxcalc.ClaimedDeduction{
		{Name: "Student Loan Interest", AmountSpent: d("2500")},
		{Name: "Educator Expenses", AmountSpent: d("300")},
		{Name: "Medical", Itemized: true, AmountSpent: d("10000"), AGILimit: upTo("0.075")},
		{Name: "Mortgage Interest", Itemized: true, AmountSpent: d("9000")},
		{Name: "Charitable", Itemized: true, AmountSpent: d("40000"), AGILimit: decimal.NewNullDecimal(d("0.60"))},
	}
	income := d("50000")

	assertMoney(t, "2800.00", taxcalc.AboveTheLine(claims, income))
	// 3750 + 9000 + 30000
	assertMoney(t, "42750.00", taxcalc.ItemizedTotal(claims, income))
	assertMoney(t, "0.00", taxcalc.AboveTheLine(nil, income))
}
