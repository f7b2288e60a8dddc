package taxcalc

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of fraction digits kept on finalized amounts.
const MoneyPlaces = 2

// Round finalizes a monetary amount to two fraction digits, rounding half up
// (ties move away from zero).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func count(n int) decimal.Decimal {
	if n < 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(n))
}
