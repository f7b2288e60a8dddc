package helpers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxdesk/tax-service/internal/taxcalc"
)

func TestStages(t *testing.T) {
	for _, stage := range []string{"local", "dev", "prod"} {
		assert.True(t, IsValidStage(stage), stage)
	}
	assert.False(t, IsValidStage("staging"))
	assert.False(t, IsValidStage(""))

	assert.True(t, IsDeployedStage("prod"))
	assert.True(t, IsDeployedStage("dev"))
	assert.False(t, IsDeployedStage("local"))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TAX_TEST_STRING", "value")
	t.Setenv("TAX_TEST_INT", "25")
	t.Setenv("TAX_TEST_BAD_INT", "many")
	t.Setenv("TAX_TEST_DURATION", "90s")

	assert.Equal(t, "value", GetEnvWithDefault("TAX_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnvWithDefault("TAX_TEST_UNSET", "fallback"))
	assert.Equal(t, 25, GetEnvInt("TAX_TEST_INT", 5))
	assert.Equal(t, 5, GetEnvInt("TAX_TEST_BAD_INT", 5))
	assert.Equal(t, 90*time.Second, GetEnvDuration("TAX_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("TAX_TEST_UNSET", time.Second))
}

func TestNullableConversions(t *testing.T) {
	assert.False(t, StringToNullableText("").Valid)
	assert.Equal(t, "abc.png", NullableTextToString(StringToNullableText("abc.png")))

	date, err := StringToNullableDate("1990-02-01")
	require.NoError(t, err)
	assert.Equal(t, "1990-02-01", NullableDateToString(date))

	empty, err := StringToNullableDate("")
	require.NoError(t, err)
	assert.False(t, empty.Valid)
	assert.Equal(t, "", NullableDateToString(empty))

	_, err = StringToNullableDate("02/01/1990")
	assert.Error(t, err)
}

func TestToTaxReturnDetailResponse(t *testing.T) {
	agg := taxcalc.ReturnAggregate{
		Return: taxcalc.TaxReturn{
			ID:           100,
			UserID:       42,
			Year:         2023,
			FilingStatus: taxcalc.MarriedFilingJointly,
			Totals: taxcalc.Totals{
				TaxableIncome: decimal.RequireFromString("36150"),
				TotalCredits:  decimal.RequireFromString("4000"),
				Credits: []taxcalc.CreditLine{
					{Name: "child_tax_credit", Amount: decimal.RequireFromString("4000")},
				},
				FederalRefund: decimal.RequireFromString("-12.5"),
			},
		},
		W2s: []taxcalc.W2{{ID: 1, ImageKey: "k.png", WagesAndTips: decimal.RequireFromString("50000.1")}},
		Deductions: []taxcalc.ClaimedDeduction{
			{ID: 2, Name: "Medical Expenses", AmountSpent: decimal.RequireFromString("900"), AGILimit: decimal.NewNullDecimal(decimal.RequireFromString("0.075"))},
		},
		Credit: &taxcalc.CreditRecord{ID: 3, NumChildren: 2},
	}

	got := ToTaxReturnDetailResponse(agg)
	assert.Equal(t, "MARRIED_FILING_JOINTLY", got.FilingStatus)
	assert.Equal(t, "36150.00", got.Totals.TaxableIncome)
	assert.Equal(t, "-12.50", got.Totals.FederalRefund)
	assert.Equal(t, "0.00", got.Totals.StateRefund)
	require.Len(t, got.Totals.Credits, 1)
	assert.Equal(t, "4000.00", got.Totals.Credits[0].Amount)

	require.Len(t, got.W2s, 1)
	assert.True(t, got.W2s[0].HasImage)
	assert.Equal(t, "50000.10", got.W2s[0].WagesAndTips)

	require.Len(t, got.Deductions, 1)
	require.NotNil(t, got.Deductions[0].AGILimit)
	assert.Equal(t, "0.075", *got.Deductions[0].AGILimit)

	require.NotNil(t, got.Credit)
	assert.Equal(t, 2, got.Credit.NumChildren)
	assert.Nil(t, got.OtherIncome)
}

func TestToFilingStatusResponses(t *testing.T) {
	got := ToFilingStatusResponses(taxcalc.FilingStatuses())
	require.Len(t, got, 5)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "SINGLE", got[0].Name)
	assert.Equal(t, "WIDOW", got[4].Name)
}
