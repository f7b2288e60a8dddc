package reference_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/mocks"
	"github.com/taxdesk/tax-service/internal/reference"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

func TestLoadDefaults(t *testing.T) {
	ref, err := reference.LoadDefaults()
	require.NoError(t, err)

	for _, status := range taxcalc.FilingStatuses() {
		_, err := ref.Brackets.BracketsFor(status, taxcalc.Federal, 2023)
		assert.NoError(t, err, status.String())
		_, err = ref.Brackets.BracketsFor(status, taxcalc.State, 2023)
		assert.NoError(t, err, status.String())
		_, err = ref.StandardDeduction(2023, status)
		assert.NoError(t, err, status.String())
	}

	std, err := ref.StandardDeduction(2023, taxcalc.MarriedFilingJointly)
	require.NoError(t, err)
	assert.Equal(t, "27700.00", std.StringFixed(2))

	credits, err := ref.CreditsFor(2023, taxcalc.Single)
	require.NoError(t, err)
	assert.Len(t, credits, 6)
}

func TestLoadDefaults_SingleFederalSchedule(t *testing.T) {
	ref, err := reference.LoadDefaults()
	require.NoError(t, err)

	brackets, err := ref.Brackets.BracketsFor(taxcalc.Single, taxcalc.Federal, 2023)
	require.NoError(t, err)
	require.Len(t, brackets, 7)
	assert.True(t, brackets[0].Lower.IsZero())
	assert.Equal(t, "0.10", brackets[0].Rate.StringFixed(2))
	assert.False(t, brackets[6].Upper.Valid)
	assert.Equal(t, "0.37", brackets[6].Rate.StringFixed(2))

	liability := taxcalc.Liability(brackets, decimal.RequireFromString("36150"))
	assert.Equal(t, "4118.00", taxcalc.Round(liability).StringFixed(2))
}

func TestLoadDefaults_MarriedSeparatelyHasNoEducationCredit(t *testing.T) {
	ref, err := reference.LoadDefaults()
	require.NoError(t, err)

	credits, err := ref.CreditsFor(2023, taxcalc.MarriedFilingSeparately)
	require.NoError(t, err)

	record := taxcalc.CreditRecord{NumDependentsAOTC: 1, EducationExpenses: decimal.RequireFromString("4000")}
	for _, credit := range credits {
		if credit.Name() == "american_opportunity_credit" {
			assert.True(t, credit.Amount(record, decimal.RequireFromString("40000")).IsZero())
		}
	}
}

func TestLoad_DatabaseRowsReplaceSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	querier := mocks.NewMockQuerier(ctrl)
	querier.EXPECT().ListTaxBrackets(gomock.Any()).Return([]db.TaxBracket{
		{
			ID:           1,
			Year:         2023,
			FilingStatus: int32(taxcalc.Single),
			Jurisdiction: string(taxcalc.State),
			LowerBound:   decimal.Zero,
			Rate:         decimal.RequireFromString("0.03"),
		},
	}, nil)

	ref, err := reference.Load(context.Background(), querier)
	require.NoError(t, err)

	state, err := ref.Brackets.BracketsFor(taxcalc.Single, taxcalc.State, 2023)
	require.NoError(t, err)
	require.Len(t, state, 1)
	assert.Equal(t, "0.03", state[0].Rate.StringFixed(2))

	// Other schedules keep the embedded defaults.
	federal, err := ref.Brackets.BracketsFor(taxcalc.Single, taxcalc.Federal, 2023)
	require.NoError(t, err)
	assert.Len(t, federal, 7)
}

func TestLoad_AddsNewYearFromDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	querier := mocks.NewMockQuerier(ctrl)
	querier.EXPECT().ListTaxBrackets(gomock.Any()).Return([]db.TaxBracket{
		{ID: 1, Year: 2030, FilingStatus: 1, Jurisdiction: "FEDERAL", LowerBound: decimal.Zero, Rate: decimal.RequireFromString("0.2")},
	}, nil)

	ref, err := reference.Load(context.Background(), querier)
	require.NoError(t, err)
	assert.Contains(t, ref.Brackets.Years(), 2030)

	_, err = ref.StandardDeduction(2030, taxcalc.Single)
	assert.ErrorIs(t, err, taxcalc.ErrStandardDeductionNotFound)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []db.TaxBracket
		err  error
	}{
		{
			name: "list fails",
			err:  errors.New("connection refused"),
		},
		{
			name: "unknown filing status",
			rows: []db.TaxBracket{{ID: 9, Year: 2023, FilingStatus: 7, Jurisdiction: "FEDERAL", Rate: decimal.Zero}},
		},
		{
			name: "gap in stored schedule",
			rows: []db.TaxBracket{
				{ID: 1, Year: 2023, FilingStatus: 1, Jurisdiction: "STATE", LowerBound: decimal.Zero,
					UpperBound: decimal.NewNullDecimal(decimal.RequireFromString("1000")), Rate: decimal.RequireFromString("0.01")},
				{ID: 2, Year: 2023, FilingStatus: 1, Jurisdiction: "STATE", LowerBound: decimal.RequireFromString("2000"),
					Rate: decimal.RequireFromString("0.02")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			querier := mocks.NewMockQuerier(ctrl)
			querier.EXPECT().ListTaxBrackets(gomock.Any()).Return(tt.rows, tt.err)

			ref, err := reference.Load(context.Background(), querier)
			assert.Error(t, err)
			assert.Nil(t, ref)
		})
	}
}

func TestBracketEntriesFromRows(t *testing.T) {
	entries, err := reference.BracketEntriesFromRows([]db.TaxBracket{
		{ID: 1, Year: 2023, FilingStatus: 4, Jurisdiction: "FEDERAL", LowerBound: decimal.Zero,
			UpperBound: decimal.NewNullDecimal(decimal.RequireFromString("15700")), Rate: decimal.RequireFromString("0.10")},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, taxcalc.HeadOfHousehold, entries[0].FilingStatus)
	assert.Equal(t, taxcalc.Federal, entries[0].Jurisdiction)
	assert.Equal(t, 2023, entries[0].Year)
	assert.True(t, entries[0].Bracket.Upper.Valid)
}
