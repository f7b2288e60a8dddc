package services_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/mocks"
	"github.com/taxdesk/tax-service/internal/reference"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

const (
	testUserID  int64 = 42
	otherUserID int64 = 7
	testReturn  int64 = 100
)

var (
	errUniqueViolation     = &pgconn.PgError{Code: "23505"}
	errForeignKeyViolation = &pgconn.PgError{Code: "23503"}
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newCalculator uses the embedded 2023 tables.
func newCalculator(t *testing.T) *taxcalc.Calculator {
	t.Helper()
	ref, err := reference.LoadDefaults()
	require.NoError(t, err)
	return taxcalc.NewCalculator(ref)
}

func taxReturnRow() db.TaxReturn {
	return db.TaxReturn{
		ID:           testReturn,
		UserID:       testUserID,
		Year:         2023,
		FilingStatus: int32(taxcalc.Single),
		FirstName:    "Ada",
		LastName:     "Lovelace",
	}
}

func w2Row(id int64, wages, fedWithheld, stateWithheld string, imageKey string) db.W2 {
	return db.W2{
		ID:                       id,
		TaxReturnID:              testReturn,
		UserID:                   testUserID,
		Year:                     2023,
		EmployerName:             "Initech",
		WagesAndTips:             d(wages),
		FederalIncomeTaxWithheld: d(fedWithheld),
		StateIncomeTaxWithheld:   d(stateWithheld),
		ImageKey:                 helpers.StringToNullableText(imageKey),
	}
}

// components are the rows loadAggregate reads for a return.
type components struct {
	w2s         []db.W2
	deductions  []db.TaxReturnDeductionDetail
	credit      *db.TaxReturnCredit
	otherIncome *db.OtherIncome
}

func expectLoad(m *mocks.MockQuerier, returnID int64, c components) {
	m.EXPECT().ListW2sByTaxReturn(gomock.Any(), returnID).Return(c.w2s, nil)
	m.EXPECT().ListTaxReturnDeductions(gomock.Any(), returnID).Return(c.deductions, nil)
	if c.credit != nil {
		m.EXPECT().GetTaxReturnCreditByTaxReturn(gomock.Any(), returnID).Return(*c.credit, nil)
	} else {
		m.EXPECT().GetTaxReturnCreditByTaxReturn(gomock.Any(), returnID).Return(db.TaxReturnCredit{}, pgx.ErrNoRows)
	}
	if c.otherIncome != nil {
		m.EXPECT().GetOtherIncomeByTaxReturn(gomock.Any(), returnID).Return(*c.otherIncome, nil)
	} else {
		m.EXPECT().GetOtherIncomeByTaxReturn(gomock.Any(), returnID).Return(db.OtherIncome{}, pgx.ErrNoRows)
	}
}

// expectRecalculate expects a reload of the return followed by a totals
// update, and records the stored totals in stored when it is not nil.
func expectRecalculate(m *mocks.MockQuerier, row db.TaxReturn, c components, stored *db.UpdateTaxReturnTotalsParams) {
	expectLoad(m, row.ID, c)
	m.EXPECT().UpdateTaxReturnTotals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateTaxReturnTotalsParams) (db.TaxReturn, error) {
			if stored != nil {
				*stored = arg
			}
			return row, nil
		})
}

func expectOwnedReturn(m *mocks.MockQuerier, row db.TaxReturn) {
	m.EXPECT().GetTaxReturnForUpdate(gomock.Any(), row.ID).Return(row, nil)
}
