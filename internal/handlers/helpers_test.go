package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/middleware"
	"github.com/taxdesk/tax-service/internal/services"
	"github.com/taxdesk/tax-service/internal/taxcalc"
)

const (
	testUserID      int64 = 42
	testTaxReturnID int64 = 100
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newRouter builds an engine with the same per-request middleware the server uses.
func newRouter(register func(r gin.IRouter)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CorrelationID(), middleware.RequireUserID())
	register(r)
	return r
}

func serve(r http.Handler, method, path string, body io.Reader, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		req.Header.Set(constants.UserIDHeader, strconv.FormatInt(userID, 10))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(s string) io.Reader {
	if s == "" {
		return nil
	}
	return strings.NewReader(s)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}

type errorBody struct {
	Error         string            `json:"error"`
	CorrelationID string            `json:"correlation_id"`
	Details       map[string]string `json:"details"`
}

func notFound(message string) error {
	return &services.Error{Kind: services.ErrNotFound, Message: message}
}

func forbidden() error {
	return &services.Error{Kind: services.ErrForbidden, Message: constants.AccessDenied}
}

func duplicate(message string) error {
	return &services.Error{Kind: services.ErrDuplicate, Message: message}
}

func invalid(message string) error {
	return &services.Error{Kind: services.ErrInvalidInput, Message: message}
}

func sampleReturn() taxcalc.TaxReturn {
	return taxcalc.TaxReturn{
		ID:           testTaxReturnID,
		UserID:       testUserID,
		Year:         2023,
		FilingStatus: taxcalc.Single,
		PersonalInfo: taxcalc.PersonalInfo{FirstName: "Ada", LastName: "Lovelace"},
		Totals: taxcalc.Totals{
			TotalIncome:         d("50000"),
			AdjustedGrossIncome: d("50000"),
			TaxableIncome:       d("36150"),
			FederalTaxWithheld:  d("6000"),
			StateTaxWithheld:    d("2000"),
			FederalTax:          d("4118"),
			StateTax:            d("1246"),
			TotalCredits:        decimal.Zero,
			Credits:             []taxcalc.CreditLine{},
			FederalRefund:       d("1882"),
			StateRefund:         d("754"),
		},
	}
}

func sampleW2(id int64) taxcalc.W2 {
	return taxcalc.W2{
		ID:                 id,
		TaxReturnID:        testTaxReturnID,
		UserID:             testUserID,
		Year:               2023,
		EmployerName:       "Acme",
		WagesAndTips:       d("50000"),
		FederalTaxWithheld: d("6000"),
		StateTaxWithheld:   d("2000"),
	}
}

func sampleAggregate() *taxcalc.ReturnAggregate {
	return &taxcalc.ReturnAggregate{
		Return:     sampleReturn(),
		W2s:        []taxcalc.W2{sampleW2(1)},
		Deductions: []taxcalc.ClaimedDeduction{},
	}
}
