package middleware

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxdesk/tax-service/internal/types/requests"
)

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	require.NoError(t, RegisterValidators())
}

func TestValidators_TaxReturnRequest(t *testing.T) {
	require.NoError(t, RegisterValidators())

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name: "valid",
			body: `{"year":2023,"filingStatus":"single","firstName":"Ada","phoneNumber":"(555) 123-4567","zip":"12345","ssn":"123-45-6789","dateOfBirth":"1990-02-01","state":"CA"}`,
		},
		{
			name:      "unknown filing status",
			body:      `{"year":2023,"filingStatus":"EXEMPT"}`,
			wantField: "filingStatus",
		},
		{
			name:      "year too early",
			body:      `{"year":2010,"filingStatus":"SINGLE"}`,
			wantField: "year",
		},
		{
			name:      "bad zip",
			body:      `{"year":2023,"filingStatus":"SINGLE","zip":"1234"}`,
			wantField: "zip",
		},
		{
			name:      "bad ssn",
			body:      `{"year":2023,"filingStatus":"SINGLE","ssn":"12-345-678"}`,
			wantField: "ssn",
		},
		{
			name:      "bad phone",
			body:      `{"year":2023,"filingStatus":"SINGLE","phoneNumber":"call me"}`,
			wantField: "phoneNumber",
		},
		{
			name:      "bad date of birth",
			body:      `{"year":2023,"filingStatus":"SINGLE","dateOfBirth":"02/01/1990"}`,
			wantField: "dateOfBirth",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req requests.CreateTaxReturnRequest
			err := binding.JSON.BindBody([]byte(tt.body), &req)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			messages := ValidationMessages(err)
			assert.Contains(t, messages, tt.wantField)
		})
	}
}

func TestValidators_Money(t *testing.T) {
	require.NoError(t, RegisterValidators())

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "whole amount", body: `{"amountSpent":2500}`},
		{name: "cents", body: `{"amountSpent":"19.99"}`},
		{name: "zero by omission", body: `{}`},
		{name: "negative", body: `{"amountSpent":-1}`, wantErr: true},
		{name: "fractional cents", body: `{"amountSpent":"1.005"}`, wantErr: true},
		{name: "too large", body: `{"amountSpent":"10000000000"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req requests.UpdateDeductionRequest
			err := binding.JSON.BindBody([]byte(tt.body), &req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, ValidationMessages(err), "amountSpent")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidators_OtherIncomeAllowsLosses(t *testing.T) {
	require.NoError(t, RegisterValidators())

	var req requests.OtherIncomeRequest
	err := binding.JSON.BindBody([]byte(`{"shortTermCapitalGains":"-3000.50"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "-3000.5", req.ShortTermCapitalGains.String())
}

func TestValidators_W2List(t *testing.T) {
	require.NoError(t, RegisterValidators())

	var req requests.ReplaceW2sRequest
	err := binding.JSON.BindBody([]byte(`{"w2s":[{"employerName":"Acme","ein":"12-3456789"},{"employerName":"","wagesAndTips":-5}]}`), &req)
	require.Error(t, err)

	messages := ValidationMessages(err)
	assert.Contains(t, messages, "w2s[1].employerName")
	assert.Contains(t, messages, "w2s[1].wagesAndTips")
	for field := range messages {
		assert.False(t, strings.HasPrefix(field, "w2s[0]"), field)
	}
}

func TestValidationMessages_NonValidationError(t *testing.T) {
	assert.Nil(t, ValidationMessages(assert.AnError))
}
